package treestore

import "errors"

// Data-path operations (get/set/delete/find/export) never return errors;
// they report failure through booleans or absent values. Errors are reserved
// for transaction-discipline violations, which are programmer mistakes and
// fail loudly.
var (
	// ErrTransactionOpen is returned by Begin while another transaction is
	// still open. One transaction per store instance.
	ErrTransactionOpen = errors.New("treestore: transaction already open")

	// ErrNoTransaction is returned by Commit/Rollback when no transaction
	// is open.
	ErrNoTransaction = errors.New("treestore: no open transaction")

	// ErrTransactionMismatch is returned by Commit/Rollback when the given
	// handle is not the current transaction.
	ErrTransactionMismatch = errors.New("treestore: transaction is not current")

	// ErrJournalDisabled is returned by transaction and journal operations
	// on a store assembled without the journal layer.
	ErrJournalDisabled = errors.New("treestore: journal layer not installed")
)
