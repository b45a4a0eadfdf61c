package treestore

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Transaction is a buffered, atomic group of mutations. Mutations made while
// a transaction is open are applied to the tree immediately but recorded
// into the transaction buffer instead of the journal; Commit finalizes them
// into one transaction entry, Rollback undoes them in reverse order.
//
// Transaction ids are UUIDv7: time-sortable, which keeps journal entries and
// transaction ids ordered the same way.
type Transaction struct {
	id      string
	started time.Time
	ops     []Operation
}

// ID returns the unique transaction identifier.
func (tx *Transaction) ID() string {
	return tx.id
}

// Started returns the transaction creation time.
func (tx *Transaction) Started() time.Time {
	return tx.started
}

// Operations returns a copy of the buffered operations, in application order.
func (tx *Transaction) Operations() []Operation {
	out := make([]Operation, len(tx.ops))
	for i, op := range tx.ops {
		out[i] = cloneOperation(op)
	}
	return out
}

// Begin opens a transaction. At most one transaction may be open per store
// instance; Begin fails with ErrTransactionOpen while one is active.
func (j *Journal) Begin() (*Transaction, error) {
	if j.current != nil {
		return nil, fmt.Errorf("%w: %s", ErrTransactionOpen, j.current.id)
	}
	tx := &Transaction{
		id:      uuid.Must(uuid.NewV7()).String(),
		started: j.clock.Now(),
	}
	j.current = tx
	Logger.Debug().Str("transaction", tx.id).Msg("transaction started")
	return tx, nil
}

// Current returns the open transaction, or nil.
func (j *Journal) Current() *Transaction {
	return j.current
}

// checkCurrent validates a transaction handle against the open transaction.
// A nil handle means "the current one".
func (j *Journal) checkCurrent(tx *Transaction) (*Transaction, error) {
	if j.current == nil {
		return nil, ErrNoTransaction
	}
	if tx != nil && tx.id != j.current.id {
		return nil, fmt.Errorf("%w: %s", ErrTransactionMismatch, tx.id)
	}
	return j.current, nil
}

// Commit closes the open transaction. The buffered mutations were applied
// to the tree as they occurred; commit only finalizes bookkeeping, writing
// one transaction entry wrapping the buffer when journaling is enabled.
func (j *Journal) Commit(tx *Transaction) error {
	cur, err := j.checkCurrent(tx)
	if err != nil {
		return err
	}
	j.current = nil
	if j.enabled {
		j.append(Entry{Kind: EntryTransaction, Ops: cur.Operations(), Time: j.clock.Now()})
	}
	Logger.Debug().Str("transaction", cur.id).Int("ops", len(cur.ops)).Msg("transaction committed")
	return nil
}

// Rollback closes the open transaction and undoes its buffered operations
// in reverse order against the wrapped store:
//
//   - a set that replaced a value re-sets the recorded previous value
//   - a set that created the path deletes it again
//   - a delete that removed a value re-sets it
//   - a delete of an absent path is left as a no-op
//
// Rollback writes no journal entry of its own and, running below the
// notification layer, triggers no subscriber callbacks.
func (j *Journal) Rollback(tx *Transaction) error {
	cur, err := j.checkCurrent(tx)
	if err != nil {
		return err
	}
	// Detach first so the replay below is not buffered again.
	j.current = nil
	for i := len(cur.ops) - 1; i >= 0; i-- {
		op := cur.ops[i]
		switch op.Kind {
		case EntrySet:
			if op.HadPrevious {
				j.next.Set(op.Path.String(), op.Previous)
			} else {
				j.next.Delete(op.Path.String())
			}
		case EntryDelete:
			if op.HadPrevious {
				j.next.Set(op.Path.String(), op.Previous)
			}
		}
	}
	Logger.Debug().Str("transaction", cur.id).Int("ops", len(cur.ops)).Msg("transaction rolled back")
	return nil
}
