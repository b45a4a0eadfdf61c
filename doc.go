// Package treestore is an in-memory, path-addressable hierarchical data
// container. Values are read and written via dot-separated paths into a
// nested tree of objects and scalars, with three capabilities layered on
// top as decorators over one Store contract:
//
//   - a wildcard pattern matcher ("*" one segment, "**" zero or more),
//     backing both bulk path discovery (Find) and subscription dispatch
//   - a bounded write journal with begin/commit/rollback transactions
//   - a change-notification engine keyed by raw pattern strings
//
// The layering order is fixed: Observable wraps Journal wraps Container.
// A single Set therefore reads the old value, mutates the tree, records a
// journal entry (or buffers into the open transaction), and notifies
// matching subscribers, in that order.
//
// # Isolation
//
// The container owns its tree exclusively. Get, Branch, and Export return
// deep copies; Set and Import deep-copy their input. No caller-held
// reference ever aliases the stored tree.
//
// # Execution model
//
// Everything is single-threaded, synchronous, and total: operations run to
// completion without suspension and there is no locking. Callers of a
// shared store (including namespaced views of it) must treat it as
// single-writer. Mutating the store from inside a subscription callback
// while a traversal is in flight is undefined and disallowed.
//
// # Errors
//
// Data-path operations report failure via booleans or absent values.
// Only transaction-discipline violations return errors; subscriber
// callback panics are recovered and logged through Logger without
// interrupting delivery to other subscribers.
package treestore
