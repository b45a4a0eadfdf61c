package treestore

import (
	"slices"
	"time"
)

// EntryKind tags a journal entry or a buffered transaction operation.
type EntryKind string

const (
	EntrySet         EntryKind = "set"
	EntryDelete      EntryKind = "delete"
	EntryClear       EntryKind = "clear"
	EntryImport      EntryKind = "import"
	EntryTransaction EntryKind = "transaction"
)

// Entry is one record in the journal. All values it carries are deep copies
// taken at record time; nothing in an entry aliases the live tree.
type Entry struct {
	Kind EntryKind
	Path Path
	// Value is the newly written value (set, import).
	Value Value
	// Previous is the value the path held before the mutation (set, delete).
	// HadPrevious distinguishes an absent previous value from a stored Null.
	Previous    Value
	HadPrevious bool
	Time        time.Time
	// Ops holds the buffered operations of a committed transaction.
	Ops []Operation
	// PreviousState is the full pre-clear tree snapshot (clear entries).
	PreviousState Value
}

// Operation is one buffered mutation inside an open transaction.
type Operation struct {
	Kind        EntryKind
	Path        Path
	Value       Value
	Previous    Value
	HadPrevious bool
}

// DefaultMaxEntries bounds the journal when no explicit bound is configured.
const DefaultMaxEntries = 1000

// Journal decorates a Store with a bounded write journal and single-open
// transaction support. Reads pass straight through; every successful
// mutation is recorded either as a standalone entry or, while a transaction
// is open, as a buffered operation.
type Journal struct {
	next    Store
	clock   Clock
	entries []Entry
	max     int
	enabled bool
	current *Transaction
}

// NewJournal wraps next with a journal bounded to max entries (<= 0 selects
// DefaultMaxEntries). A nil clock selects the system wall clock.
func NewJournal(next Store, max int, clock Clock) *Journal {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	if clock == nil {
		clock = systemClock{}
	}
	return &Journal{next: next, max: max, clock: clock, enabled: true}
}

var _ Store = (*Journal)(nil)

func (j *Journal) Get(path string) (Value, bool) { return j.next.Get(path) }
func (j *Journal) Has(path string) bool          { return j.next.Has(path) }
func (j *Journal) Find(pattern string) []string  { return j.next.Find(pattern) }
func (j *Journal) Branch(path string) Value      { return j.next.Branch(path) }
func (j *Journal) Export() Value                 { return j.next.Export() }

func (j *Journal) Set(path string, value any, opts ...WriteOption) bool {
	cfg := applyWriteOptions(opts)
	v, ok := mustFromGo(value)
	if !ok {
		return false
	}
	prev, hadPrev := j.next.Get(path)
	if !j.next.Set(path, v, opts...) {
		return false
	}
	j.record(Operation{
		Kind:        EntrySet,
		Path:        ParsePath(path),
		Value:       Clone(v),
		Previous:    prev,
		HadPrevious: hadPrev,
	}, cfg)
	return true
}

func (j *Journal) Delete(path string, opts ...WriteOption) bool {
	cfg := applyWriteOptions(opts)
	prev, hadPrev := j.next.Get(path)
	if !j.next.Delete(path, opts...) {
		return false
	}
	j.record(Operation{
		Kind:        EntryDelete,
		Path:        ParsePath(path),
		Previous:    prev,
		HadPrevious: hadPrev,
	}, cfg)
	return true
}

// Clear snapshots the whole tree, wipes the journal itself, clears the
// wrapped store, and records a single clear entry carrying the snapshot.
func (j *Journal) Clear(opts ...WriteOption) bool {
	cfg := applyWriteOptions(opts)
	var snapshot Value
	if j.enabled && cfg.journal {
		snapshot = j.next.Export()
	}
	if !j.next.Clear(opts...) {
		return false
	}
	if j.enabled && cfg.journal {
		j.entries = nil
		j.append(Entry{Kind: EntryClear, PreviousState: snapshot, Time: j.clock.Now()})
	}
	return true
}

// Import records one import entry carrying the imported data, not the
// resulting tree. The reset sub-step goes through Clear so the journal
// observes it as its own entry.
func (j *Journal) Import(data Value, opts ...WriteOption) bool {
	cfg := applyWriteOptions(opts)
	if cfg.reset {
		if !j.Clear(opts...) {
			return false
		}
	}
	if !j.next.Import(data, opts...) {
		return false
	}
	if j.enabled && cfg.journal {
		j.append(Entry{Kind: EntryImport, Value: Clone(data), Time: j.clock.Now()})
	}
	return true
}

// record buffers the operation into the open transaction, or appends a
// standalone entry when journaling applies to this call.
func (j *Journal) record(op Operation, cfg writeConfig) {
	if j.current != nil {
		j.current.ops = append(j.current.ops, op)
		return
	}
	if !j.enabled || !cfg.journal {
		return
	}
	j.append(Entry{
		Kind:        op.Kind,
		Path:        op.Path,
		Value:       op.Value,
		Previous:    op.Previous,
		HadPrevious: op.HadPrevious,
		Time:        j.clock.Now(),
	})
}

func (j *Journal) append(e Entry) {
	j.entries = append(j.entries, e)
	if len(j.entries) > j.max {
		j.entries = slices.Clone(j.entries[len(j.entries)-j.max:])
	}
}

// Entries returns a read-only copy of the journal, oldest first. Values in
// the returned entries are deep-copied so callers cannot reach journal state.
func (j *Journal) Entries() []Entry {
	out := make([]Entry, len(j.entries))
	for i, e := range j.entries {
		out[i] = cloneEntry(e)
	}
	return out
}

func cloneEntry(e Entry) Entry {
	e.Path = e.Path.Clone()
	e.Value = Clone(e.Value)
	e.Previous = Clone(e.Previous)
	e.PreviousState = Clone(e.PreviousState)
	if e.Ops != nil {
		ops := make([]Operation, len(e.Ops))
		for i, op := range e.Ops {
			ops[i] = cloneOperation(op)
		}
		e.Ops = ops
	}
	return e
}

func cloneOperation(op Operation) Operation {
	op.Path = op.Path.Clone()
	op.Value = Clone(op.Value)
	op.Previous = Clone(op.Previous)
	return op
}

// ClearEntries drops all journal entries without touching the tree.
func (j *Journal) ClearEntries() {
	j.entries = nil
}

// SetJournaling toggles entry recording. Disabling also drops the existing
// entries. Transaction buffering is unaffected.
func (j *Journal) SetJournaling(enabled bool) {
	j.enabled = enabled
	if !enabled {
		j.entries = nil
	}
}

// Journaling reports whether entry recording is enabled.
func (j *Journal) Journaling() bool {
	return j.enabled
}
