package treestore

// TreeStore is the assembled decorator stack: a Container wrapped by the
// Journal and Observable layers as configured, exposed through one surface.
// New and FromConfig are the only assembly points; the layering order is
// fixed, Observable(Journal(Container)).
type TreeStore struct {
	container  *Container
	journal    *Journal    // nil when assembled without the journal layer
	observable *Observable // nil when assembled without the notification layer
	top        Store
}

// Option adjusts store assembly.
type Option func(*storeConfig)

type storeConfig struct {
	journal    bool
	maxEntries int
	observable bool
	clock      Clock
}

// WithJournal enables the journal layer bounded to max entries (<= 0 selects
// DefaultMaxEntries). The journal is on by default; this option is for
// choosing the bound.
func WithJournal(max int) Option {
	return func(cfg *storeConfig) {
		cfg.journal = true
		cfg.maxEntries = max
	}
}

// WithoutJournal assembles the store without the journal layer. Transaction
// and journal operations fail with ErrJournalDisabled.
func WithoutJournal() Option {
	return func(cfg *storeConfig) {
		cfg.journal = false
	}
}

// WithoutObservable assembles the store without the notification layer.
// Subscribe becomes a logged no-op.
func WithoutObservable() Option {
	return func(cfg *storeConfig) {
		cfg.observable = false
	}
}

// WithClock overrides the journal clock, for deterministic entries in tests.
func WithClock(c Clock) Option {
	return func(cfg *storeConfig) {
		cfg.clock = c
	}
}

// New assembles a store. Both decorator layers are enabled by default.
func New(opts ...Option) *TreeStore {
	cfg := storeConfig{journal: true, maxEntries: DefaultMaxEntries, observable: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return assemble(cfg)
}

func assemble(cfg storeConfig) *TreeStore {
	ts := &TreeStore{container: NewContainer()}
	var top Store = ts.container
	if cfg.journal {
		ts.journal = NewJournal(top, cfg.maxEntries, cfg.clock)
		top = ts.journal
	}
	if cfg.observable {
		ts.observable = NewObservable(top)
		top = ts.observable
	}
	ts.top = top
	return ts
}

var _ Store = (*TreeStore)(nil)

func (ts *TreeStore) Get(path string) (Value, bool) { return ts.top.Get(path) }
func (ts *TreeStore) Has(path string) bool          { return ts.top.Has(path) }
func (ts *TreeStore) Find(pattern string) []string  { return ts.top.Find(pattern) }
func (ts *TreeStore) Branch(path string) Value      { return ts.top.Branch(path) }
func (ts *TreeStore) Export() Value                 { return ts.top.Export() }

func (ts *TreeStore) Set(path string, value any, opts ...WriteOption) bool {
	return ts.top.Set(path, value, opts...)
}

func (ts *TreeStore) Delete(path string, opts ...WriteOption) bool {
	return ts.top.Delete(path, opts...)
}

func (ts *TreeStore) Clear(opts ...WriteOption) bool {
	return ts.top.Clear(opts...)
}

func (ts *TreeStore) Import(data Value, opts ...WriteOption) bool {
	return ts.top.Import(data, opts...)
}

// Subscribe registers a change callback. On a store assembled without the
// notification layer it logs a warning and returns a no-op cancel.
func (ts *TreeStore) Subscribe(pattern string, cb Callback) CancelFunc {
	if ts.observable == nil {
		Logger.Warn().Str("pattern", pattern).Msg("subscribe on store without notification layer")
		return func() {}
	}
	return ts.observable.Subscribe(pattern, cb)
}

// Begin opens a transaction. See Journal.Begin.
func (ts *TreeStore) Begin() (*Transaction, error) {
	if ts.journal == nil {
		return nil, ErrJournalDisabled
	}
	return ts.journal.Begin()
}

// Commit finalizes the open transaction. A nil handle means the current one.
func (ts *TreeStore) Commit(tx *Transaction) error {
	if ts.journal == nil {
		return ErrJournalDisabled
	}
	return ts.journal.Commit(tx)
}

// Rollback undoes the open transaction. A nil handle means the current one.
func (ts *TreeStore) Rollback(tx *Transaction) error {
	if ts.journal == nil {
		return ErrJournalDisabled
	}
	return ts.journal.Rollback(tx)
}

// Entries returns a read-only copy of the journal, nil when the journal
// layer is absent.
func (ts *TreeStore) Entries() []Entry {
	if ts.journal == nil {
		return nil
	}
	return ts.journal.Entries()
}

// ClearEntries drops all journal entries.
func (ts *TreeStore) ClearEntries() {
	if ts.journal != nil {
		ts.journal.ClearEntries()
	}
}

// SetJournaling toggles journal recording; disabling drops existing entries.
func (ts *TreeStore) SetJournaling(enabled bool) {
	if ts.journal == nil {
		Logger.Warn().Msg("journaling toggle on store without journal layer")
		return
	}
	ts.journal.SetJournaling(enabled)
}
