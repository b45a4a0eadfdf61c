package treestore

// Store is the common contract shared by the container and every decorator
// layer. Each layer holds a reference to the next one down; the assembly
// order is fixed (Observable wraps Journal wraps Container) and built by
// New or FromConfig rather than by embedding.
type Store interface {
	// Get returns a deep copy of the value at path, or (nil, false) if any
	// segment along the path is missing or traverses into a non-object.
	Get(path string) (Value, bool)

	// Set writes value at path, coercing non-object intermediate segments
	// into objects. Setting the root path replaces the whole tree.
	Set(path string, value any, opts ...WriteOption) bool

	// Has reports key presence: a key holding Null is still present.
	Has(path string) bool

	// Delete removes the subtree at path. It fails for the root path and
	// for paths whose parent does not resolve to an object, and reports
	// whether the key existed before deletion.
	Delete(path string, opts ...WriteOption) bool

	// Find enumerates the concrete paths matching a wildcard pattern, in
	// depth-first sorted-key order, deduplicated.
	Find(pattern string) []string

	// Branch returns a deep copy of the subtree at path, or an empty
	// object if the path does not resolve. The empty path copies the
	// whole tree.
	Branch(path string) Value

	// Export is Branch of the root: a deep copy of the whole tree.
	Export() Value

	// Clear resets the tree to an empty object.
	Clear(opts ...WriteOption) bool

	// Import deep-copies data as the new tree. Unless WithoutReset is
	// given, decorator layers observe a clear sub-step first.
	Import(data Value, opts ...WriteOption) bool
}

// WriteOption adjusts a single mutating call.
type WriteOption func(*writeConfig)

type writeConfig struct {
	silent  bool
	journal bool
	reset   bool
}

func applyWriteOptions(opts []WriteOption) writeConfig {
	cfg := writeConfig{journal: true, reset: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Silent suppresses change notification for this call. The mutation still
// happens and is still journaled.
func Silent() WriteOption {
	return func(cfg *writeConfig) {
		cfg.silent = true
	}
}

// SkipJournal suppresses the standalone journal entry for this call.
// Has no effect on notification or on transaction buffering.
func SkipJournal() WriteOption {
	return func(cfg *writeConfig) {
		cfg.journal = false
	}
}

// WithoutReset skips the clear sub-step of Import. The tree is still
// replaced by the imported data; only the separately observable clear
// (journal entry, journal wipe) is suppressed. Only Import reads it.
func WithoutReset() WriteOption {
	return func(cfg *writeConfig) {
		cfg.reset = false
	}
}
