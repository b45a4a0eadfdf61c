package treestore

import "strings"

// Namespace is a view of a TreeStore under a fixed path prefix. It holds no
// state beyond the prefix and the wrapped store reference: every path and
// pattern is prefixed on the way in, and the prefix is stripped from Find
// results and callback paths on the way out. Several namespaces may share
// one store; the shared tree stays single-writer by the package's execution
// model, not by locking.
type Namespace struct {
	store     *TreeStore
	prefix    string
	prefixLen int // segments in the prefix
}

// Namespace returns a view of the store rooted at prefix (a dot-joined
// path, e.g. "app.cache").
func (ts *TreeStore) Namespace(prefix string) *Namespace {
	return &Namespace{
		store:     ts,
		prefix:    prefix,
		prefixLen: len(ParsePath(prefix)),
	}
}

var _ Store = (*Namespace)(nil)

func (n *Namespace) key(path string) string {
	if n.prefix == "" {
		return path
	}
	if path == "" {
		return n.prefix
	}
	return n.prefix + "." + path
}

func (n *Namespace) strip(path string) string {
	if n.prefix == "" {
		return path
	}
	if path == n.prefix {
		return ""
	}
	return strings.TrimPrefix(path, n.prefix+".")
}

func (n *Namespace) Get(path string) (Value, bool) {
	return n.store.Get(n.key(path))
}

func (n *Namespace) Set(path string, value any, opts ...WriteOption) bool {
	return n.store.Set(n.key(path), value, opts...)
}

func (n *Namespace) Has(path string) bool {
	return n.store.Has(n.key(path))
}

func (n *Namespace) Delete(path string, opts ...WriteOption) bool {
	return n.store.Delete(n.key(path), opts...)
}

func (n *Namespace) Find(pattern string) []string {
	matches := n.store.Find(n.key(pattern))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, n.strip(m))
	}
	return out
}

func (n *Namespace) Branch(path string) Value {
	return n.store.Branch(n.key(path))
}

func (n *Namespace) Export() Value {
	return n.store.Branch(n.prefix)
}

// Clear resets the namespaced subtree to an empty object. It is a plain set
// on the wrapped store, so journaling and notification see a set at the
// prefix path rather than a whole-store clear.
func (n *Namespace) Clear(opts ...WriteOption) bool {
	return n.store.Set(n.prefix, Object{}, opts...)
}

// Import replaces the namespaced subtree, again as a set at the prefix path.
func (n *Namespace) Import(data Value, opts ...WriteOption) bool {
	if data == nil {
		data = Object{}
	}
	return n.store.Set(n.prefix, data, opts...)
}

// Subscribe registers on the prefixed pattern; callback paths are reported
// relative to the namespace.
func (n *Namespace) Subscribe(pattern string, cb Callback) CancelFunc {
	return n.store.Subscribe(n.key(pattern), func(newValue, oldValue Value, path Path) {
		rel := path
		if len(path) >= n.prefixLen {
			rel = path[n.prefixLen:]
		}
		cb(newValue, oldValue, rel.Clone())
	})
}

// Begin delegates to the wrapped store; the transaction is store-wide.
func (n *Namespace) Begin() (*Transaction, error) {
	return n.store.Begin()
}

// Commit delegates to the wrapped store.
func (n *Namespace) Commit(tx *Transaction) error {
	return n.store.Commit(tx)
}

// Rollback delegates to the wrapped store.
func (n *Namespace) Rollback(tx *Transaction) error {
	return n.store.Rollback(tx)
}
