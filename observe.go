package treestore

import (
	"slices"
)

// Callback receives the newly written value, the value the path held before
// the mutation (nil when absent), and the affected path. For deletes the new
// value is nil; clear and import report at the root path with the whole
// new/old tree.
type Callback func(newValue, oldValue Value, path Path)

// CancelFunc removes a subscription. Calling it more than once is a no-op.
type CancelFunc func()

type subscriber struct {
	cb Callback
}

// Observable decorates a Store with pattern-keyed change subscriptions.
// It is the outermost layer: every successful, non-silent mutation passing
// through it is point-matched against all registered patterns and the
// matching callbacks invoked.
//
// Callbacks must not mutate the store in ways that race an in-flight
// traversal; the store is single-writer by contract (see package doc).
type Observable struct {
	next Store
	subs map[string][]*subscriber
}

// NewObservable wraps next with a notification layer.
func NewObservable(next Store) *Observable {
	return &Observable{next: next, subs: make(map[string][]*subscriber)}
}

var _ Store = (*Observable)(nil)

// Subscribe registers a callback under the raw pattern string. Multiple
// callbacks may share a pattern; the returned cancel removes this one and
// drops the pattern entry when the last callback for it goes.
func (o *Observable) Subscribe(pattern string, cb Callback) CancelFunc {
	sub := &subscriber{cb: cb}
	o.subs[pattern] = append(o.subs[pattern], sub)
	cancelled := false
	return func() {
		if cancelled {
			return
		}
		cancelled = true
		remaining := slices.DeleteFunc(o.subs[pattern], func(s *subscriber) bool {
			return s == sub
		})
		if len(remaining) == 0 {
			delete(o.subs, pattern)
		} else {
			o.subs[pattern] = remaining
		}
	}
}

func (o *Observable) Get(path string) (Value, bool) { return o.next.Get(path) }
func (o *Observable) Has(path string) bool          { return o.next.Has(path) }
func (o *Observable) Find(pattern string) []string  { return o.next.Find(pattern) }
func (o *Observable) Branch(path string) Value      { return o.next.Branch(path) }
func (o *Observable) Export() Value                 { return o.next.Export() }

func (o *Observable) Set(path string, value any, opts ...WriteOption) bool {
	cfg := applyWriteOptions(opts)
	v, ok := mustFromGo(value)
	if !ok {
		return false
	}
	var old Value
	if !cfg.silent {
		old, _ = o.next.Get(path)
	}
	if !o.next.Set(path, v, opts...) {
		return false
	}
	if !cfg.silent {
		o.notify(ParsePath(path), v, old)
	}
	return true
}

func (o *Observable) Delete(path string, opts ...WriteOption) bool {
	cfg := applyWriteOptions(opts)
	var old Value
	if !cfg.silent {
		old, _ = o.next.Get(path)
	}
	if !o.next.Delete(path, opts...) {
		return false
	}
	if !cfg.silent {
		o.notify(ParsePath(path), nil, old)
	}
	return true
}

func (o *Observable) Clear(opts ...WriteOption) bool {
	cfg := applyWriteOptions(opts)
	var old Value
	if !cfg.silent {
		old = o.next.Export()
	}
	if !o.next.Clear(opts...) {
		return false
	}
	if !cfg.silent {
		o.notify(Path{}, Object{}, old)
	}
	return true
}

// Import notifies once at the root with the entire new and old tree;
// subscribers to leaf paths are not individually notified on bulk replace.
func (o *Observable) Import(data Value, opts ...WriteOption) bool {
	cfg := applyWriteOptions(opts)
	var old Value
	if !cfg.silent {
		old = o.next.Export()
	}
	if !o.next.Import(data, opts...) {
		return false
	}
	if !cfg.silent {
		o.notify(Path{}, o.next.Export(), old)
	}
	return true
}

// notify point-matches every registered pattern against the affected path
// and invokes matching callbacks. Patterns are visited in sorted order and
// callbacks in registration order, so delivery is deterministic.
func (o *Observable) notify(path Path, newValue, oldValue Value) {
	pathStr := path.String()
	patterns := make([]string, 0, len(o.subs))
	for pattern := range o.subs {
		patterns = append(patterns, pattern)
	}
	slices.Sort(patterns)
	for _, pattern := range patterns {
		if !MatchPath(pathStr, pattern) {
			continue
		}
		for _, sub := range slices.Clone(o.subs[pattern]) {
			o.invoke(pattern, sub, newValue, oldValue, path)
		}
	}
}

// invoke isolates one callback: a panic is recovered and logged so the
// remaining callbacks and subscriptions still get their notification.
func (o *Observable) invoke(pattern string, sub *subscriber, newValue, oldValue Value, path Path) {
	defer func() {
		if r := recover(); r != nil {
			Logger.Error().
				Interface("panic", r).
				Str("pattern", pattern).
				Str("path", path.String()).
				Msg("subscriber callback panicked")
		}
	}()
	sub.cb(Clone(newValue), Clone(oldValue), path.Clone())
}
