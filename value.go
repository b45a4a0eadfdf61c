package treestore

import (
	"slices"
	"strconv"
)

// Value is the sealed interface over every shape a stored node can take.
// Only Null, String, Int, Float, Bool, and Object implement it.
//
// The tree draws no structural distinction between "object" and "array":
// an array is an Object whose keys happen to be numeric-string indices
// ("0", "1", ...). Use List to build one.
type Value interface {
	value() // sealed
}

// Null is the explicit null value. A key holding Null is still present:
// Has reports true and Get returns (Null{}, true).
type Null struct{}

func (Null) value() {}

// String is a string scalar.
type String string

func (String) value() {}

// Int is an integer scalar, always int64 width.
type Int int64

func (Int) value() {}

// Float is a floating-point scalar.
type Float float64

func (Float) value() {}

// Bool is a boolean scalar.
type Bool bool

func (Bool) value() {}

// Object is a map from string key to child Value. It is the only branching
// node kind; insertion order is not tracked, traversal uses SortedKeys.
type Object map[string]Value

func (Object) value() {}

// List builds an Object keyed by numeric-string indices, the array
// representation used throughout the tree.
//
//	List(String("a"), String("b")) == Object{"0": String("a"), "1": String("b")}
func List(vals ...Value) Object {
	obj := make(Object, len(vals))
	for i, v := range vals {
		obj[strconv.Itoa(i)] = v
	}
	return obj
}

// SortedKeys returns the object's keys in lexicographic order.
// Used everywhere a deterministic traversal or serialization order matters.
func (obj Object) SortedKeys() []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Clone returns a deep copy of v. Scalars are immutable and returned as-is;
// objects are copied recursively. Clone(nil) is nil.
//
// This is the single deep-copy primitive reused by get/export/import,
// journaling, and rollback to keep the owned tree isolated from callers.
func Clone(v Value) Value {
	obj, ok := v.(Object)
	if !ok {
		return v
	}
	out := make(Object, len(obj))
	for k, child := range obj {
		out[k] = Clone(child)
	}
	return out
}

// Equal reports deep equality of two values. Two nil values are equal;
// nil never equals a non-nil value (not even Null, which is a present
// null rather than an absent one).
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Int:
		bv, ok := b.(Int)
		return ok && av == bv
	case Float:
		bv, ok := b.(Float)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Object:
		bv, ok := b.(Object)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, achild := range av {
			bchild, present := bv[k]
			if !present || !Equal(achild, bchild) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
