package treestore

import (
	"slices"
	"strings"
)

// Path is an ordered sequence of string segments addressing a location in
// the tree. The empty path addresses the root. Segments are opaque strings
// and cannot contain the "." separator; no escaping mechanism exists.
type Path []string

// ParsePath splits a dot-joined path string into a Path. The empty string
// parses to the empty (root) path.
func ParsePath(s string) Path {
	if s == "" {
		return Path{}
	}
	return Path(strings.Split(s, "."))
}

// String joins the segments with ".". The root path renders as "".
func (p Path) String() string {
	return strings.Join(p, ".")
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	return slices.Clone(p)
}

// IsRoot reports whether the path addresses the tree root.
func (p Path) IsRoot() bool {
	return len(p) == 0
}

// Equal reports element-wise equality.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p, other)
}

// Child returns a new path extended by one segment.
func (p Path) Child(segment string) Path {
	child := make(Path, 0, len(p)+1)
	child = append(child, p...)
	return append(child, segment)
}
