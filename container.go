package treestore

// Container owns the tree: a single root node, an empty object to begin
// with. All reads hand out deep copies and all writes deep-copy their input,
// so no caller-held reference ever aliases the owned tree.
//
// The container is the bottom layer of the decorator stack and knows nothing
// about journaling or notification; it ignores the per-call options those
// layers read.
type Container struct {
	root Value
}

// NewContainer creates a container holding an empty object tree.
func NewContainer() *Container {
	return &Container{root: Object{}}
}

var _ Store = (*Container)(nil)

// resolve walks the path inside the owned tree without copying.
func (c *Container) resolve(p Path) (Value, bool) {
	cur := c.root
	for _, seg := range p {
		obj, ok := cur.(Object)
		if !ok {
			return nil, false
		}
		cur, ok = obj[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func (c *Container) Get(path string) (Value, bool) {
	v, ok := c.resolve(ParsePath(path))
	if !ok {
		return nil, false
	}
	return Clone(v), true
}

func (c *Container) Set(path string, value any, _ ...WriteOption) bool {
	v, ok := mustFromGo(value)
	if !ok {
		return false
	}
	p := ParsePath(path)
	if p.IsRoot() {
		// Import-without-reset semantics: replace the whole tree.
		c.root = Clone(v)
		return true
	}
	obj, ok := c.root.(Object)
	if !ok {
		obj = Object{}
		c.root = obj
	}
	for _, seg := range p[:len(p)-1] {
		child, isObject := obj[seg].(Object)
		if !isObject {
			// Intermediate segments are coerced into objects, overwriting
			// whatever non-object value was there.
			child = Object{}
			obj[seg] = child
		}
		obj = child
	}
	obj[p[len(p)-1]] = Clone(v)
	return true
}

func (c *Container) Has(path string) bool {
	_, ok := c.resolve(ParsePath(path))
	return ok
}

// Delete removes the key at path. The root path cannot be deleted. The
// return value reports whether the key existed before deletion, not merely
// that the parent resolved.
func (c *Container) Delete(path string, _ ...WriteOption) bool {
	p := ParsePath(path)
	if p.IsRoot() {
		return false
	}
	parent, ok := c.resolve(p[:len(p)-1])
	if !ok {
		return false
	}
	obj, ok := parent.(Object)
	if !ok {
		return false
	}
	key := p[len(p)-1]
	_, existed := obj[key]
	delete(obj, key)
	return existed
}

func (c *Container) Find(pattern string) []string {
	return findPaths(c.root, pattern)
}

func (c *Container) Branch(path string) Value {
	v, ok := c.resolve(ParsePath(path))
	if !ok {
		return Object{}
	}
	return Clone(v)
}

func (c *Container) Export() Value {
	return c.Branch("")
}

func (c *Container) Clear(_ ...WriteOption) bool {
	c.root = Object{}
	return true
}

func (c *Container) Import(data Value, _ ...WriteOption) bool {
	if data == nil {
		data = Object{}
	}
	c.root = Clone(data)
	return true
}
