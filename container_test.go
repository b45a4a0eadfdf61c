package treestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainerSetGet(t *testing.T) {
	c := NewContainer()

	require.True(t, c.Set("user.profile.address.city", "New York"))

	got, ok := c.Get("user.profile.address")
	require.True(t, ok)
	assert.Equal(t, Object{"city": String("New York")}, got)

	city, ok := c.Get("user.profile.address.city")
	require.True(t, ok)
	assert.Equal(t, String("New York"), city)
	assert.True(t, c.Has("user.profile.address.city"))
}

func TestContainerGetMissing(t *testing.T) {
	c := NewContainer()
	c.Set("a.b", 1)

	tests := []string{"x", "a.x", "a.b.c", "a.b.c.d"}
	for _, path := range tests {
		v, ok := c.Get(path)
		assert.False(t, ok, "path %q", path)
		assert.Nil(t, v)
		assert.False(t, c.Has(path))
	}
}

func TestContainerNullIsPresent(t *testing.T) {
	c := NewContainer()
	c.Set("a.b", nil)

	v, ok := c.Get("a.b")
	require.True(t, ok)
	assert.Equal(t, Null{}, v)
	assert.True(t, c.Has("a.b"))
}

func TestContainerSetCoercesIntermediates(t *testing.T) {
	c := NewContainer()
	c.Set("a.b", "scalar")

	// Writing below a scalar overwrites it with an object.
	require.True(t, c.Set("a.b.c", 1))

	got, ok := c.Get("a.b")
	require.True(t, ok)
	assert.Equal(t, Object{"c": Int(1)}, got)
}

func TestContainerSetRootReplacesTree(t *testing.T) {
	c := NewContainer()
	c.Set("old", 1)

	require.True(t, c.Set("", Object{"new": Int(2)}))

	assert.False(t, c.Has("old"))
	v, ok := c.Get("new")
	require.True(t, ok)
	assert.Equal(t, Int(2), v)
}

func TestContainerDelete(t *testing.T) {
	c := NewContainer()
	c.Set("user.name", "John")
	c.Set("user.email", "j@example.com")

	assert.True(t, c.Delete("user.name"), "existing key")
	assert.False(t, c.Has("user.name"))
	assert.True(t, c.Has("user.email"))

	assert.False(t, c.Delete("user.name"), "key no longer exists")
	assert.False(t, c.Delete("user.name.deep"), "parent is not an object")
	assert.False(t, c.Delete("missing.key"), "parent does not resolve")
}

func TestContainerDeleteRootFails(t *testing.T) {
	c := NewContainer()
	c.Set("a", 1)

	assert.False(t, c.Delete(""))
	assert.True(t, c.Has("a"), "tree unchanged after refused root delete")
}

func TestContainerDeleteRemovesSubtree(t *testing.T) {
	c := NewContainer()
	c.Set("user.profile.address.city", "NY")
	c.Set("user.name", "John")

	require.True(t, c.Delete("user.profile"))

	assert.False(t, c.Has("user.profile"))
	assert.False(t, c.Has("user.profile.address.city"))
	assert.True(t, c.Has("user.name"))
}

func TestContainerGetReturnsCopy(t *testing.T) {
	c := NewContainer()
	c.Set("user.name", "John")

	got, ok := c.Get("user")
	require.True(t, ok)
	got.(Object)["name"] = String("Jane")

	v, _ := c.Get("user.name")
	assert.Equal(t, String("John"), v, "caller mutation must not reach the tree")
}

func TestContainerSetCopiesInput(t *testing.T) {
	c := NewContainer()
	in := Object{"name": String("John")}
	c.Set("user", in)

	in["name"] = String("Jane")

	v, _ := c.Get("user.name")
	assert.Equal(t, String("John"), v)
}

func TestContainerBranch(t *testing.T) {
	c := NewContainer()
	c.Set("a.b.c", 1)

	assert.Equal(t, Object{"c": Int(1)}, c.Branch("a.b"))
	assert.Equal(t, Object{}, c.Branch("missing"), "missing path yields empty object")
	assert.Equal(t, Object{"a": Object{"b": Object{"c": Int(1)}}}, c.Branch(""))
}

func TestContainerClear(t *testing.T) {
	c := NewContainer()
	c.Set("a.b", 1)

	require.True(t, c.Clear())

	assert.Equal(t, Object{}, c.Export())
}

func TestContainerImportExportRoundTrip(t *testing.T) {
	c := NewContainer()
	c.Set("user.name", "John")
	c.Set("users.0.name", "A")
	c.Set("count", 2)

	exported := c.Export()

	other := NewContainer()
	require.True(t, other.Import(exported))
	assert.True(t, Equal(exported, other.Export()))

	// The import deep-copied: mutating the source snapshot is invisible.
	exported.(Object)["count"] = Int(99)
	v, _ := other.Get("count")
	assert.Equal(t, Int(2), v)
}

func TestContainerFind(t *testing.T) {
	c := NewContainer()
	c.Set("users.0.name", "A")
	c.Set("users.1.name", "B")

	assert.Equal(t, []string{"users.0.name", "users.1.name"}, c.Find("users.*.name"))
}
