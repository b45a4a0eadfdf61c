package treestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreDefaultStack(t *testing.T) {
	ts := New(WithClock(testClock()))

	var fired []firing
	ts.Subscribe("user.*", recorder(&fired))

	require.True(t, ts.Set("user.name", "John"))

	// One mutation flows through every layer: tree, journal, subscribers.
	v, ok := ts.Get("user.name")
	require.True(t, ok)
	assert.Equal(t, String("John"), v)

	entries := ts.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, EntrySet, entries[0].Kind)

	require.Len(t, fired, 1)
	assert.Equal(t, String("John"), fired[0].newValue)
	assert.Nil(t, fired[0].oldValue)
	assert.Equal(t, Path{"user", "name"}, fired[0].path)
}

func TestStoreSilentWrite(t *testing.T) {
	ts := New(WithClock(testClock()))

	var fired []firing
	ts.Subscribe("**", recorder(&fired))

	require.True(t, ts.Set("a", 1, Silent()))

	assert.Empty(t, fired, "silent write fires no callback")
	assert.Len(t, ts.Entries(), 1, "silent write is still journaled")
}

func TestStoreWithoutJournal(t *testing.T) {
	ts := New(WithoutJournal())

	require.True(t, ts.Set("a", 1))
	assert.Nil(t, ts.Entries())

	_, err := ts.Begin()
	assert.ErrorIs(t, err, ErrJournalDisabled)
	assert.ErrorIs(t, ts.Commit(nil), ErrJournalDisabled)
	assert.ErrorIs(t, ts.Rollback(nil), ErrJournalDisabled)
}

func TestStoreWithoutObservable(t *testing.T) {
	ts := New(WithoutObservable())

	cancel := ts.Subscribe("a", func(_, _ Value, _ Path) {
		t.Fatal("callback must never fire")
	})
	require.NotNil(t, cancel)
	cancel() // no-op

	require.True(t, ts.Set("a", 1))
	assert.Len(t, ts.Entries(), 1, "journal layer still present")
}

func TestStoreTransactionAtomicity(t *testing.T) {
	ts := New(WithClock(testClock()))
	ts.Set("balance", 100)
	ts.Set("owner", "John")

	before := ts.Export()

	tx, err := ts.Begin()
	require.NoError(t, err)
	ts.Set("balance", 50)
	ts.Set("pending", true)
	ts.Delete("owner")

	require.NoError(t, ts.Rollback(tx))

	assert.True(t, Equal(before, ts.Export()))
	v, _ := ts.Get("balance")
	assert.Equal(t, Int(100), v)
	assert.True(t, ts.Has("owner"))
	assert.False(t, ts.Has("pending"))
}

func TestStoreRollbackDoesNotNotify(t *testing.T) {
	ts := New(WithClock(testClock()))

	var fired []firing
	ts.Subscribe("**", recorder(&fired))

	tx, err := ts.Begin()
	require.NoError(t, err)
	ts.Set("a", 1)
	require.NoError(t, ts.Rollback(tx))

	// The in-transaction set notified; the rollback replay did not.
	require.Len(t, fired, 1)
	assert.Equal(t, Path{"a"}, fired[0].path)
}

func TestStoreImportExportRoundTrip(t *testing.T) {
	ts := New(WithClock(testClock()))
	ts.Set("user.profile.address.city", "New York")
	ts.Set("users.0.name", "A")
	ts.Set("users.1.name", "B")

	snapshot := ts.Export()

	other := New(WithClock(testClock()))
	require.True(t, other.Import(snapshot))

	assert.True(t, Equal(snapshot, other.Export()),
		"import(export()) reproduces an observationally identical tree")
}

func TestStoreSetGetHasProperty(t *testing.T) {
	ts := New(WithClock(testClock()))

	cases := []struct {
		path  string
		value any
		want  Value
	}{
		{"s", "str", String("str")},
		{"deep.nested.int", 7, Int(7)},
		{"f", 2.5, Float(2.5)},
		{"b", false, Bool(false)},
		{"n", nil, Null{}},
		{"obj", Object{"k": Int(1)}, Object{"k": Int(1)}},
	}

	for _, tc := range cases {
		require.True(t, ts.Set(tc.path, tc.value), tc.path)
		got, ok := ts.Get(tc.path)
		require.True(t, ok, tc.path)
		assert.True(t, Equal(tc.want, got), tc.path)
		assert.True(t, ts.Has(tc.path), tc.path)
	}
}

func TestStoreFindScenario(t *testing.T) {
	ts := New()
	ts.Set("users.0.name", "A")
	ts.Set("users.1.name", "B")

	assert.Equal(t, []string{"users.0.name", "users.1.name"},
		ts.Find("users.*.name"))
}

func TestStoreBranch(t *testing.T) {
	ts := New()
	ts.Set("a.b.c", 1)

	assert.Equal(t, Object{"c": Int(1)}, ts.Branch("a.b"))
	assert.Equal(t, Object{}, ts.Branch("missing"))
}

func TestStoreClearThroughStack(t *testing.T) {
	ts := New(WithClock(testClock()))
	ts.Set("a", 1)

	var fired []firing
	ts.Subscribe("**", recorder(&fired))

	require.True(t, ts.Clear())

	assert.Equal(t, Object{}, ts.Export())
	entries := ts.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, EntryClear, entries[0].Kind)
	require.Len(t, fired, 1)
	assert.Equal(t, Path{}, fired[0].path)
}
