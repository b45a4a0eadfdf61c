package treestore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("testdata", "config.yaml"))
	require.NoError(t, err)

	assert.True(t, cfg.Journal)
	assert.Equal(t, 250, cfg.MaxEntries)
	assert.True(t, cfg.Observable)
}

func TestLoadConfigUnknownFieldRejected(t *testing.T) {
	_, err := LoadConfig(filepath.Join("testdata", "config_unknown_field.yaml"))
	require.Error(t, err, "typoed fields must fail at load time")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join("testdata", "does_not_exist.yaml"))
	require.Error(t, err)
}

func TestFromConfigFullStack(t *testing.T) {
	ts := FromConfig(Config{Journal: true, MaxEntries: 3, Observable: true})

	var fired []firing
	ts.Subscribe("**", recorder(&fired))

	for i := 0; i < 5; i++ {
		require.True(t, ts.Set("counter", i))
	}

	assert.Len(t, ts.Entries(), 3, "configured bound applies")
	assert.Len(t, fired, 5)
}

func TestFromConfigBareContainer(t *testing.T) {
	ts := FromConfig(Config{})

	require.True(t, ts.Set("a", 1))
	assert.Nil(t, ts.Entries())
	_, err := ts.Begin()
	assert.ErrorIs(t, err, ErrJournalDisabled)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.Journal)
	assert.True(t, cfg.Observable)
	assert.Equal(t, DefaultMaxEntries, cfg.MaxEntries)
}
