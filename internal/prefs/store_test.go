package prefs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_StartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")

	store, err := NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, Preferences{}, store.Get())
	assert.DirExists(t, filepath.Dir(path))
	assert.Equal(t, path, store.Path())
}

func TestStore_SaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	stamp := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	store, err := NewStore(path)
	require.NoError(t, err)
	store.now = func() time.Time { return stamp }

	store.Set(Preferences{Mode: "dark", LastStory: "overlays/drawer"})
	require.NoError(t, store.Save())

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	reloaded, err := NewStore(path)
	require.NoError(t, err)
	got := reloaded.Get()
	assert.Equal(t, "dark", got.Mode)
	assert.Equal(t, "overlays/drawer", got.LastStory)
	assert.True(t, stamp.Equal(got.UpdatedAt))
}

func TestStore_Update(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "prefs.json"))
	require.NoError(t, err)

	store.Set(Preferences{Mode: "light", LastStory: "inputs/tabs"})
	store.Update(func(p *Preferences) { p.Mode = "auto" })

	got := store.Get()
	assert.Equal(t, "auto", got.Mode)
	assert.Equal(t, "inputs/tabs", got.LastStory)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestNewStore_RejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewStore(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse preferences")
}
