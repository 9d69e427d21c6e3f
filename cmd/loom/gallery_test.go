package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/loom/internal/config"
	"github.com/alexisbeaulieu97/loom/internal/prefs"
	"github.com/alexisbeaulieu97/loom/internal/theme"
)

func TestGalleryRefusesWithoutTerminal(t *testing.T) {
	t.Parallel()

	// A bytes.Buffer is never a terminal.
	_, err := execute(t, "gallery", "--config", emptyConfig(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errNotTerminal))
	assert.Contains(t, err.Error(), "loom stories")
}

func TestGalleryModePrecedence(t *testing.T) {
	t.Parallel()

	store, err := prefs.NewStore(filepath.Join(t.TempDir(), "prefs.json"))
	require.NoError(t, err)
	store.Update(func(p *prefs.Preferences) { p.Mode = "dark" })

	cfg := config.Default()
	cfg.Mode = "light"

	t.Run("saved preference beats settings", func(t *testing.T) {
		cmd := newGalleryCmd(&rootFlags{})
		mode, err := galleryMode(cmd, cfg, store)
		require.NoError(t, err)
		assert.Equal(t, theme.ModeDark, mode)
	})

	t.Run("flag beats saved preference", func(t *testing.T) {
		root := newRootCmd()
		require.NoError(t, root.PersistentFlags().Set("mode", "light"))
		mode, err := galleryMode(root, cfg, store)
		require.NoError(t, err)
		assert.Equal(t, theme.ModeLight, mode)
	})

	t.Run("settings without preference", func(t *testing.T) {
		cmd := newGalleryCmd(&rootFlags{})
		mode, err := galleryMode(cmd, cfg, nil)
		require.NoError(t, err)
		assert.Equal(t, theme.ModeLight, mode)
	})
}

func TestLoadSettingsFlagsOverrideFile(t *testing.T) {
	t.Parallel()

	configPath := writeFile(t, "config.yaml", "mode: dark\nlog_level: debug\nstart_story: overlays/dialog\n")

	root := newRootCmd()
	require.NoError(t, root.PersistentFlags().Set("mode", "light"))

	cfg, err := loadSettings(root, &rootFlags{configPath: configPath, mode: "light"})
	require.NoError(t, err)

	assert.Equal(t, "light", cfg.Mode)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "overlays/dialog", cfg.StartStory)
}

func TestLoadSettingsMissingExplicitFile(t *testing.T) {
	t.Parallel()

	root := newRootCmd()
	_, err := loadSettings(root, &rootFlags{configPath: filepath.Join(t.TempDir(), "absent.yaml")})
	require.Error(t, err)
}

func TestLoadDocumentDefault(t *testing.T) {
	t.Parallel()

	doc, err := loadDocument(config.Default())
	require.NoError(t, err)
	assert.Equal(t, "default", doc.Name)
}
