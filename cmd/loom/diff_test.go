package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffCommandIdenticalThemes(t *testing.T) {
	t.Parallel()

	output, err := execute(t, "diff", "default", "default")
	require.NoError(t, err)
	assert.Contains(t, output, "No differences.")
}

func TestDiffCommandReportsChangedTokens(t *testing.T) {
	t.Parallel()

	brand := writeFile(t, "brand.yaml", `version: 1.0.0
name: brand
light:
  palette:
    primary:
      base: "#ff0000"
`)

	output, err := execute(t, "diff", "default", brand)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errThemesDiffer))

	assert.Contains(t, output, "--- default")
	assert.Contains(t, output, "+++ "+brand)
	assert.Contains(t, output, "-palette.primary.base: #3b82f6")
	assert.Contains(t, output, "+palette.primary.base: #ff0000")
	assert.Contains(t, output, "added")
}

func TestDiffCommandDarkMode(t *testing.T) {
	t.Parallel()

	output, err := execute(t, "diff", "--as", "dark", "default", "default")
	require.NoError(t, err)
	assert.Contains(t, output, "No differences.")

	_, err = execute(t, "diff", "--as", "sepia", "default", "default")
	require.Error(t, err)
}

func TestDiffCommandAgainstRevision(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	path := filepath.Join(dir, "brand.yaml")
	committed := "version: 1.0.0\nname: brand\nlight:\n  palette:\n    primary:\n      base: \"#111111\"\n"
	require.NoError(t, os.WriteFile(path, []byte(committed), 0o644))

	worktree, err := repo.Worktree()
	require.NoError(t, err)
	_, err = worktree.Add("brand.yaml")
	require.NoError(t, err)
	_, err = worktree.Commit("add brand", &git.CommitOptions{
		Author: &object.Signature{Name: "loom", Email: "loom@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	output, err := execute(t, "diff", "--rev", "HEAD", path)
	require.NoError(t, err)
	assert.Contains(t, output, "No differences.")

	require.NoError(t, os.WriteFile(path, []byte(strings.Replace(committed, "#111111", "#222222", 1)), 0o644))

	output, err = execute(t, "diff", "--rev", "HEAD", path)
	require.ErrorIs(t, err, errThemesDiffer)
	assert.Contains(t, output, "--- "+path+"@HEAD")
	assert.Contains(t, output, "-palette.primary.base: #111111")
	assert.Contains(t, output, "+palette.primary.base: #222222")

	_, err = execute(t, "diff", "--rev", "HEAD", path, path)
	require.Error(t, err)
}
