package main

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTokensCommandCSS(t *testing.T) {
	t.Parallel()

	output, err := execute(t, "tokens", "--config", emptyConfig(t))
	require.NoError(t, err)

	assert.Contains(t, output, ":root {\n")
	assert.Contains(t, output, "  --loom-palette-primary-base: #3b82f6;\n")
	assert.Contains(t, output, "  --loom-palette-primary-on-base: #f8fafc;\n")
}

func TestTokensCommandDarkModeAndPrefix(t *testing.T) {
	t.Parallel()

	output, err := execute(t, "tokens", "--config", emptyConfig(t), "--mode", "dark", "--prefix", "ds")
	require.NoError(t, err)

	assert.Contains(t, output, "--ds-palette-primary-base: #60a5fa;")
	assert.NotContains(t, output, "--loom-")
}

func TestTokensCommandStructuredFormats(t *testing.T) {
	t.Parallel()

	output, err := execute(t, "tokens", "--config", emptyConfig(t), "--format", "yaml")
	require.NoError(t, err)

	var fromYAML map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(output), &fromYAML))
	assert.Equal(t, "#3b82f6", fromYAML["palette.primary.base"])

	output, err = execute(t, "tokens", "--config", emptyConfig(t), "--format", "toml")
	require.NoError(t, err)

	var fromTOML map[string]string
	_, err = toml.Decode(output, &fromTOML)
	require.NoError(t, err)
	assert.Equal(t, "#3b82f6", fromTOML["palette.primary.base"])
}

func TestTokensCommandUsesThemeFile(t *testing.T) {
	t.Parallel()

	themePath := writeFile(t, "brand.yaml", `version: 1.2.0
name: brand
light:
  brand: "#ff0000"
  palette:
    primary:
      base: "{{ brand }}"
`)

	output, err := execute(t, "tokens", "--config", emptyConfig(t), "--theme", themePath)
	require.NoError(t, err)
	assert.Contains(t, output, "--loom-palette-primary-base: #ff0000;")
	assert.Contains(t, output, "--loom-brand: #ff0000;")
}

func TestTokensCommandRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "tokens", "--config", emptyConfig(t), "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "xml"`)
}
