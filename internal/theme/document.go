// Package theme loads design token documents and turns them into
// components.Theme values.
//
// A document holds a light token tree and an optional dark tree of
// overrides. Token values may reference other tokens with {{ path }}
// templates, which Resolve expands.
package theme

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	loomerrors "github.com/alexisbeaulieu97/loom/pkg/errors"
)

// Format names a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Document is a theme file as written on disk.
type Document struct {
	Version     string         `yaml:"version" toml:"version" validate:"required,semver"`
	Name        string         `yaml:"name" toml:"name" validate:"required"`
	Description string         `yaml:"description,omitempty" toml:"description,omitempty"`
	Light       map[string]any `yaml:"light" toml:"light"`
	Dark        map[string]any `yaml:"dark,omitempty" toml:"dark,omitempty"`
}

//go:embed default.yaml
var defaultDocument []byte

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Default returns a fresh copy of the built-in theme document.
func Default() *Document {
	doc, err := Parse(defaultDocument, FormatYAML)
	if err != nil {
		panic(fmt.Sprintf("theme: embedded default is invalid: %v", err))
	}
	return doc
}

// FormatForPath picks a format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported theme extension %q", filepath.Ext(path))
	}
}

// Load reads and decodes the theme at path. The document is not validated.
func Load(path string) (*Document, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, loomerrors.NewParseError(path, 0, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, loomerrors.NewParseError(path, 0, err)
	}

	return decode(path, data, format)
}

// Parse decodes a document from memory.
func Parse(data []byte, format Format) (*Document, error) {
	return decode("<input>", data, format)
}

func decode(path string, data []byte, format Format) (*Document, error) {
	var doc Document

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, loomerrors.NewParseError(path, extractYAMLLine(err), err)
		}
	case FormatTOML:
		meta, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, loomerrors.NewParseError(path, extractTOMLLine(err), err)
		}
		// Token trees decode into maps, which toml reports as undecoded.
		for _, key := range meta.Undecoded() {
			if len(key) > 0 && (key[0] == "light" || key[0] == "dark") {
				continue
			}
			return nil, loomerrors.NewParseError(path, 0, fmt.Errorf("unknown field %q", key.String()))
		}
	default:
		return nil, loomerrors.NewParseError(path, 0, fmt.Errorf("unknown format %q", format))
	}

	return &doc, nil
}

// Encode writes doc in format.
func Encode(doc *Document, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	return buf.Bytes(), nil
}

func extractYAMLLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

func extractTOMLLine(err error) int {
	var perr toml.ParseError
	if errors.As(err, &perr) {
		return perr.Position.Line
	}
	return 0
}
