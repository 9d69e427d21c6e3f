package theme

import (
	"fmt"
	"strings"
)

// Mode selects which half of a theme renders.
type Mode string

const (
	// ModeAuto follows the terminal background.
	ModeAuto  Mode = "auto"
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// ParseMode accepts auto, light or dark in any case. Empty means auto.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeLight:
		return ModeLight, nil
	case ModeDark:
		return ModeDark, nil
	default:
		return "", fmt.Errorf("unknown theme mode %q (want auto, light or dark)", s)
	}
}

// Next cycles auto -> light -> dark -> auto.
func (m Mode) Next() Mode {
	switch m {
	case ModeAuto:
		return ModeLight
	case ModeLight:
		return ModeDark
	default:
		return ModeAuto
	}
}

func (m Mode) String() string {
	if m == "" {
		return string(ModeAuto)
	}
	return string(m)
}

// Resolve expands the document's tokens for mode. Dark tokens are the light
// tree with the dark overrides merged on top; ModeAuto resolves light.
func (d *Document) Resolve(mode Mode) (Tokens, error) {
	tree := d.Light
	if mode == ModeDark {
		merged, err := Merge(d.Light, d.Dark)
		if err != nil {
			return nil, err
		}
		tree = merged
	}
	return Resolve(Flatten(tree))
}

// Extend returns a document whose token trees are base's with override's
// merged on top. Metadata comes from override when set.
func Extend(base, override *Document) (*Document, error) {
	light, err := Merge(base.Light, override.Light)
	if err != nil {
		return nil, err
	}
	dark, err := Merge(base.Dark, override.Dark)
	if err != nil {
		return nil, err
	}

	out := &Document{
		Version:     base.Version,
		Name:        base.Name,
		Description: base.Description,
		Light:       light,
		Dark:        dark,
	}
	if override.Version != "" {
		out.Version = override.Version
	}
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Description != "" {
		out.Description = override.Description
	}
	return out, nil
}
