package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/loom/internal/ui/components"
	loomerrors "github.com/alexisbeaulieu97/loom/pkg/errors"
)

// Build resolves both modes and returns a component theme whose colours adapt
// to the terminal background. Slots or roles missing from the document keep
// the built-in values.
func Build(doc *Document) (components.Theme, error) {
	light, err := doc.Resolve(ModeLight)
	if err != nil {
		return components.Theme{}, err
	}
	dark, err := doc.Resolve(ModeDark)
	if err != nil {
		return components.Theme{}, err
	}

	palette := components.DefaultPalette()
	for _, slot := range components.SlotNames {
		set, _ := palette.Slot(slot)
		for _, role := range components.RoleNames {
			colour, _ := set.Role(role)
			key := "palette." + slot + "." + role
			if v, ok := light[key]; ok {
				colour.Light = v
			}
			if v, ok := dark[key]; ok {
				colour.Dark = v
			}
		}
	}

	spacing := components.DefaultSpacing()
	if err := applySpacing(&spacing.Padding, light, "spacing.padding."); err != nil {
		return components.Theme{}, err
	}
	if err := applySpacing(&spacing.Margin, light, "spacing.margin."); err != nil {
		return components.Theme{}, err
	}

	return components.NewTheme(doc.Name, palette, spacing), nil
}

// BuildMode builds the theme and pins it to mode. ModeAuto leaves colours
// adaptive.
func BuildMode(doc *Document, mode Mode) (components.Theme, error) {
	built, err := Build(doc)
	if err != nil {
		return components.Theme{}, err
	}
	switch mode {
	case ModeLight:
		return built.ForMode(false), nil
	case ModeDark:
		return built.ForMode(true), nil
	default:
		return built, nil
	}
}

func applySpacing(table *components.SpacingTable, tokens Tokens, prefix string) error {
	for _, key := range tokens.Keys() {
		name, ok := strings.CutPrefix(key, prefix)
		if !ok {
			continue
		}
		size, ok := components.SpacingSizeNames[name]
		if !ok {
			return loomerrors.NewValidationError(key, fmt.Sprintf("unknown spacing size %q", name), nil)
		}
		cells, err := strconv.Atoi(strings.TrimSpace(tokens[key]))
		if err != nil || cells < 0 {
			return loomerrors.NewValidationError(key, fmt.Sprintf("%q is not a cell count", tokens[key]), err)
		}
		table[size] = cells
	}
	return nil
}
