package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ColourSet is a coordinated group of adaptive colours for one semantic slot.
//
//   - Base: background or brand colour
//   - OnBase: content drawn on top of Base
//   - Muted: subdued variant of Base
//   - Contrast: accent that stands out against Base
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette holds the semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// SlotNames lists palette slots in their canonical order. Theme documents use
// these names as token keys (palette.<slot>.<role>).
var SlotNames = []string{"primary", "secondary", "surface", "success", "warning", "danger", "info", "neutral"}

// RoleNames lists the colour roles of a ColourSet as used in token keys.
var RoleNames = []string{"base", "on_base", "muted", "contrast"}

// Slot returns a pointer to the named slot, or false for an unknown name.
func (p *Palette) Slot(name string) (*ColourSet, bool) {
	switch name {
	case "primary":
		return &p.Primary, true
	case "secondary":
		return &p.Secondary, true
	case "surface":
		return &p.Surface, true
	case "success":
		return &p.Success, true
	case "warning":
		return &p.Warning, true
	case "danger":
		return &p.Danger, true
	case "info":
		return &p.Info, true
	case "neutral":
		return &p.Neutral, true
	default:
		return nil, false
	}
}

// Role returns a pointer to the named role, or false for an unknown name.
func (c *ColourSet) Role(name string) (*lipgloss.AdaptiveColor, bool) {
	switch name {
	case "base":
		return &c.Base, true
	case "on_base":
		return &c.OnBase, true
	case "muted":
		return &c.Muted, true
	case "contrast":
		return &c.Contrast, true
	default:
		return nil, false
	}
}

// PaletteSlot selects a ColourSet from a Palette.
type PaletteSlot func(Palette) ColourSet

// Predefined slots for use with the style modifiers.
var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// SpacingSize enumerates spacing tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
)

const spacingSizeCount = int(SpacingSizeExtraLarge) + 1

// SpacingSizeNames maps token keys (spacing.padding.<name>) to sizes.
var SpacingSizeNames = map[string]SpacingSize{
	"none": SpacingSizeNone,
	"xs":   SpacingSizeExtraSmall,
	"sm":   SpacingSizeSmall,
	"md":   SpacingSizeMedium,
	"lg":   SpacingSizeLarge,
	"xl":   SpacingSizeExtraLarge,
}

// SpacingTable maps each SpacingSize to a cell count.
type SpacingTable [spacingSizeCount]int

// SpacingConfig keeps separate scales for padding and margin.
type SpacingConfig struct {
	Padding SpacingTable
	Margin  SpacingTable
}

// DefaultSpacing returns the terminal-sized spacing scale.
func DefaultSpacing() SpacingConfig {
	table := SpacingTable{0, 1, 1, 2, 3, 4}
	return SpacingConfig{Padding: table, Margin: table}
}

// BorderVariant names a border from the theme's BorderSet.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// TypographyVariant names a text preset.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantCode
	TypographyVariantEmphasis
	TypographyVariantMuted
)

// TypographyScale contains the text presets derived from a palette.
type TypographyScale struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
	Muted    lipgloss.Style
}

// ButtonVariant selects a button colour scheme.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantDanger
	ButtonVariantMuted
)

// ToastVariant selects a toast colour scheme.
type ToastVariant int

const (
	ToastVariantInfo ToastVariant = iota
	ToastVariantSuccess
	ToastVariantWarning
	ToastVariantError
)

// VariantRegistry maps component variants to style strategies so that themes
// drive variant styling through data instead of switch statements.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates an empty registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

// Register maps variant to strategy.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get returns the strategy for variant, or nil.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable bundle of design tokens ready for rendering.
type Theme struct {
	Name       string
	Palette    Palette
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Variants   *VariantRegistry
}

// NewTheme derives typography and variant styling from palette and spacing.
func NewTheme(name string, palette Palette, spacing SpacingConfig) Theme {
	variants := NewVariantRegistry()
	registerButtonVariants(variants)
	registerToastVariants(variants)
	registerAlertVariants(variants)

	return Theme{
		Name:    name,
		Palette: palette,
		Borders: BorderSet{
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
			Double:  lipgloss.DoubleBorder(),
		},
		Spacing:    spacing,
		Typography: typographyFor(palette),
		Variants:   variants,
	}
}

// ForMode pins every adaptive colour to its light or dark half, so the theme
// renders the same way regardless of the terminal background.
func (t Theme) ForMode(dark bool) Theme {
	pin := func(c lipgloss.AdaptiveColor) lipgloss.AdaptiveColor {
		if dark {
			return lipgloss.AdaptiveColor{Light: c.Dark, Dark: c.Dark}
		}
		return lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Light}
	}

	palette := t.Palette
	for _, name := range SlotNames {
		set, _ := palette.Slot(name)
		for _, role := range RoleNames {
			colour, _ := set.Role(role)
			*colour = pin(*colour)
		}
	}

	return NewTheme(t.Name, palette, t.Spacing)
}

// DefaultPalette returns the built-in light/dark palette.
func DefaultPalette() Palette {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	return Palette{
		Primary:   ColourSet{Base: ac("#3b82f6", "#60a5fa"), OnBase: ac("#f8fafc", "#0b1120"), Muted: ac("#2563eb", "#1d4ed8"), Contrast: ac("#facc15", "#ca8a04")},
		Secondary: ColourSet{Base: ac("#a855f7", "#c084fc"), OnBase: ac("#f8fafc", "#1f2937"), Muted: ac("#7c3aed", "#6b21a8"), Contrast: ac("#f472b6", "#f472b6")},
		Surface:   ColourSet{Base: ac("#f9fafb", "#111827"), OnBase: ac("#111827", "#f9fafb"), Muted: ac("#e2e8f0", "#1f2937"), Contrast: ac("#3b82f6", "#60a5fa")},
		Success:   ColourSet{Base: ac("#22c55e", "#4ade80"), OnBase: ac("#052e16", "#022c22"), Muted: ac("#16a34a", "#15803d"), Contrast: ac("#f8fafc", "#f8fafc")},
		Warning:   ColourSet{Base: ac("#eab308", "#facc15"), OnBase: ac("#422006", "#422006"), Muted: ac("#ca8a04", "#a16207"), Contrast: ac("#111827", "#111827")},
		Danger:    ColourSet{Base: ac("#ef4444", "#f87171"), OnBase: ac("#7f1d1d", "#450a0a"), Muted: ac("#dc2626", "#b91c1c"), Contrast: ac("#f8fafc", "#f8fafc")},
		Info:      ColourSet{Base: ac("#06b6d4", "#22d3ee"), OnBase: ac("#083344", "#04121a"), Muted: ac("#0891b2", "#0e7490"), Contrast: ac("#f8fafc", "#f8fafc")},
		Neutral:   ColourSet{Base: ac("#64748b", "#94a3b8"), OnBase: ac("#f1f5f9", "#0f172a"), Muted: ac("#475569", "#334155"), Contrast: ac("#f8fafc", "#f8fafc")},
	}
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return NewTheme("default", DefaultPalette(), DefaultSpacing())
}

func registerButtonVariants(registry *VariantRegistry) {
	for variant, slot := range map[ButtonVariant]PaletteSlot{
		ButtonVariantPrimary:   PalettePrimary,
		ButtonVariantSecondary: PaletteSecondary,
		ButtonVariantDanger:    PaletteDanger,
		ButtonVariantMuted:     PaletteNeutral,
	} {
		registry.Register(variant, NewCompositeStrategy(
			Background(slot),
			PaddingX(SpacingSizeMedium),
		))
	}
}

func registerToastVariants(registry *VariantRegistry) {
	for variant, slot := range map[ToastVariant]PaletteSlot{
		ToastVariantInfo:    PaletteInfo,
		ToastVariantSuccess: PaletteSuccess,
		ToastVariantWarning: PaletteWarning,
		ToastVariantError:   PaletteDanger,
	} {
		registry.Register(variant, NewCompositeStrategy(
			Background(slot),
			Border(BorderVariantRounded),
			BorderColour(slot),
			PaddingX(SpacingSizeSmall),
		))
	}
}

func registerAlertVariants(registry *VariantRegistry) {
	for variant, slot := range map[AlertVariant]PaletteSlot{
		AlertVariantInfo:    PaletteInfo,
		AlertVariantSuccess: PaletteSuccess,
		AlertVariantWarning: PaletteWarning,
		AlertVariantDanger:  PaletteDanger,
	} {
		registry.Register(variant, NewCompositeStrategy(
			Foreground(slot),
			Border(BorderVariantNormal),
			BorderColour(slot),
			PaddingX(SpacingSizeSmall),
		))
	}
}

func typographyFor(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Body:     body,
		Title:    body.Bold(true).Foreground(p.Primary.Base),
		Subtitle: body.Foreground(p.Secondary.Muted).Faint(true),
		Code:     body.Foreground(p.Secondary.Base).Background(p.Surface.Muted).Padding(0, 1),
		Emphasis: body.Bold(true),
		Muted:    body.Foreground(p.Neutral.Base),
	}
}

// BorderForVariant returns the border for variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	default:
		return lipgloss.Border{}
	}
}

// TypographyStyle returns the preset for variant.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantMuted:
		return typo.Muted
	default:
		return typo.Body
	}
}

func spacingLookup(table SpacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}
