package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme_RegistersVariants(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()

	require.Equal(t, "default", theme.Name)
	for _, v := range []ButtonVariant{ButtonVariantPrimary, ButtonVariantSecondary, ButtonVariantDanger, ButtonVariantMuted} {
		assert.NotNil(t, theme.Variants.Get(v), "button variant %d", v)
	}
	for _, v := range []ToastVariant{ToastVariantInfo, ToastVariantSuccess, ToastVariantWarning, ToastVariantError} {
		assert.NotNil(t, theme.Variants.Get(v), "toast variant %d", v)
	}
	assert.Nil(t, theme.Variants.Get("unknown"))
}

func TestPaletteSlotAndRoleLookup(t *testing.T) {
	t.Parallel()

	palette := DefaultPalette()

	for _, name := range SlotNames {
		set, ok := palette.Slot(name)
		require.True(t, ok, name)
		for _, role := range RoleNames {
			_, ok := set.Role(role)
			require.True(t, ok, role)
		}
	}

	_, ok := palette.Slot("accent")
	assert.False(t, ok)

	set, _ := palette.Slot("primary")
	colour, _ := set.Role("base")
	colour.Light = "#000000"
	assert.Equal(t, "#000000", palette.Primary.Base.Light)
}

func TestThemeForMode_PinsColours(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()

	dark := theme.ForMode(true)
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#60a5fa", Dark: "#60a5fa"}, dark.Palette.Primary.Base)

	light := theme.ForMode(false)
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#3b82f6", Dark: "#3b82f6"}, light.Palette.Primary.Base)

	// The source theme is untouched.
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#3b82f6", Dark: "#60a5fa"}, theme.Palette.Primary.Base)
}

func TestSpacingLookupFallsBackToMedium(t *testing.T) {
	t.Parallel()

	table := DefaultSpacing().Padding
	assert.Equal(t, table[SpacingSizeMedium], spacingLookup(table, SpacingSize(99)))
	assert.Equal(t, 0, spacingLookup(table, SpacingSizeNone))
}

func TestAddAppliers_PreservesExistingStrategy(t *testing.T) {
	t.Parallel()

	base := NewBaseComponent()
	base.SetAppliers(func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Bold(true) })
	base.AddAppliers(func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Italic(true) })

	style := base.ComputeStyle(DefaultTheme())
	assert.True(t, style.GetBold())
	assert.True(t, style.GetItalic())
}
