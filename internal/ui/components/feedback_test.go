package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlert(t *testing.T) {
	t.Parallel()

	alert := ErrorAlert("theme failed to load").WithDismissible(true)
	assert.Equal(t, AlertVariantDanger, alert.Variant())

	out := alert.View()
	assert.Contains(t, out, "Error")
	assert.Contains(t, out, "theme failed to load")
	assert.Contains(t, out, "[×]")

	plain := NewAlert("saved").WithVariant(AlertVariantSuccess).View()
	assert.Contains(t, plain, "saved")
	assert.NotContains(t, plain, "[×]")
}

func TestAlert_WidthIncludesBorder(t *testing.T) {
	t.Parallel()

	out := NewAlert("short").WithWidth(30).View()
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 30, lipgloss.Width(line))
	}
}

func TestAlertVariantsRegistered(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	for _, variant := range []AlertVariant{AlertVariantInfo, AlertVariantSuccess, AlertVariantWarning, AlertVariantDanger} {
		assert.NotNil(t, theme.Variants.Get(variant))
	}
}

func TestCard(t *testing.T) {
	t.Parallel()

	card := NewCard("Release").
		WithIcon("★").
		WithDescription("Ships the new palette.").
		WithMeta("version", "1.2.0").
		WithMeta("author", "design").
		WithFooter(NewButton("Open")).
		WithWidth(36)

	out := card.View()
	assert.Contains(t, out, "★ Release")
	assert.Contains(t, out, "Ships the new palette.")
	assert.Contains(t, out, "Open")

	author := strings.Index(out, "author")
	version := strings.Index(out, "version")
	require.Positive(t, author)
	assert.Less(t, author, version)

	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 36, lipgloss.Width(line))
	}
}

func TestCard_IgnoresTinyWidth(t *testing.T) {
	t.Parallel()

	card := NewCard("x").WithWidth(3)
	line := strings.Split(card.View(), "\n")[0]
	assert.Equal(t, defaultCardWidth, lipgloss.Width(line))
}

func TestProgress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current int
		total   int
		ratio   float64
		label   string
	}{
		{name: "partial", current: 1, total: 4, ratio: 0.25, label: "1/4"},
		{name: "complete", current: 3, total: 3, ratio: 1, label: "3/3"},
		{name: "overflow clamps", current: 5, total: 2, ratio: 1, label: "2/2"},
		{name: "negative clamps", current: -1, total: 2, ratio: 0, label: "0/2"},
		{name: "empty total", current: 0, total: 0, ratio: 0, label: "0/0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProgress(tt.current, tt.total).WithWidth(10)
			assert.InDelta(t, tt.ratio, p.Ratio(), 0.0001)

			out := p.View()
			assert.True(t, strings.HasPrefix(ansi.Strip(out), tt.label+" "))
			assert.Equal(t, len(tt.label)+1+10, lipgloss.Width(out))
		})
	}
}
