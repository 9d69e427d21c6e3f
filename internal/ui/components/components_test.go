package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/loom/internal/ui"
)

func TestRenderNode(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext()
	assert.Empty(t, RenderNode(nil, ctx))
	assert.Equal(t, "plain", RenderNode(ui.RenderFunc(func() string { return "plain" }), ctx))
	assert.Contains(t, RenderNode(NewText("themed"), ctx), "themed")
}

func TestStack_SkipsEmptyChildren(t *testing.T) {
	t.Parallel()

	out := VStack(NewText("a"), NewText(""), NewText("b")).View()
	assert.Equal(t, "a\nb", out)

	gapped := VStack(NewText("a"), NewText("b")).WithGap(1).View()
	lines := strings.Split(gapped, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "a", lines[0])
	assert.Empty(t, strings.TrimSpace(lines[1]))
	assert.Equal(t, "b", lines[2])

	row := HStack(NewText("a"), NewText("b")).WithGap(2).View()
	assert.Equal(t, "a  b", row)
}

func TestStack_VerticalWithoutGap(t *testing.T) {
	t.Parallel()

	out := VStack(NewText("one"), NewText("two")).View()
	assert.Equal(t, "one\ntwo", out)

	negative := VStack(NewText("one"), NewText("two")).WithGap(-3).View()
	assert.Equal(t, "one\ntwo", negative)

	row := HStack(NewText("one"), NewText("two")).WithGap(-1).View()
	assert.Equal(t, "onetwo", row)
}

func TestDivider_Width(t *testing.T) {
	t.Parallel()

	assert.Len(t, []rune(NewDivider().WithWidth(5).View()), 5)

	ctx := DefaultContext().WithConstraints(WithMaxWidth(7))
	assert.Len(t, []rune(NewDivider().ViewWithContext(ctx)), 7)

	assert.Len(t, []rune(NewDivider().View()), defaultDividerWidth)
}

func TestButton_States(t *testing.T) {
	t.Parallel()

	b := DangerButton("Delete").WithFocused(true)
	require.Equal(t, ButtonVariantDanger, b.Variant())
	assert.True(t, b.IsFocused())
	assert.Contains(t, b.View(), "Delete")

	b.WithDisabled(true)
	assert.True(t, b.IsDisabled())
	assert.False(t, b.computeStyle(DefaultTheme()).GetUnderline())
}

func TestDialog_FocusSkipsDisabledActions(t *testing.T) {
	t.Parallel()

	d := NewDialog("Delete file?", NewText("This cannot be undone.")).WithActions(
		SecondaryButton("Cancel"),
		NewButton("Archive").WithDisabled(true),
		DangerButton("Delete"),
	)

	label, ok := d.Focused()
	require.True(t, ok)
	assert.Equal(t, "Cancel", label)

	d.FocusNext()
	label, _ = d.Focused()
	assert.Equal(t, "Delete", label)

	d.FocusNext()
	label, _ = d.Focused()
	assert.Equal(t, "Cancel", label)

	d.FocusPrev()
	label, _ = d.Focused()
	assert.Equal(t, "Delete", label)
}

func TestDialog_RendersOnlyWhenOpen(t *testing.T) {
	t.Parallel()

	d := NewDialog("Confirm", NewText("Proceed?")).WithActions(NewButton("OK"))
	assert.Empty(t, d.View())

	d.Open()
	out := d.View()
	assert.Contains(t, out, "Confirm")
	assert.Contains(t, out, "Proceed?")
	assert.Contains(t, out, "OK")

	d.Close()
	assert.False(t, d.IsOpen())
	assert.Empty(t, d.View())
}

func TestDialog_WithoutActions(t *testing.T) {
	t.Parallel()

	d := NewDialog("Info", NewText("Nothing to do"))
	_, ok := d.Focused()
	assert.False(t, ok)
	d.FocusNext()
	_, ok = d.Focused()
	assert.False(t, ok)
}

func TestTabs(t *testing.T) {
	t.Parallel()

	tabs := NewTabs("Overview", "Props", "Docs")
	assert.Equal(t, "Overview", tabs.ActiveLabel())

	tabs.Prev()
	assert.Equal(t, "Docs", tabs.ActiveLabel())

	tabs.Next()
	assert.Equal(t, 0, tabs.Active())

	tabs.Select(10)
	assert.Equal(t, 2, tabs.Active())
	tabs.Select(-3)
	assert.Equal(t, 0, tabs.Active())

	out := tabs.View()
	for _, label := range []string{"Overview", "Props", "Docs"} {
		assert.Contains(t, out, label)
	}

	empty := NewTabs()
	empty.Next()
	empty.Prev()
	assert.Empty(t, empty.ActiveLabel())
}

func TestSelect(t *testing.T) {
	t.Parallel()

	s := NewSelect("Pick a mode",
		Option{Label: "Light", Value: "light"},
		Option{Label: "Dark", Value: "dark"},
	)
	_, ok := s.Value()
	assert.False(t, ok)
	assert.Contains(t, s.View(), "Pick a mode")

	s.Toggle()
	require.True(t, s.IsOpen())
	s.MoveUp()
	assert.Equal(t, 0, s.Highlighted())
	s.MoveDown()
	s.MoveDown()
	assert.Equal(t, 1, s.Highlighted())
	assert.Contains(t, s.View(), "› Dark")

	opt, ok := s.Choose()
	require.True(t, ok)
	assert.Equal(t, "dark", opt.Value)
	assert.False(t, s.IsOpen())

	value, ok := s.Value()
	require.True(t, ok)
	assert.Equal(t, "dark", value)
	assert.Contains(t, s.View(), "Dark")

	s.Open()
	assert.Equal(t, 1, s.Highlighted())
	s.Toggle()
	assert.False(t, s.IsOpen())

	_, ok = NewSelect("empty").Choose()
	assert.False(t, ok)
}

func TestTooltip(t *testing.T) {
	t.Parallel()

	tip := NewTooltip(NewText("anchor"), "hint")
	assert.Equal(t, "anchor", tip.View())

	tip.Show()
	lines := strings.Split(tip.View(), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "hint")
	assert.Contains(t, lines[1], "anchor")

	tip.WithPlacement(PlacementBottom)
	lines = strings.Split(tip.View(), "\n")
	assert.Contains(t, lines[0], "anchor")
	assert.Contains(t, lines[1], "hint")

	tip.Toggle()
	assert.False(t, tip.IsVisible())
}
