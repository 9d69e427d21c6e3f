package components

import (
	"github.com/alexisbeaulieu97/loom/internal/ui"
)

// Tabs is a row of labels with one active tab.
type Tabs struct {
	BaseComponent
	labels []string
	active int
}

// NewTabs creates tabs with the first label active.
func NewTabs(labels ...string) *Tabs {
	return &Tabs{
		BaseComponent: NewBaseComponent(),
		labels:        labels,
	}
}

// Next activates the following tab, wrapping to the first.
func (t *Tabs) Next() {
	if len(t.labels) == 0 {
		return
	}
	t.active = (t.active + 1) % len(t.labels)
}

// Prev activates the preceding tab, wrapping to the last.
func (t *Tabs) Prev() {
	if len(t.labels) == 0 {
		return
	}
	t.active = (t.active - 1 + len(t.labels)) % len(t.labels)
}

// Select activates tab i, clamped to the valid range.
func (t *Tabs) Select(i int) {
	if len(t.labels) == 0 {
		return
	}
	t.active = max(0, min(i, len(t.labels)-1))
}

// Active returns the active index.
func (t *Tabs) Active() int { return t.active }

// ActiveLabel returns the active label, or "" when there are no tabs.
func (t *Tabs) ActiveLabel() string {
	if len(t.labels) == 0 {
		return ""
	}
	return t.labels[t.active]
}

// View renders with the default theme.
func (t *Tabs) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the tab strip.
func (t *Tabs) ViewWithContext(ctx RenderContext) string {
	items := make([]ui.Renderable, 0, len(t.labels))
	for i, label := range t.labels {
		tab := NewText(label)
		if i == t.active {
			tab.WithAppliers(Background(PalettePrimary), PaddingX(SpacingSizeSmall))
		} else {
			tab.WithAppliers(Typography(TypographyVariantMuted), PaddingX(SpacingSizeSmall))
		}
		items = append(items, tab)
	}
	return t.ComputeStyle(ctx.Theme).Render(HStack(items...).WithGap(1).ViewWithContext(ctx))
}
