package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/loom/internal/ui"
)

// Placement positions a tooltip relative to its anchor.
type Placement int

const (
	PlacementTop Placement = iota
	PlacementBottom
)

// Tooltip shows a short hint next to an anchor while visible.
type Tooltip struct {
	BaseComponent
	anchor    ui.Renderable
	tip       string
	placement Placement
	visible   bool
}

// NewTooltip creates a hidden tooltip above anchor.
func NewTooltip(anchor ui.Renderable, tip string) *Tooltip {
	t := &Tooltip{
		BaseComponent: NewBaseComponent(),
		anchor:        anchor,
		tip:           tip,
	}
	t.SetAppliers(Background(PaletteNeutral), PaddingX(SpacingSizeSmall))
	return t
}

// WithPlacement sets the side the tip appears on.
func (t *Tooltip) WithPlacement(p Placement) *Tooltip {
	t.placement = p
	return t
}

// Show reveals the tip.
func (t *Tooltip) Show() { t.visible = true }

// Hide conceals the tip.
func (t *Tooltip) Hide() { t.visible = false }

// Toggle flips visibility.
func (t *Tooltip) Toggle() { t.visible = !t.visible }

// IsVisible reports visibility.
func (t *Tooltip) IsVisible() bool { return t.visible }

// View renders with the default theme.
func (t *Tooltip) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the anchor and, when visible, the tip.
func (t *Tooltip) ViewWithContext(ctx RenderContext) string {
	anchor := RenderNode(t.anchor, ctx)
	if !t.visible || t.tip == "" {
		return anchor
	}

	tip := t.ComputeStyle(ctx.Theme).Render(t.tip)
	if t.placement == PlacementBottom {
		return lipgloss.JoinVertical(lipgloss.Left, anchor, tip)
	}
	return lipgloss.JoinVertical(lipgloss.Left, tip, anchor)
}
