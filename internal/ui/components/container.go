package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/loom/internal/ui"
)

// Container is a box around a vertical stack of children. Dialogs, drawers
// and tooltips are built on it.
type Container struct {
	BaseComponent
	layout  *Stack
	border  BorderVariant
	padding Spacing
	width   int
}

// NewContainer creates a borderless container.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		layout:        VStack(children...),
	}
}

// View renders with the default theme.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the children inside the box.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme)

	if c.border != BorderVariantNone {
		style = style.Border(BorderForVariant(ctx.Theme, c.border))
	}
	if !c.padding.IsZero() {
		style = style.Padding(c.padding.Top, c.padding.Right, c.padding.Bottom, c.padding.Left)
	}

	inner := ctx
	if c.width > 0 {
		style = style.Width(c.width)
		inner = ctx.WithConstraints(WithMaxWidth(c.width - c.padding.Horizontal()))
	}

	return style.Render(c.layout.ViewWithContext(inner))
}

// WithBorder draws a theme border.
func (c *Container) WithBorder(variant BorderVariant) *Container {
	c.border = variant
	return c
}

// WithPadding sets inner spacing.
func (c *Container) WithPadding(padding Spacing) *Container {
	c.padding = padding
	return c
}

// WithWidth fixes the content width. Zero sizes to content.
func (c *Container) WithWidth(width int) *Container {
	c.width = width
	return c
}

// WithGap sets the gap between children.
func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

// WithStyle sets the raw style.
func (c *Container) WithStyle(style lipgloss.Style) *Container {
	c.SetStyle(style)
	return c
}

// WithAppliers replaces the theme modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.SetAppliers(appliers...)
	return c
}

// Add appends children.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.layout.Add(children...)
	return c
}

// Children returns the child list.
func (c *Container) Children() []ui.Renderable {
	return c.layout.Children()
}
