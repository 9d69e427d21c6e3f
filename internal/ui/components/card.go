package components

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/loom/internal/ui"
)

const defaultCardWidth = 40

// Card groups a title, description and key/value metadata inside a border.
type Card struct {
	BaseComponent
	title       string
	icon        string
	description string
	metadata    map[string]string
	footer      ui.Renderable
	width       int
}

// NewCard creates a card titled title.
func NewCard(title string) *Card {
	c := &Card{
		BaseComponent: NewBaseComponent(),
		title:         title,
		metadata:      make(map[string]string),
		width:         defaultCardWidth,
	}
	c.SetAppliers(
		Border(BorderVariantRounded),
		BorderColour(PaletteNeutral),
		PaddingX(SpacingSizeSmall),
	)
	return c
}

func (c *Card) WithIcon(icon string) *Card {
	c.icon = icon
	return c
}

func (c *Card) WithDescription(description string) *Card {
	c.description = description
	return c
}

// WithMeta adds a metadata row. Rows render sorted by key.
func (c *Card) WithMeta(key, value string) *Card {
	c.metadata[key] = value
	return c
}

// WithFooter renders footer below the metadata, typically a row of buttons.
func (c *Card) WithFooter(footer ui.Renderable) *Card {
	c.footer = footer
	return c
}

// WithWidth sets the outer width including the border. Values below 10 are
// ignored.
func (c *Card) WithWidth(width int) *Card {
	if width >= 10 {
		c.width = width
	}
	return c
}

func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

func (c *Card) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme)
	inner := c.width - style.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	var sections []string
	if header := c.header(ctx.Theme); header != "" {
		sections = append(sections, header)
	}
	if c.description != "" {
		body := TypographyStyle(ctx.Theme, TypographyVariantBody).Width(inner)
		sections = append(sections, body.Render(c.description))
	}
	if len(c.metadata) > 0 {
		sections = append(sections, c.metaRows(ctx.Theme))
	}
	if c.footer != nil {
		sections = append(sections, RenderNode(c.footer, ctx.WithConstraints(WithMaxWidth(inner))))
	}

	return style.Width(c.width - style.GetHorizontalBorderSize()).Render(strings.Join(sections, "\n\n"))
}

func (c *Card) header(theme Theme) string {
	if c.title == "" {
		return ""
	}
	title := TypographyStyle(theme, TypographyVariantTitle).Render(c.title)
	if c.icon == "" {
		return title
	}
	icon := lipgloss.NewStyle().Foreground(theme.Palette.Info.Base).Render(c.icon)
	return icon + " " + title
}

func (c *Card) metaRows(theme Theme) string {
	keys := make([]string, 0, len(c.metadata))
	width := 0
	for key := range c.metadata {
		keys = append(keys, key)
		width = max(width, lipgloss.Width(key))
	}
	slices.Sort(keys)

	muted := TypographyStyle(theme, TypographyVariantMuted)
	rows := make([]string, len(keys))
	for i, key := range keys {
		label := muted.Render(fmt.Sprintf("%-*s", width, key))
		rows[i] = label + "  " + c.metadata[key]
	}
	return strings.Join(rows, "\n")
}
