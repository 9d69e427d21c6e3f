package gallery

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/loom/internal/ui/components"
)

// styles are derived from the active theme so the chrome follows mode
// switches and reloads.
type styles struct {
	title        lipgloss.Style
	header       lipgloss.Style
	group        lipgloss.Style
	item         lipgloss.Style
	selectedItem lipgloss.Style
	openItem     lipgloss.Style
	sidebar      lipgloss.Style
	main         lipgloss.Style
	breadcrumb   lipgloss.Style
	muted        lipgloss.Style
	code         lipgloss.Style
	errorBanner  lipgloss.Style
	footer       lipgloss.Style
}

func newStyles(theme components.Theme) styles {
	p := theme.Palette
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary.Base).
			PaddingRight(2),
		header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.Neutral.Muted),
		group: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary.Base).
			MarginTop(1),
		item: lipgloss.NewStyle().
			PaddingLeft(2),
		selectedItem: lipgloss.NewStyle().
			PaddingLeft(1).
			Bold(true).
			Foreground(p.Primary.Base).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(p.Primary.Base),
		openItem: lipgloss.NewStyle().
			PaddingLeft(2).
			Underline(true),
		sidebar: lipgloss.NewStyle().
			Width(26).
			PaddingRight(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(p.Neutral.Muted),
		main: lipgloss.NewStyle().
			PaddingLeft(2),
		breadcrumb: lipgloss.NewStyle().
			Foreground(p.Neutral.Base).
			MarginBottom(1),
		muted: lipgloss.NewStyle().
			Foreground(p.Neutral.Base),
		code: components.TypographyStyle(theme, components.TypographyVariantCode),
		errorBanner: lipgloss.NewStyle().
			Foreground(p.Danger.OnBase).
			Background(p.Danger.Base).
			Bold(true).
			Padding(0, 1),
		footer: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(p.Neutral.Muted),
	}
}
