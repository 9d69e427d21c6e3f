package gallery

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/loom/internal/story"
	"github.com/alexisbeaulieu97/loom/internal/theme"
	"github.com/alexisbeaulieu97/loom/internal/ui/components"
)

const sidebarWidth = 28

// View renders the current model state.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	st := newStyles(m.theme)

	var content strings.Builder
	content.WriteString(m.renderHeader(st))
	content.WriteString("\n")

	if m.showError {
		alert := components.NewAlert(m.errorMsg).WithVariant(components.AlertVariantWarning).WithWidth(m.width)
		content.WriteString(alert.ViewWithContext(m.renderContext(m.width)))
		content.WriteString("\n")
	}

	mainWidth := max(m.width-sidebarWidth-2, 20)
	content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		st.sidebar.Render(m.renderSidebar(st)),
		st.main.Width(mainWidth).Render(m.renderMain(st, mainWidth-2)),
	))
	content.WriteString("\n")

	if toasts := m.toaster.ViewWithContext(m.renderContext(mainWidth)); toasts != "" {
		content.WriteString(toasts)
		content.WriteString("\n")
	}

	content.WriteString(m.renderFooter(st))
	return content.String()
}

func (m Model) renderHeader(st styles) string {
	title := st.title.Render("loom")
	summary := fmt.Sprintf("theme %s · mode %s · %d stories", m.theme.Name, m.mode, len(m.stories))
	if m.reloading {
		summary += "  " + m.spinner.View() + " reloading"
	}
	return st.header.Render(title + st.muted.Render(summary))
}

func (m Model) renderSidebar(st styles) string {
	current := m.nav.Current()

	var lines []string
	group := ""
	for i, s := range m.stories {
		if s.Group != group {
			group = s.Group
			lines = append(lines, st.group.Render(group))
		}
		switch {
		case i == m.cursor:
			lines = append(lines, st.selectedItem.Render(s.Title))
		case s.ID == current:
			lines = append(lines, st.openItem.Render(s.Title))
		default:
			lines = append(lines, st.item.Render(s.Title))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderMain(st styles, width int) string {
	if m.drawer.IsOpen() {
		return m.drawer.ViewWithContext(m.renderContext(width))
	}

	s, ok := m.registry.Get(m.nav.Current())
	if !ok {
		return st.muted.Render("No story selected")
	}

	var body string
	switch m.Pane() {
	case PaneDocs:
		body = m.renderDoc(st, s)
	case PaneTokens:
		body = m.renderTokens(st)
	default:
		body = s.Render(m.renderContext(width))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderBreadcrumb(st),
		m.tabs.ViewWithContext(m.renderContext(width)),
		"",
		body,
	)
}

// renderBreadcrumb shows the story history with the open story bracketed.
func (m Model) renderBreadcrumb(st styles) string {
	state := m.nav.Snapshot()
	parts := make([]string, 0, len(state.History))
	for _, id := range state.History {
		title := string(id)
		if s, ok := m.registry.Get(id); ok {
			title = s.Title
		}
		if id == state.Current {
			title = "[" + title + "]"
		}
		parts = append(parts, title)
	}

	back, forward := "‹", "›"
	if !state.CanGoBack {
		back = " "
	}
	if !state.CanGoForward {
		forward = " "
	}
	return st.breadcrumb.Render(fmt.Sprintf("%s %s %s", back, strings.Join(parts, " / "), forward))
}

func (m Model) renderDoc(st styles, s story.Story) string {
	lines := story.RenderDoc(s.Doc)
	if len(lines) == 0 {
		return st.muted.Render("No documentation")
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		switch line.Kind {
		case story.LineHeading:
			variant := components.TypographyVariantSubtitle
			if line.Level == 1 {
				variant = components.TypographyVariantTitle
			}
			out = append(out, components.TypographyStyle(m.theme, variant).Render(line.Text))
		case story.LineListItem:
			marker := "•"
			if line.Ordinal > 0 {
				marker = fmt.Sprintf("%d.", line.Ordinal)
			}
			out = append(out, strings.Repeat("  ", max(line.Level-1, 0))+marker+" "+line.Text)
		case story.LineCode:
			out = append(out, st.code.Render("  "+line.Text))
		case story.LineQuote:
			out = append(out, st.muted.Render("│ "+line.Text))
		case story.LineRule:
			out = append(out, st.muted.Render(strings.Repeat("─", 20)))
		default:
			out = append(out, line.Text)
		}
	}
	return strings.Join(out, "\n")
}

func (m Model) renderTokens(st styles) string {
	mode := theme.ModeLight
	if m.mode == theme.ModeDark {
		mode = theme.ModeDark
	}
	tokens, err := m.doc.Resolve(mode)
	if err != nil {
		return st.errorBanner.Render(err.Error())
	}

	limit := max(m.height-12, 5)
	keys := tokens.Keys()
	lines := make([]string, 0, min(len(keys), limit)+1)
	for i, k := range keys {
		if i == limit {
			lines = append(lines, st.muted.Render(fmt.Sprintf("… %d more", len(keys)-limit)))
			break
		}
		lines = append(lines, fmt.Sprintf("%s %s", st.code.Render(k), tokens[k]))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter(st styles) string {
	if m.drawer.IsOpen() {
		return st.footer.Render(m.help.View(drawerKeys{m.keys}))
	}
	return st.footer.Render(m.help.View(m.keys))
}
