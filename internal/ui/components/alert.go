package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AlertVariant selects an alert colour scheme.
type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantSuccess
	AlertVariantWarning
	AlertVariantDanger
)

// Alert is an inline, persistent message. Unlike a toast it stays in the
// layout until its host stops rendering it.
type Alert struct {
	BaseComponent
	message     string
	title       string
	variant     AlertVariant
	dismissible bool
	width       int
}

// NewAlert creates an info alert.
func NewAlert(message string) *Alert {
	return &Alert{BaseComponent: NewBaseComponent(), message: message}
}

// ErrorAlert creates a danger alert titled "Error".
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantDanger).WithTitle("Error")
}

func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	return a
}

func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithDismissible adds a dismiss hint such as "x to dismiss".
func (a *Alert) WithDismissible(dismissible bool) *Alert {
	a.dismissible = dismissible
	return a
}

func (a *Alert) WithWidth(width int) *Alert {
	a.width = width
	return a
}

func (a *Alert) WithAppliers(appliers ...StyleFunc) *Alert {
	a.AddAppliers(appliers...)
	return a
}

func (a *Alert) Variant() AlertVariant { return a.variant }

func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

func (a *Alert) ViewWithContext(ctx RenderContext) string {
	var lines []string
	if a.title != "" {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Render(a.title))
	}
	if a.message != "" {
		lines = append(lines, a.message)
	}
	if a.dismissible {
		lines = append(lines, lipgloss.NewStyle().Faint(true).Render("[×]"))
	}

	style := a.ComputeStyle(ctx.Theme)
	if strategy := ctx.Theme.Variants.Get(a.variant); strategy != nil {
		style = strategy.Apply(style, ctx.Theme)
	}
	if a.width > 0 {
		style = style.Width(a.width - style.GetHorizontalBorderSize())
	}
	return style.Render(strings.Join(lines, "\n"))
}
