package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const defaultProgressWidth = 20

// Progress is a themed step counter with a bar, e.g. "2/3 ██████░░░".
type Progress struct {
	BaseComponent
	current int
	total   int
	width   int
}

// NewProgress shows current of total. Current is clamped to [0, total].
func NewProgress(current, total int) *Progress {
	return &Progress{
		BaseComponent: NewBaseComponent(),
		current:       current,
		total:         total,
		width:         defaultProgressWidth,
	}
}

// WithWidth sets the bar width, excluding the counter.
func (p *Progress) WithWidth(width int) *Progress {
	if width > 0 {
		p.width = width
	}
	return p
}

// Ratio is current/total in [0, 1].
func (p *Progress) Ratio() float64 {
	if p.total <= 0 {
		return 0
	}
	return float64(min(max(p.current, 0), p.total)) / float64(p.total)
}

func (p *Progress) View() string {
	return p.ViewWithContext(DefaultContext())
}

func (p *Progress) ViewWithContext(ctx RenderContext) string {
	bar := progress.New(
		progress.WithSolidFill(adaptiveHex(ctx.Theme.Palette.Primary.Base)),
		progress.WithoutPercentage(),
		progress.WithWidth(p.width),
	)
	bar.EmptyColor = adaptiveHex(ctx.Theme.Palette.Neutral.Muted)

	label := TypographyStyle(ctx.Theme, TypographyVariantEmphasis).
		Render(fmt.Sprintf("%d/%d", min(max(p.current, 0), p.total), p.total))
	return p.ComputeStyle(ctx.Theme).Render(label + " " + bar.ViewAs(p.Ratio()))
}

// adaptiveHex picks the half of c that matches the terminal background.
// Themes pinned with ForMode have identical halves.
func adaptiveHex(c lipgloss.AdaptiveColor) string {
	if c.Light == c.Dark || lipgloss.HasDarkBackground() {
		return c.Dark
	}
	return c.Light
}
