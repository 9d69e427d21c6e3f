package components

import (
	"strings"
)

// Option is one choice in a Select.
type Option struct {
	Label string
	Value string
}

// Select is a single-choice dropdown. The highlighted option moves with
// MoveUp/MoveDown while open; Choose commits it.
type Select struct {
	BaseComponent
	placeholder string
	options     []Option
	highlighted int
	chosen      int
	open        bool
}

// NewSelect creates a closed select with nothing chosen.
func NewSelect(placeholder string, options ...Option) *Select {
	s := &Select{
		BaseComponent: NewBaseComponent(),
		placeholder:   placeholder,
		options:       options,
		chosen:        -1,
	}
	s.SetAppliers(Border(BorderVariantRounded), BorderColour(PaletteNeutral), PaddingX(SpacingSizeSmall))
	return s
}

// Open expands the option list, highlighting the chosen option if any.
func (s *Select) Open() {
	s.open = true
	if s.chosen >= 0 {
		s.highlighted = s.chosen
	}
}

// Close collapses the list without changing the choice.
func (s *Select) Close() { s.open = false }

// Toggle flips between open and closed.
func (s *Select) Toggle() {
	if s.open {
		s.Close()
		return
	}
	s.Open()
}

// IsOpen reports whether the list is expanded.
func (s *Select) IsOpen() bool { return s.open }

// MoveUp highlights the previous option, stopping at the first.
func (s *Select) MoveUp() {
	if s.highlighted > 0 {
		s.highlighted--
	}
}

// MoveDown highlights the next option, stopping at the last.
func (s *Select) MoveDown() {
	if s.highlighted < len(s.options)-1 {
		s.highlighted++
	}
}

// Highlighted returns the highlighted index.
func (s *Select) Highlighted() int { return s.highlighted }

// Choose commits the highlighted option and closes the list.
func (s *Select) Choose() (Option, bool) {
	if len(s.options) == 0 {
		return Option{}, false
	}
	s.chosen = s.highlighted
	s.open = false
	return s.options[s.chosen], true
}

// Selected returns the committed option.
func (s *Select) Selected() (Option, bool) {
	if s.chosen < 0 {
		return Option{}, false
	}
	return s.options[s.chosen], true
}

// Value returns the committed option's value.
func (s *Select) Value() (string, bool) {
	opt, ok := s.Selected()
	return opt.Value, ok
}

// View renders with the default theme.
func (s *Select) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the trigger and, when open, the option list.
func (s *Select) ViewWithContext(ctx RenderContext) string {
	label := s.placeholder
	if opt, ok := s.Selected(); ok {
		label = opt.Label
	}

	arrow := "▾"
	if s.open {
		arrow = "▴"
	}

	lines := []string{label + " " + arrow}
	if s.open {
		for i, opt := range s.options {
			marker := "  "
			if i == s.highlighted {
				marker = "› "
			}
			suffix := ""
			if i == s.chosen {
				suffix = " ✓"
			}
			line := marker + opt.Label + suffix
			if i == s.highlighted {
				line = TypographyStyle(ctx.Theme, TypographyVariantEmphasis).Render(line)
			}
			lines = append(lines, line)
		}
	}

	return s.ComputeStyle(ctx.Theme).Render(strings.Join(lines, "\n"))
}
