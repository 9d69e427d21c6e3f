package components

import (
	"github.com/alexisbeaulieu97/loom/internal/ui"
)

// Dialog is a modal surface with a title, a body and a row of actions.
// A closed dialog renders nothing.
type Dialog struct {
	BaseComponent
	title   string
	body    ui.Renderable
	actions []*Button
	focus   int
	open    bool
	width   int
}

// NewDialog creates a closed dialog.
func NewDialog(title string, body ui.Renderable) *Dialog {
	d := &Dialog{
		BaseComponent: NewBaseComponent(),
		title:         title,
		body:          body,
		focus:         -1,
	}
	d.SetAppliers(SurfaceStyle()...)
	return d
}

// WithActions sets the action buttons. Focus starts on the first enabled one.
func (d *Dialog) WithActions(actions ...*Button) *Dialog {
	d.actions = actions
	d.focus = -1
	d.moveFocus(1)
	return d
}

// WithWidth fixes the dialog width.
func (d *Dialog) WithWidth(width int) *Dialog {
	d.width = width
	return d
}

// Open shows the dialog.
func (d *Dialog) Open() { d.open = true }

// Close hides the dialog.
func (d *Dialog) Close() { d.open = false }

// IsOpen reports visibility.
func (d *Dialog) IsOpen() bool { return d.open }

// FocusNext moves focus to the next enabled action, wrapping around.
func (d *Dialog) FocusNext() { d.moveFocus(1) }

// FocusPrev moves focus to the previous enabled action, wrapping around.
func (d *Dialog) FocusPrev() { d.moveFocus(-1) }

func (d *Dialog) moveFocus(step int) {
	n := len(d.actions)
	if n == 0 {
		d.focus = -1
		return
	}
	start := d.focus
	if start < 0 && step < 0 {
		start = 0
	}
	for i := 1; i <= n; i++ {
		candidate := ((start+step*i)%n + n) % n
		if !d.actions[candidate].IsDisabled() {
			d.focus = candidate
			return
		}
	}
}

// Focused returns the label of the focused action.
func (d *Dialog) Focused() (string, bool) {
	if d.focus < 0 || d.focus >= len(d.actions) {
		return "", false
	}
	return d.actions[d.focus].Label(), true
}

// View renders with the default theme.
func (d *Dialog) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the dialog when open.
func (d *Dialog) ViewWithContext(ctx RenderContext) string {
	if !d.open {
		return ""
	}

	buttons := make([]ui.Renderable, 0, len(d.actions))
	for i, action := range d.actions {
		buttons = append(buttons, action.WithFocused(i == d.focus))
	}

	box := NewContainer(TitleText(d.title), d.body).WithWidth(d.width).WithGap(1)
	if len(buttons) > 0 {
		box.Add(HStack(buttons...).WithGap(2))
	}

	return d.ComputeStyle(ctx.Theme).Render(box.ViewWithContext(ctx))
}
