package components

import (
	"fmt"

	"github.com/alexisbeaulieu97/loom/internal/pagination"
	"github.com/alexisbeaulieu97/loom/internal/portal"
	"github.com/alexisbeaulieu97/loom/internal/ui"
)

type drawerPage struct {
	title string
	body  ui.Renderable
}

// Drawer is a multi-step side sheet. Its pages are keyed by a caller-defined
// string type and navigated with browser-style history. Anything published
// to Panel renders in the drawer's bottom panel.
type Drawer[K ~string] struct {
	BaseComponent
	title   string
	initial K
	order   []K
	pages   map[K]drawerPage
	nav     *pagination.Navigator[K]
	panel   *portal.Host
	open    bool
	width   int
}

// NewDrawer creates a closed drawer that starts on initial.
func NewDrawer[K ~string](title string, initial K) *Drawer[K] {
	d := &Drawer[K]{
		BaseComponent: NewBaseComponent(),
		title:         title,
		initial:       initial,
		pages:         make(map[K]drawerPage),
		nav:           pagination.New(initial),
		panel:         portal.NewHost(),
	}
	d.SetAppliers(SurfaceStyle()...)
	return d
}

// AddPage declares a page. Declaration order drives Next and the step
// indicator.
func (d *Drawer[K]) AddPage(key K, title string, body ui.Renderable) *Drawer[K] {
	if _, exists := d.pages[key]; !exists {
		d.order = append(d.order, key)
	}
	d.pages[key] = drawerPage{title: title, body: body}
	return d
}

// WithWidth fixes the drawer width.
func (d *Drawer[K]) WithWidth(width int) *Drawer[K] {
	d.width = width
	return d
}

// Open shows the drawer.
func (d *Drawer[K]) Open() { d.open = true }

// Close hides the drawer and forgets its history and bottom panel.
func (d *Drawer[K]) Close() {
	d.open = false
	d.nav.Reset(d.initial)
	d.panel.Clear()
}

// IsOpen reports visibility.
func (d *Drawer[K]) IsOpen() bool { return d.open }

// Current returns the active page.
func (d *Drawer[K]) Current() K { return d.nav.Current() }

// History returns the visited pages.
func (d *Drawer[K]) History() []K { return d.nav.History() }

// OpenPage navigates to page. Undeclared pages are accepted and render an
// empty body.
func (d *Drawer[K]) OpenPage(page K) { d.nav.Open(page) }

// Next opens the page declared after the current one. It reports false on
// the last page or when the current page was never declared.
func (d *Drawer[K]) Next() bool {
	i, ok := pagination.StepOf(d.order, d.nav.Current())
	if !ok || i+1 >= len(d.order) {
		return false
	}
	d.nav.Open(d.order[i+1])
	return true
}

// Back returns to the previous page.
func (d *Drawer[K]) Back() { d.nav.Back() }

// Forward returns to the page that Back left.
func (d *Drawer[K]) Forward() { d.nav.Forward() }

// CanGoBack reports whether Back would move.
func (d *Drawer[K]) CanGoBack() bool { return d.nav.CanGoBack() }

// CanGoForward reports whether Forward would move.
func (d *Drawer[K]) CanGoForward() bool { return d.nav.CanGoForward() }

// Panel returns the bottom panel host.
func (d *Drawer[K]) Panel() *portal.Host { return d.panel }

// View renders with the default theme.
func (d *Drawer[K]) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the open drawer.
func (d *Drawer[K]) ViewWithContext(ctx RenderContext) string {
	if !d.open {
		return ""
	}

	current := d.nav.Current()
	page := d.pages[current]

	header := HStack(TitleText(d.title), MutedText(d.stepLabel(current))).WithGap(2)
	box := NewContainer(header).WithWidth(d.width).WithGap(1)
	if i, ok := pagination.StepOf(d.order, current); ok {
		box.Add(NewProgress(i+1, len(d.order)).WithWidth(d.progressWidth()))
	}
	if page.title != "" {
		box.Add(SubtitleText(page.title))
	}
	if page.body != nil {
		box.Add(page.body)
	}

	if nodes := d.panel.Nodes(); len(nodes) > 0 {
		box.Add(VStack(append([]ui.Renderable{NewDivider()}, nodes...)...))
	}

	return d.ComputeStyle(ctx.Theme).Render(box.ViewWithContext(ctx))
}

func (d *Drawer[K]) progressWidth() int {
	if d.width > 0 {
		return max(d.width/2, 4)
	}
	return defaultProgressWidth
}

func (d *Drawer[K]) stepLabel(current K) string {
	i, ok := pagination.StepOf(d.order, current)
	if !ok {
		return ""
	}
	return fmt.Sprintf("Step %d of %d", i+1, len(d.order))
}
