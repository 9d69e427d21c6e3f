// Package pagination tracks page history for multi-step views such as
// drawers, wizards and the gallery story browser.
//
// A Navigator behaves like a browser tab: opening a page discards any forward
// history beyond the current position, while Back and Forward only move the
// cursor. Page keys are any string-based type, so callers normally declare a
// closed set of pages with a named type and constants:
//
//	type step string
//
//	const (
//		stepWelcome step = "welcome"
//		stepConfirm step = "confirm"
//	)
//
//	nav := pagination.New(stepWelcome)
//	nav.Open(stepConfirm)
//
// The navigator does not validate keys against that set.
package pagination

import "slices"

// Navigator keeps the ordered history of visited pages and the page that is
// currently active. It is not safe for concurrent use; see Store.
type Navigator[K ~string] struct {
	current K
	history []K
}

// New returns a navigator positioned on initial.
func New[K ~string](initial K) *Navigator[K] {
	return &Navigator[K]{
		current: initial,
		history: []K{initial},
	}
}

// Current returns the active page.
func (n *Navigator[K]) Current() K {
	return n.current
}

// History returns a copy of the visited pages, oldest first.
func (n *Navigator[K]) History() []K {
	return slices.Clone(n.history)
}

// Index returns the position of the current page in the history.
//
// The lookup returns the first occurrence. When a page was opened again later
// in the history, Back, Forward and Open all work relative to its earliest
// position.
func (n *Navigator[K]) Index() int {
	return slices.Index(n.history, n.current)
}

// Open navigates to page. Forward history beyond the current position is
// discarded before page is appended. Opening the current page does nothing.
func (n *Navigator[K]) Open(page K) {
	if page == n.current {
		return
	}

	i := n.Index()
	next := make([]K, i+1, i+2)
	copy(next, n.history[:i+1])
	n.history = append(next, page)
	n.current = page
}

// CanGoBack reports whether an older page exists.
func (n *Navigator[K]) CanGoBack() bool {
	return n.Index() > 0
}

// Back moves to the previous page. The history is left untouched.
func (n *Navigator[K]) Back() {
	if !n.CanGoBack() {
		return
	}
	n.current = n.history[n.Index()-1]
}

// CanGoForward reports whether a newer page exists.
func (n *Navigator[K]) CanGoForward() bool {
	return n.Index() < len(n.history)-1
}

// Forward moves to the next page. The history is left untouched.
func (n *Navigator[K]) Forward() {
	if !n.CanGoForward() {
		return
	}
	n.current = n.history[n.Index()+1]
}

// Reset drops all history and starts over from page.
func (n *Navigator[K]) Reset(page K) {
	n.history = []K{page}
	n.current = page
}

// StepOf returns the position of current within the declared page order.
func StepOf[K ~string](pages []K, current K) (int, bool) {
	i := slices.Index(pages, current)
	return i, i >= 0
}
