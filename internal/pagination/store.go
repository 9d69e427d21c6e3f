package pagination

import (
	"slices"
	"sync"
)

// State is an immutable snapshot of a navigator.
type State[K ~string] struct {
	Current      K
	History      []K
	CanGoBack    bool
	CanGoForward bool
}

// Store wraps a Navigator with locking and change notification so that a host
// UI can re-render whenever the active page moves.
type Store[K ~string] struct {
	mu          sync.Mutex
	nav         *Navigator[K]
	subscribers map[int]func(State[K])
	nextID      int
}

// NewStore creates a store positioned on initial.
func NewStore[K ~string](initial K) *Store[K] {
	return &Store[K]{
		nav:         New(initial),
		subscribers: make(map[int]func(State[K])),
	}
}

// Subscribe registers fn to receive a snapshot after every state change.
// Operations that leave the state untouched do not notify. The returned
// function removes the subscription.
func (s *Store[K]) Subscribe(fn func(State[K])) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// Snapshot returns the current state.
func (s *Store[K]) Snapshot() State[K] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Current returns the active page.
func (s *Store[K]) Current() K {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.Current()
}

// CanGoBack reports whether Back would move.
func (s *Store[K]) CanGoBack() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.CanGoBack()
}

// CanGoForward reports whether Forward would move.
func (s *Store[K]) CanGoForward() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.CanGoForward()
}

// Open navigates to page.
func (s *Store[K]) Open(page K) {
	s.mutate(func(n *Navigator[K]) { n.Open(page) })
}

// Back moves to the previous page.
func (s *Store[K]) Back() {
	s.mutate(func(n *Navigator[K]) { n.Back() })
}

// Forward moves to the next page.
func (s *Store[K]) Forward() {
	s.mutate(func(n *Navigator[K]) { n.Forward() })
}

// Reset restarts the history at page.
func (s *Store[K]) Reset(page K) {
	s.mutate(func(n *Navigator[K]) { n.Reset(page) })
}

func (s *Store[K]) mutate(op func(*Navigator[K])) {
	s.mu.Lock()
	before := s.snapshotLocked()
	op(s.nav)
	after := s.snapshotLocked()
	if before.Current == after.Current && slices.Equal(before.History, after.History) {
		s.mu.Unlock()
		return
	}

	subs := make([]func(State[K]), 0, len(s.subscribers))
	ids := make([]int, 0, len(s.subscribers))
	for id := range s.subscribers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		subs = append(subs, s.subscribers[id])
	}
	s.mu.Unlock()

	// Subscribers run outside the lock so they may read the store.
	for _, fn := range subs {
		fn(after)
	}
}

func (s *Store[K]) snapshotLocked() State[K] {
	return State[K]{
		Current:      s.nav.Current(),
		History:      s.nav.History(),
		CanGoBack:    s.nav.CanGoBack(),
		CanGoForward: s.nav.CanGoForward(),
	}
}
