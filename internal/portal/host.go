// Package portal lets any part of a view tree publish content into a slot
// that another component renders, such as the bottom panel of a drawer.
//
// A Host is a small ordered pub/sub store of render trees. Publishers own
// their entry by id; the rendering side subscribes or reads Nodes.
package portal

import (
	"slices"
	"sync"

	"github.com/alexisbeaulieu97/loom/internal/ui"
)

// Entry is one published render tree.
type Entry struct {
	ID   string
	Node ui.Renderable
}

// Host stores published entries in publication order. It is safe for
// concurrent use.
type Host struct {
	mu          sync.Mutex
	entries     []Entry
	subscribers map[int]func([]Entry)
	nextID      int
}

// NewHost creates an empty host.
func NewHost() *Host {
	return &Host{subscribers: make(map[int]func([]Entry))}
}

// Publish inserts node under id. Re-publishing an id replaces its node and
// keeps its position. A nil node removes the entry.
func (h *Host) Publish(id string, node ui.Renderable) {
	if node == nil {
		h.Remove(id)
		return
	}

	h.mu.Lock()
	if i := h.indexLocked(id); i >= 0 {
		h.entries[i].Node = node
	} else {
		h.entries = append(h.entries, Entry{ID: id, Node: node})
	}
	h.notifyAndUnlock()
}

// Remove drops the entry for id. Unknown ids are ignored.
func (h *Host) Remove(id string) {
	h.mu.Lock()
	i := h.indexLocked(id)
	if i < 0 {
		h.mu.Unlock()
		return
	}
	h.entries = slices.Delete(h.entries, i, i+1)
	h.notifyAndUnlock()
}

// Clear drops every entry.
func (h *Host) Clear() {
	h.mu.Lock()
	if len(h.entries) == 0 {
		h.mu.Unlock()
		return
	}
	h.entries = nil
	h.notifyAndUnlock()
}

// Len returns the number of entries.
func (h *Host) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Entries returns a copy of the published entries.
func (h *Host) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.entries)
}

// Nodes returns the published render trees in order.
func (h *Host) Nodes() []ui.Renderable {
	h.mu.Lock()
	defer h.mu.Unlock()

	nodes := make([]ui.Renderable, 0, len(h.entries))
	for _, entry := range h.entries {
		nodes = append(nodes, entry.Node)
	}
	return nodes
}

// Subscribe registers fn to receive the entries after every change. The
// returned function cancels the subscription.
func (h *Host) Subscribe(fn func([]Entry)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	h.subscribers[id] = fn

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers, id)
	}
}

func (h *Host) indexLocked(id string) int {
	return slices.IndexFunc(h.entries, func(e Entry) bool { return e.ID == id })
}

// notifyAndUnlock releases h.mu and then calls subscribers with a snapshot.
func (h *Host) notifyAndUnlock() {
	snapshot := slices.Clone(h.entries)

	ids := make([]int, 0, len(h.subscribers))
	for id := range h.subscribers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	subs := make([]func([]Entry), 0, len(ids))
	for _, id := range ids {
		subs = append(subs, h.subscribers[id])
	}
	h.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}
