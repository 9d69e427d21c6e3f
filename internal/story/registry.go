// Package story holds the documented examples shown by the gallery.
package story

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/loom/internal/ui/components"
	loomerrors "github.com/alexisbeaulieu97/loom/pkg/errors"
)

// ID identifies a story, conventionally <group>/<name>.
type ID string

// Story is one documented component example.
type Story struct {
	ID    ID
	Group string
	Title string
	// Doc is markdown shown next to the preview.
	Doc    string
	Render func(ctx components.RenderContext) string
}

// Registry stores stories by id.
type Registry struct {
	mu      sync.RWMutex
	stories map[ID]Story
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{stories: make(map[ID]Story)}
}

// Register adds s. Ids must be unique and non-empty and every story needs a
// Render function.
func (r *Registry) Register(s Story) error {
	if strings.TrimSpace(string(s.ID)) == "" {
		return loomerrors.NewValidationError("id", "story id is required", nil)
	}
	if s.Render == nil {
		return loomerrors.NewValidationError(string(s.ID), "story has no render function", nil)
	}
	if s.Title == "" {
		s.Title = string(s.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.stories[s.ID]; exists {
		return loomerrors.NewValidationError(string(s.ID), fmt.Sprintf("duplicate story id %q", s.ID), nil)
	}
	r.stories[s.ID] = s
	return nil
}

// MustRegister is Register that panics on error.
func (r *Registry) MustRegister(stories ...Story) {
	for _, s := range stories {
		if err := r.Register(s); err != nil {
			panic(err)
		}
	}
}

// Get looks up a story.
func (r *Registry) Get(id ID) (Story, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.stories[id]
	return s, ok
}

// Len returns the number of stories.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.stories)
}

// List returns every story ordered by group, then title.
func (r *Registry) List() []Story {
	r.mu.RLock()
	out := make([]Story, 0, len(r.stories))
	for _, s := range r.stories {
		out = append(out, s)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b Story) int {
		return cmp.Or(
			cmp.Compare(a.Group, b.Group),
			cmp.Compare(a.Title, b.Title),
			cmp.Compare(a.ID, b.ID),
		)
	})
	return out
}

// IDs returns the ids in List order.
func (r *Registry) IDs() []ID {
	list := r.List()
	ids := make([]ID, len(list))
	for i, s := range list {
		ids[i] = s.ID
	}
	return ids
}

// Groups returns the distinct group names in sorted order.
func (r *Registry) Groups() []string {
	r.mu.RLock()
	groups := make([]string, 0, len(r.stories))
	for _, s := range r.stories {
		groups = append(groups, s.Group)
	}
	r.mu.RUnlock()

	slices.Sort(groups)
	return slices.Compact(groups)
}
