package story

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/loom/internal/ui/components"
	loomerrors "github.com/alexisbeaulieu97/loom/pkg/errors"
)

func staticStory(id ID, group, title string) Story {
	return Story{
		ID:     id,
		Group:  group,
		Title:  title,
		Render: func(components.RenderContext) string { return string(id) },
	}
}

func TestRegistry_RegisterValidates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		story Story
		field string
	}{
		{name: "empty id", story: staticStory(" ", "g", "t"), field: "id"},
		{name: "no render", story: Story{ID: "a/b"}, field: "a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := NewRegistry().Register(tt.story)
			var verr *loomerrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NoError(t, r.Register(staticStory("a/b", "A", "B")))

	err := r.Register(staticStory("a/b", "A", "Other"))
	var verr *loomerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "duplicate")

	assert.Panics(t, func() { r.MustRegister(staticStory("a/b", "A", "B")) })
}

func TestRegistry_ListOrdersByGroupThenTitle(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.MustRegister(
		staticStory("z/first", "Zeta", "First"),
		staticStory("a/second", "Alpha", "Second"),
		staticStory("a/first", "Alpha", "First"),
		Story{ID: "a/untitled", Group: "Alpha", Render: func(components.RenderContext) string { return "" }},
	)

	assert.Equal(t, []ID{"a/first", "a/second", "a/untitled", "z/first"}, r.IDs())
	assert.Equal(t, []string{"Alpha", "Zeta"}, r.Groups())
	assert.Equal(t, 4, r.Len())

	s, ok := r.Get("a/untitled")
	require.True(t, ok)
	assert.Equal(t, "a/untitled", s.Title)

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestCatalog_RendersEveryStory(t *testing.T) {
	t.Parallel()

	catalog := Catalog()
	require.NotZero(t, catalog.Len())

	ctx := components.DefaultContext()
	for _, s := range catalog.List() {
		assert.NotEmpty(t, s.Group, s.ID)
		assert.NotEmpty(t, s.Render(ctx), s.ID)
		assert.NotEmpty(t, RenderDoc(s.Doc), s.ID)
	}

	for _, id := range []ID{"foundations/palette", "overlays/dialog", "overlays/drawer", "navigation/history"} {
		_, ok := catalog.Get(id)
		assert.True(t, ok, id)
	}
}

func TestCatalog_DrawerStoryShowsSecondStep(t *testing.T) {
	t.Parallel()

	s, ok := Catalog().Get("overlays/drawer")
	require.True(t, ok)

	out := s.Render(components.DefaultContext())
	assert.Contains(t, out, "Step 2 of 3")
	assert.Contains(t, out, "Profile")
}

func TestCatalog_HistoryStoryTruncatesForwardPages(t *testing.T) {
	t.Parallel()

	s, ok := Catalog().Get("navigation/history")
	require.True(t, ok)

	out := s.Render(components.DefaultContext())
	assert.Contains(t, out, "welcome [profile] confirm")
	assert.Contains(t, out, "[welcome] profile [welcome]")
	assert.Contains(t, out, "welcome [summary]")
}
