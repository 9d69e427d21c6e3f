package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/loom/internal/story"
)

func TestStoriesCommandTable(t *testing.T) {
	t.Parallel()

	output, err := execute(t, "stories")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, story.Catalog().Len()+1)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, output, "overlays/dialog")
	assert.Contains(t, output, "navigation/history")
}

func TestStoriesCommandJSONFilteredByGroup(t *testing.T) {
	t.Parallel()

	output, err := execute(t, "stories", "--json", "--group", "overlays")
	require.NoError(t, err)

	var rows []storyRow
	require.NoError(t, json.Unmarshal([]byte(output), &rows))
	require.NotEmpty(t, rows)
	for _, row := range rows {
		assert.Equal(t, "Overlays", row.Group)
	}
}

func TestStoriesCommandGroupIgnoresCase(t *testing.T) {
	t.Parallel()

	var counts []int
	for _, group := range []string{"Overlays", "overlays", "OVERLAYS"} {
		output, err := execute(t, "stories", "--json", "--group", group)
		require.NoError(t, err)

		var rows []storyRow
		require.NoError(t, json.Unmarshal([]byte(output), &rows))
		require.NotEmpty(t, rows, group)
		counts = append(counts, len(rows))
	}
	assert.Equal(t, counts[0], counts[1])
	assert.Equal(t, counts[0], counts[2])
}

func TestStoriesCommandUnknownGroup(t *testing.T) {
	t.Parallel()

	output, err := execute(t, "stories", "--group", "nope")
	require.NoError(t, err)
	assert.Contains(t, output, "No stories found.")

	output, err = execute(t, "stories", "--group", "nope", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", output)
}
