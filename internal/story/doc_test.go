package story

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderDoc(t *testing.T) {
	t.Parallel()

	source := "# Title\n\nSome *bold* text\nwrapped.\n\n- one\n- two\n  - nested\n\n3. third\n4. fourth\n\n```go\nx := 1\ny := 2\n```\n\n> quoted `code`\n\n---\n\n## Next\n"

	assert.Equal(t, []Line{
		{Kind: LineHeading, Level: 1, Text: "Title"},
		{Kind: LineParagraph, Text: "Some bold text wrapped."},
		{Kind: LineListItem, Level: 1, Text: "one"},
		{Kind: LineListItem, Level: 1, Text: "two"},
		{Kind: LineListItem, Level: 2, Text: "nested"},
		{Kind: LineListItem, Level: 1, Ordinal: 3, Text: "third"},
		{Kind: LineListItem, Level: 1, Ordinal: 4, Text: "fourth"},
		{Kind: LineCode, Text: "x := 1"},
		{Kind: LineCode, Text: "y := 2"},
		{Kind: LineQuote, Text: "quoted code"},
		{Kind: LineRule},
		{Kind: LineHeading, Level: 2, Text: "Next"},
	}, RenderDoc(source))
}

func TestRenderDoc_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, RenderDoc(""))
}
