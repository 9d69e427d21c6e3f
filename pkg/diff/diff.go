// Package diff renders line-level differences between two texts.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Result is a rendered diff with its line counts.
type Result struct {
	Text    string
	Added   int
	Removed int
}

// Empty reports whether the inputs were identical.
func (r Result) Empty() bool {
	return r.Added == 0 && r.Removed == 0
}

// Unified compares before and after line by line. Unchanged lines are
// prefixed with a space, removals with "-" and additions with "+". Identical
// inputs produce an empty Result. Output beyond 10,000 lines is truncated
// with a marker.
func Unified(before, after []byte, beforeLabel, afterLabel string) Result {
	if bytes.Equal(before, after) {
		return Result{}
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var (
		buf    bytes.Buffer
		result Result
	)
	fmt.Fprintf(&buf, "--- %s\n", beforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", afterLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(before), countLines(after))

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				result.Removed++
			case diffmatchpatch.DiffInsert:
				result.Added++
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}

	text := buf.String()
	if rendered := strings.Split(text, "\n"); len(rendered) > maxDiffLines {
		text = strings.Join(rendered[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n"
	}
	result.Text = text
	return result
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func countLines(data []byte) int {
	return len(splitLines(string(data)))
}
