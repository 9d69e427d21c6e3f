package story

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// LineKind classifies a rendered documentation line.
type LineKind int

const (
	LineParagraph LineKind = iota
	LineHeading
	LineListItem
	LineCode
	LineQuote
	LineRule
)

// Line is one block of story documentation flattened for terminal display.
type Line struct {
	Kind LineKind
	// Level is the heading level, or the nesting depth of a list item.
	Level int
	// Ordinal is the item number in ordered lists and 0 otherwise.
	Ordinal int
	Text    string
}

var markdown = goldmark.New()

// RenderDoc parses markdown and flattens its blocks into lines. Inline
// formatting is dropped.
func RenderDoc(source string) []Line {
	src := []byte(source)
	root := markdown.Parser().Parse(text.NewReader(src))

	w := docWalker{src: src}
	w.blocks(root, 0, false)
	return w.lines
}

type docWalker struct {
	src   []byte
	lines []Line
}

func (w *docWalker) blocks(parent ast.Node, depth int, quoted bool) {
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Heading:
			w.emit(Line{Kind: LineHeading, Level: n.Level, Text: inlineText(n, w.src)})
		case *ast.Paragraph, *ast.TextBlock:
			kind := LineParagraph
			if quoted {
				kind = LineQuote
			}
			w.emit(Line{Kind: kind, Text: inlineText(n, w.src)})
		case *ast.List:
			w.list(n, depth+1, quoted)
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			w.code(n)
		case *ast.Blockquote:
			w.blocks(n, depth, true)
		case *ast.ThematicBreak:
			w.emit(Line{Kind: LineRule})
		}
	}
}

func (w *docWalker) list(list *ast.List, depth int, quoted bool) {
	ordinal := 0
	if list.IsOrdered() {
		ordinal = list.Start
	}

	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		first := item.FirstChild()
		switch first.(type) {
		case *ast.Paragraph, *ast.TextBlock:
			w.emit(Line{Kind: LineListItem, Level: depth, Ordinal: ordinal, Text: inlineText(first, w.src)})
		default:
			w.emit(Line{Kind: LineListItem, Level: depth, Ordinal: ordinal})
			first = nil
		}

		for child := item.FirstChild(); child != nil; child = child.NextSibling() {
			if child == first {
				continue
			}
			switch n := child.(type) {
			case *ast.List:
				w.list(n, depth+1, quoted)
			default:
				w.blocksOf(n, depth, quoted)
			}
		}

		if ordinal > 0 {
			ordinal++
		}
	}
}

// blocksOf walks a single block as if it were the only child of a parent.
func (w *docWalker) blocksOf(n ast.Node, depth int, quoted bool) {
	switch n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		w.emit(Line{Kind: LineParagraph, Text: inlineText(n, w.src)})
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		w.code(n)
	case *ast.Blockquote:
		w.blocks(n, depth, true)
	}
}

func (w *docWalker) code(n ast.Node) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		w.emit(Line{Kind: LineCode, Text: strings.TrimRight(string(segment.Value(w.src)), "\r\n")})
	}
}

func (w *docWalker) emit(line Line) {
	w.lines = append(w.lines, line)
}

func inlineText(n ast.Node, src []byte) string {
	var b strings.Builder
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			switch c := child.(type) {
			case *ast.Text:
				b.Write(c.Segment.Value(src))
				if c.SoftLineBreak() || c.HardLineBreak() {
					b.WriteByte(' ')
				}
			case *ast.String:
				b.Write(c.Value)
			case *ast.AutoLink:
				b.Write(c.Label(src))
			default:
				walk(c)
			}
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}
