// Package markdown summarizes markdown prompt files for display, using
// goldmark for parsing and uniseg for word segmentation.
package markdown

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Summary describes a prompt for run banners.
type Summary struct {
	Title string // text of the first heading, empty when there is none
	Words int    // word count of the whole document
}

// Summarize parses source as markdown and returns its display summary.
func Summarize(source string) Summary {
	return Summary{
		Title: firstHeading(source),
		Words: countWords(source),
	}
}

// firstHeading returns the text of the first heading in source.
func firstHeading(source string) string {
	src := []byte(source)
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		title = strings.TrimSpace(headingText(h, src))
		return ast.WalkStop, nil
	})
	return title
}

// headingText collects the raw text of a heading's inline children.
func headingText(h *ast.Heading, source []byte) string {
	var sb strings.Builder
	for c := h.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
		}
	}
	return sb.String()
}

// countWords counts Unicode words that contain at least one letter or digit,
// so punctuation and markdown syntax do not inflate the count.
func countWords(source string) int {
	var (
		count int
		word  string
		state = -1
	)
	for len(source) > 0 {
		word, source, state = uniseg.FirstWordInString(source, state)
		if strings.ContainsFunc(word, isWordRune) {
			count++
		}
	}
	return count
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
