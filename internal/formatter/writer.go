// Package formatter applies rule fixes to source text.
package formatter

import (
	"bytes"
	"slices"
	"strings"

	"github.com/donaldgifford/memberfmt/internal/lint"
	"github.com/donaldgifford/memberfmt/internal/member"
)

// RenderMembers writes members back to text, each with its leading
// trivia, declaration and trailing trivia.
func RenderMembers(members []*member.Member) string {
	var b strings.Builder
	for _, m := range members {
		b.WriteString(m.FullText())
	}
	return b.String()
}

// ApplyEdits applies every edit that does not overlap an edit starting
// earlier in the document, and returns the new text with the number of
// edits applied. Edits that would not change the text are skipped.
// Skipped overlapping edits are expected to be re-derived on the next
// pass over the updated text.
func ApplyEdits(src []byte, edits []lint.TextEdit) ([]byte, int) {
	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b lint.TextEdit) int {
		return a.Span.Start - b.Span.Start
	})

	var (
		buf     bytes.Buffer
		pos     int
		applied int
	)
	for _, e := range sorted {
		if e.Span.Start < pos || e.Span.End > len(src) || e.Span.Start > e.Span.End {
			continue
		}
		if string(src[e.Span.Start:e.Span.End]) == e.NewText {
			continue
		}
		buf.Write(src[pos:e.Span.Start])
		buf.WriteString(e.NewText)
		pos = e.Span.End
		applied++
	}
	buf.Write(src[pos:])

	return buf.Bytes(), applied
}
