// Package parser reads C# source and exposes every type declaration with
// its ordered member list, member kinds, modifiers, names and trivia.
package parser

import (
	"context"
	"errors"

	"github.com/donaldgifford/memberfmt/internal/member"
)

// ErrNoCGO is returned when source parsing is unavailable because the
// binary was built without CGO (tree-sitter).
var ErrNoCGO = errors.New("parsing C# requires CGO (tree-sitter)")

// Position is a 1-indexed line and column (in bytes) in the source.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// TypeDecl is a class, interface, struct, record or record struct
// declaration.
type TypeDecl struct {
	Kind member.Kind
	Name string
	Pos  Position    // Start of the declaration, attributes included.
	Span member.Span // Whole declaration.

	// Body is the text between the braces. It is empty when the
	// declaration has no body (record R(int X);).
	Body    member.Span
	Members []*member.Member

	// Depth is 0 for top-level types and grows by one per enclosing type.
	Depth int

	// HasErrors is set when the parser recovered from syntax errors inside
	// the declaration; member kinds may then be unreliable.
	HasErrors bool
}

// MemberRegion returns the span covering all members with their trivia,
// which is the region a reorder replaces. ok is false when there are no
// members.
func (d *TypeDecl) MemberRegion() (member.Span, bool) {
	if len(d.Members) == 0 {
		return member.Span{}, false
	}
	return member.Span{
		Start: d.Members[0].FullSpan().Start,
		End:   d.Members[len(d.Members)-1].FullSpan().End,
	}, true
}

// File is one parsed document.
type File struct {
	Path   string
	Source []byte
	Types  []*TypeDecl // Document order; outer types precede nested ones.
}

// Provider turns source text into type declarations. Implementations
// need not be safe for concurrent use; use one per goroutine.
type Provider interface {
	Parse(ctx context.Context, path string, src []byte) (*File, error)
}

// attachTrivia fills Leading and Trailing for members whose Span is set,
// splitting each gap between declarations at its first line break. The
// part of the first gap before the break belongs to the opening brace and
// the part of the last gap after the break to the closing brace; neither
// is attached to a member.
func attachTrivia(src []byte, body member.Span, members []*member.Member) {
	prev := body.Start
	for i, m := range members {
		trailing, leading := member.SplitTrivia(string(src[prev:m.Span.Start]))
		if i > 0 {
			members[i-1].Trailing = trailing
		}
		m.Leading = leading
		prev = m.Span.End
	}
	if n := len(members); n > 0 {
		trailing, _ := member.SplitTrivia(string(src[prev:body.End]))
		members[n-1].Trailing = trailing
	}
}
