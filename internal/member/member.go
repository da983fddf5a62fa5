package member

import "fmt"

// Span is a half-open byte range in the source document.
type Span struct {
	Start int
	End   int
}

// Len returns the length of the span.
func (s Span) Len() int { return s.End - s.Start }

// Member is one declaration inside a type body. Which name fields are
// meaningful depends on Kind: field-like kinds use Variables, indexers use
// neither, every other kind uses Identifier.
type Member struct {
	Kind      Kind
	NodeType  string // Provider node type, kept for error messages.
	Modifiers Modifiers

	Identifier string
	Variables  []string

	Text     string // Declaration source without trivia.
	Span     Span   // Location of Text in the document.
	Leading  Trivia
	Trailing Trivia
}

// FullSpan returns the span of the member including its trivia.
func (m *Member) FullSpan() Span {
	return Span{
		Start: m.Span.Start - m.Leading.Len(),
		End:   m.Span.End + m.Trailing.Len(),
	}
}

// FullText returns the member with its leading and trailing trivia.
func (m *Member) FullText() string {
	return m.Leading.String() + m.Text + m.Trailing.String()
}

// Clone returns a copy of the member that does not share slices with m.
func (m *Member) Clone() *Member {
	if m == nil {
		return nil
	}
	c := *m
	if m.Variables != nil {
		c.Variables = append([]string(nil), m.Variables...)
	}
	c.Leading = cloneTrivia(m.Leading)
	c.Trailing = cloneTrivia(m.Trailing)
	return &c
}

// WithLeading returns a clone of m carrying the given leading trivia.
func (m *Member) WithLeading(t Trivia) *Member {
	c := m.Clone()
	c.Leading = cloneTrivia(t)
	return c
}

// WithTrailing returns a clone of m carrying the given trailing trivia.
func (m *Member) WithTrailing(t Trivia) *Member {
	c := m.Clone()
	c.Trailing = cloneTrivia(t)
	return c
}

// String describes the member for logs and test failures.
func (m *Member) String() string {
	if m == nil {
		return "<nil>"
	}
	name := m.Identifier
	if m.Kind.IsFieldLike() && len(m.Variables) > 0 {
		name = m.Variables[0]
	}
	if m.Kind == KindIndexer {
		name = "this[]"
	}
	if m.Modifiers == 0 {
		return fmt.Sprintf("%s %s", m.Kind, name)
	}
	return fmt.Sprintf("%s %s %s", m.Modifiers, m.Kind, name)
}
