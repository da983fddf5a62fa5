package member

import "strings"

// TriviaKind classifies a piece of trivia.
type TriviaKind int

const (
	// Whitespace is a run of spaces and tabs.
	Whitespace TriviaKind = iota
	// EndOfLine is a single line break (\n, \r\n or \r).
	EndOfLine
	// Comment is a // or /* */ comment.
	Comment
	// Directive is a preprocessor line (#region, #if, ...) without its
	// line break.
	Directive
	// Skipped is any other text found between members, such as a stray
	// semicolon. It is carried along verbatim.
	Skipped
)

// Piece is one unit of trivia.
type Piece struct {
	Kind TriviaKind
	Text string
}

// Trivia is an ordered run of pieces attached to a member.
type Trivia []Piece

// String returns the exact source text of the trivia.
func (t Trivia) String() string {
	var b strings.Builder
	for _, p := range t {
		b.WriteString(p.Text)
	}
	return b.String()
}

// Len returns the length in bytes of the trivia text.
func (t Trivia) Len() int {
	n := 0
	for _, p := range t {
		n += len(p.Text)
	}
	return n
}

// LeadingWhitespace returns the prefix made only of whitespace and line
// breaks.
func (t Trivia) LeadingWhitespace() Trivia {
	for i, p := range t {
		if !p.isSpace() {
			return cloneTrivia(t[:i])
		}
	}
	return cloneTrivia(t)
}

// WithoutLeadingWhitespace returns everything after LeadingWhitespace.
func (t Trivia) WithoutLeadingWhitespace() Trivia {
	for i, p := range t {
		if !p.isSpace() {
			return cloneTrivia(t[i:])
		}
	}
	return Trivia{}
}

func (p Piece) isSpace() bool {
	return p.Kind == Whitespace || p.Kind == EndOfLine
}

func cloneTrivia(t Trivia) Trivia {
	out := make(Trivia, len(t))
	copy(out, t)
	return out
}

// LexTrivia splits the text found between two declarations into pieces.
// Concatenating the pieces always reproduces s.
func LexTrivia(s string) Trivia {
	var out Trivia
	lineStart := true
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\f' || c == '\v':
			j := i + 1
			for j < len(s) && (s[j] == ' ' || s[j] == '\t' || s[j] == '\f' || s[j] == '\v') {
				j++
			}
			out = append(out, Piece{Whitespace, s[i:j]})
			i = j
			continue
		case c == '\r' && i+1 < len(s) && s[i+1] == '\n':
			out = append(out, Piece{EndOfLine, s[i : i+2]})
			i += 2
			lineStart = true
			continue
		case c == '\n' || c == '\r':
			out = append(out, Piece{EndOfLine, s[i : i+1]})
			i++
			lineStart = true
			continue
		case strings.HasPrefix(s[i:], "//"):
			j := lineEnd(s, i)
			out = append(out, Piece{Comment, s[i:j]})
			i = j
		case strings.HasPrefix(s[i:], "/*"):
			j := strings.Index(s[i+2:], "*/")
			if j < 0 {
				j = len(s)
			} else {
				j = i + 2 + j + 2
			}
			out = append(out, Piece{Comment, s[i:j]})
			i = j
		case c == '#' && lineStart:
			j := lineEnd(s, i)
			out = append(out, Piece{Directive, s[i:j]})
			i = j
		default:
			j := i + 1
			for j < len(s) && !isTriviaStart(s, j) {
				j++
			}
			out = append(out, Piece{Skipped, s[i:j]})
			i = j
		}
		lineStart = false
	}
	return out
}

func lineEnd(s string, i int) int {
	j := strings.IndexAny(s[i:], "\r\n")
	if j < 0 {
		return len(s)
	}
	return i + j
}

func isTriviaStart(s string, i int) bool {
	switch s[i] {
	case ' ', '\t', '\f', '\v', '\r', '\n':
		return true
	}
	return strings.HasPrefix(s[i:], "//") || strings.HasPrefix(s[i:], "/*")
}

// SplitTrivia divides the text between two declarations the way a C#
// compiler attaches it: the part up to and including the first line break
// trails the previous declaration, the rest leads the next one.
func SplitTrivia(gap string) (trailing, leading Trivia) {
	all := LexTrivia(gap)
	for i, p := range all {
		if p.Kind == EndOfLine {
			return cloneTrivia(all[:i+1]), cloneTrivia(all[i+1:])
		}
	}
	return all, Trivia{}
}
