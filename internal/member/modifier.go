package member

import "strings"

// Modifiers is the set of modifier keywords written on a member.
type Modifiers uint8

// Modifier bits. Other stands for any keyword that has no ordering
// meaning of its own (abstract, override, async, partial, ...); it still
// counts when deciding whether a member has modifiers at all.
const (
	Public Modifiers = 1 << iota
	Internal
	Protected
	Private
	Static
	Const
	Readonly
	Other
)

var modifierWords = map[string]Modifiers{
	"public":    Public,
	"internal":  Internal,
	"protected": Protected,
	"private":   Private,
	"static":    Static,
	"const":     Const,
	"readonly":  Readonly,
}

// ParseModifier returns the bit for a modifier keyword.
func ParseModifier(word string) Modifiers {
	word = strings.TrimSpace(word)
	if word == "" {
		return 0
	}
	if m, ok := modifierWords[word]; ok {
		return m
	}
	return Other
}

// ParseModifiers folds a list of keywords into a set.
func ParseModifiers(words ...string) Modifiers {
	var m Modifiers
	for _, w := range words {
		m |= ParseModifier(w)
	}
	return m
}

// Has reports whether every bit in want is set.
func (m Modifiers) Has(want Modifiers) bool {
	return m&want == want
}

// String lists the set in a fixed order, space separated.
func (m Modifiers) String() string {
	var parts []string
	for _, w := range []struct {
		bit  Modifiers
		word string
	}{
		{Public, "public"},
		{Internal, "internal"},
		{Protected, "protected"},
		{Private, "private"},
		{Static, "static"},
		{Const, "const"},
		{Readonly, "readonly"},
		{Other, "other"},
	} {
		if m.Has(w.bit) {
			parts = append(parts, w.word)
		}
	}
	return strings.Join(parts, " ")
}
