package member

import (
	"cmp"
	"strings"
)

// CategoryOrder ranks a member by its kind: fields, properties,
// delegates, events, indexers, constructors, destructors, methods and then
// nested types. Unranked kinds get RankUnknown.
func CategoryOrder(m *Member) (int, error) {
	if m == nil {
		return 0, ErrNilMember
	}
	if r, ok := categoryRanks[m.Kind]; ok {
		return r, nil
	}
	return RankUnknown, nil
}

// AccessibilityOrder ranks a member by its access modifiers, most visible
// first. A static constructor ranks ahead of everything else.
func AccessibilityOrder(m *Member) (int, error) {
	if m == nil {
		return 0, ErrNilMember
	}

	mods := m.Modifiers
	switch {
	case m.Kind == KindConstructor && mods.Has(Static):
		return -1, nil
	case mods == 0:
		// Interface members commonly carry no modifiers.
		return 0, nil
	case mods.Has(Public):
		return 1, nil
	case mods.Has(Internal) && !mods.Has(Protected):
		return 2, nil
	case mods.Has(Protected | Internal):
		return 3, nil
	case mods.Has(Private | Protected):
		return 4, nil
	case mods.Has(Protected) && !mods.Has(Private):
		return 5, nil
	case mods.Has(Private):
		return 6, nil
	default:
		return RankUnknown, nil
	}
}

// KeywordOrder ranks a member by const, static and readonly, from
// compile-time constants down to plain instance members.
func KeywordOrder(m *Member) (int, error) {
	if m == nil {
		return 0, ErrNilMember
	}

	mods := m.Modifiers
	switch {
	case mods.Has(Const):
		return 0, nil
	case mods.Has(Static | Readonly):
		return 1, nil
	case mods.Has(Static):
		return 2, nil
	case mods.Has(Readonly):
		return 3, nil
	default:
		return RankUnknown, nil
	}
}

// Name returns the identifier a member sorts by. Field-like members use
// their first declared variable and indexers have the empty name.
func Name(m *Member) (string, error) {
	if m == nil {
		return "", ErrNilMember
	}

	switch m.Kind {
	case KindField, KindEventField:
		if len(m.Variables) == 0 {
			return "", &UnsupportedShapeError{Kind: m.Kind, NodeType: m.NodeType, Text: m.Text}
		}
		return m.Variables[0], nil
	case KindIndexer:
		return "", nil
	case KindProperty, KindDelegate, KindEvent, KindConstructor, KindDestructor, KindMethod,
		KindEnum, KindInterface, KindStruct, KindRecordStruct, KindRecord, KindClass:
		return m.Identifier, nil
	default:
		return "", &UnsupportedShapeError{Kind: m.Kind, NodeType: m.NodeType, Text: m.Text}
	}
}

// SortKey is the tuple members are ordered by.
type SortKey struct {
	Category      int
	Accessibility int
	Keyword       int
	Name          string
}

// Key computes the full sort key of a member.
func Key(m *Member) (SortKey, error) {
	var (
		k   SortKey
		err error
	)
	if k.Category, err = CategoryOrder(m); err != nil {
		return SortKey{}, err
	}
	if k.Accessibility, err = AccessibilityOrder(m); err != nil {
		return SortKey{}, err
	}
	if k.Keyword, err = KeywordOrder(m); err != nil {
		return SortKey{}, err
	}
	if k.Name, err = Name(m); err != nil {
		return SortKey{}, err
	}
	return k, nil
}

// Compare orders two keys field by field. Names compare byte-wise, so
// upper case sorts before lower case and the empty name sorts first.
func Compare(a, b SortKey) int {
	if c := cmp.Compare(a.Category, b.Category); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Accessibility, b.Accessibility); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Keyword, b.Keyword); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}

// Less reports whether a sorts strictly before b.
func Less(a, b SortKey) bool {
	return Compare(a, b) < 0
}
