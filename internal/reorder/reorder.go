// Package reorder computes canonical member orders, detects members that
// are out of place and builds reordered member lists for fixes.
//
// Every function is pure: inputs are never modified and results are new
// slices, so callers may use the package from many goroutines at once.
package reorder

import (
	"slices"

	"github.com/donaldgifford/memberfmt/internal/member"
)

// Mismatch describes the result of Detect.
type Mismatch struct {
	// InOrder is true when the members already follow the canonical order.
	InOrder bool
	// Index is the first position where the declared and canonical orders
	// differ, or -1 when InOrder is true.
	Index int
	// Canonical is the canonical order the members were compared against.
	Canonical []*member.Member
}

// Expected returns the member that belongs at the first mismatch, or nil
// when the members are in order.
func (m Mismatch) Expected() *member.Member {
	if m.InOrder || m.Index < 0 || m.Index >= len(m.Canonical) {
		return nil
	}
	return m.Canonical[m.Index]
}

type keyed struct {
	m   *member.Member
	key member.SortKey
}

// Canonical returns members stably sorted by their sort keys. Members with
// identical keys, such as overloads, keep their declared relative order.
func Canonical(members []*member.Member) ([]*member.Member, error) {
	items := make([]keyed, len(members))
	for i, m := range members {
		k, err := member.Key(m)
		if err != nil {
			return nil, err
		}
		items[i] = keyed{m: m, key: k}
	}

	slices.SortStableFunc(items, func(a, b keyed) int {
		return member.Compare(a.key, b.key)
	})

	out := make([]*member.Member, len(items))
	for i, it := range items {
		out[i] = it.m
	}
	return out, nil
}

// Detect compares the declared order against the canonical one by member
// identity and stops at the first difference.
func Detect(members []*member.Member) (Mismatch, error) {
	canonical, err := Canonical(members)
	if err != nil {
		return Mismatch{}, err
	}

	for i := range members {
		if members[i] != canonical[i] {
			return Mismatch{Index: i, Canonical: canonical}, nil
		}
	}
	return Mismatch{InOrder: true, Index: -1, Canonical: canonical}, nil
}

// All returns the full canonical order. It is the whole-type fix.
func All(members []*member.Member) ([]*member.Member, error) {
	return Canonical(members)
}

// One moves only target to its canonical position and leaves every other
// member where it was declared. When target is not among the members the
// full canonical order is returned instead.
func One(members []*member.Member, target *member.Member) ([]*member.Member, error) {
	canonical, err := Canonical(members)
	if err != nil {
		return nil, err
	}

	targetIndex := slices.Index(canonical, target)
	originalIndex := slices.Index(members, target)
	if targetIndex < 0 || originalIndex < 0 {
		return canonical, nil
	}

	out := slices.Clone(members)
	out = slices.Delete(out, originalIndex, originalIndex+1)

	// Removing target shifts everything after it one slot to the left.
	insertAt := targetIndex
	if originalIndex < targetIndex {
		insertAt--
	}
	insertAt = max(0, min(insertAt, len(out)))

	return slices.Insert(out, insertAt, target), nil
}
