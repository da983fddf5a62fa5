package reorder

import (
	"slices"

	"github.com/donaldgifford/memberfmt/internal/member"
)

// KeepWhiteSpace carries the boundary formatting of the declared order
// over to a reordered list. Members in the middle of a body bring their
// own blank lines along in their leading trivia; only the first and last
// positions sit against the braces, so only they are adjusted.
//
// When the member now in first position is not the one declared first, it
// is replaced by a clone whose leading whitespace comes from the declared
// first member (its own comments are kept) and whose trailing trivia is
// the declared first member's. The last position is treated the same way.
//
// This is a heuristic: applying fixes repeatedly can still move blank
// lines around inside the body.
func KeepWhiteSpace(original, reordered []*member.Member) []*member.Member {
	out := slices.Clone(reordered)
	if len(original) == 0 || len(original) != len(out) {
		return out
	}

	if first := original[0]; out[0] != first {
		out[0] = transplant(out[0], first)
	}

	last := len(out) - 1
	if lastMember := original[last]; out[last] != lastMember {
		out[last] = transplant(out[last], lastMember)
	}

	return out
}

// transplant returns a clone of target with the leading whitespace and the
// trailing trivia of source.
func transplant(target, source *member.Member) *member.Member {
	leading := append(source.Leading.LeadingWhitespace(), target.Leading.WithoutLeadingWhitespace()...)
	return target.WithLeading(leading).WithTrailing(source.Trailing)
}
