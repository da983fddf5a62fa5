// Package order implements the member order rule: members of a type must
// appear as fields, properties, delegates, events, indexers, constructors,
// destructors, methods and nested types, each group sorted by
// accessibility, then const/static/readonly, then name.
package order

import (
	"fmt"
	"strconv"

	"github.com/donaldgifford/memberfmt/internal/formatter"
	"github.com/donaldgifford/memberfmt/internal/lint"
	"github.com/donaldgifford/memberfmt/internal/member"
	"github.com/donaldgifford/memberfmt/internal/parser"
	"github.com/donaldgifford/memberfmt/internal/reorder"
)

// DiagnosticID identifies the member order rule.
const DiagnosticID = "MO0001"

// PropertyIndex is the diagnostic property holding the first position
// whose member differs from the canonical order.
const PropertyIndex = "index"

// Fix titles and equivalence keys.
const (
	reorderTitle       = "Reorder members"
	reorderKey         = "ReorderMembers"
	individualTitleFmt = "Move '%s' to its ordered position"
	individualKeyFmt   = "Individual_%s"
)

// DefaultDescriptor is the descriptor the rule registers with.
var DefaultDescriptor = lint.Descriptor{
	ID:               DiagnosticID,
	Title:            "Member order",
	MessageFormat:    "members of type '%s' are not in the expected order",
	Category:         "Ordering",
	Description:      "Type members should be ordered by kind, accessibility, const/static/readonly and name.",
	Severity:         lint.SeverityWarning,
	EnabledByDefault: true,
}

// MemberOrder reports types whose members are out of order and offers a
// whole-type and a single-member fix.
type MemberOrder struct {
	desc lint.Descriptor
}

// New creates the rule with the given descriptor.
func New(desc lint.Descriptor) *MemberOrder {
	return &MemberOrder{desc: desc}
}

// Descriptor returns the rule descriptor.
func (r *MemberOrder) Descriptor() lint.Descriptor {
	return r.desc
}

// analyzed lists the declaration kinds the rule checks. Enum members have a
// fixed meaning and are never reordered.
func analyzed(k member.Kind) bool {
	switch k {
	case member.KindClass, member.KindInterface, member.KindStruct, member.KindRecord, member.KindRecordStruct:
		return true
	}
	return false
}

// Check reports one diagnostic at the type declaration when its members
// are not in canonical order. Only the first misplaced position is looked
// at.
func (r *MemberOrder) Check(file *parser.File, decl *parser.TypeDecl, report lint.Reporter) error {
	if !analyzed(decl.Kind) || len(decl.Members) == 0 {
		return nil
	}

	res, err := reorder.Detect(decl.Members)
	if err != nil {
		return err
	}
	if res.InOrder {
		return nil
	}

	fixes, err := r.fixes(decl, res)
	if err != nil {
		return err
	}

	report.Report(lint.Diagnostic{
		RuleID:   r.desc.ID,
		Severity: r.desc.Severity,
		Message:  r.desc.Format(decl.Name),
		Path:     file.Path,
		Pos:      decl.Pos,
		Args:     []string{decl.Name},
		Properties: map[string]string{
			PropertyIndex: strconv.Itoa(res.Index),
		},
		Fixes: fixes,
	})
	return nil
}

// fixes builds the single-member fix for the member expected at the first
// mismatch, followed by the whole-type fix.
func (r *MemberOrder) fixes(decl *parser.TypeDecl, res reorder.Mismatch) ([]lint.Fix, error) {
	region, ok := decl.MemberRegion()
	if !ok {
		return nil, nil
	}

	var fixes []lint.Fix

	if target := res.Expected(); target != nil {
		moved, err := reorder.One(decl.Members, target)
		if err != nil {
			return nil, err
		}
		name := displayName(target)
		fixes = append(fixes, lint.Fix{
			Title:          fmt.Sprintf(individualTitleFmt, name),
			EquivalenceKey: fmt.Sprintf(individualKeyFmt, name),
			Kind:           lint.FixMember,
			Edit:           lint.TextEdit{Span: region, NewText: formatter.RenderMembers(moved)},
		})
	}

	sorted, err := reorder.All(decl.Members)
	if err != nil {
		return nil, err
	}
	sorted = reorder.KeepWhiteSpace(decl.Members, sorted)
	fixes = append(fixes, lint.Fix{
		Title:          reorderTitle,
		EquivalenceKey: reorderKey,
		Kind:           lint.FixType,
		Edit:           lint.TextEdit{Span: region, NewText: formatter.RenderMembers(sorted)},
	})

	return fixes, nil
}

func displayName(m *member.Member) string {
	if m.Kind == member.KindIndexer {
		return "this[]"
	}
	name, err := member.Name(m)
	if err != nil {
		return m.Kind.String()
	}
	return name
}
