package formatter

import (
	"fmt"
	"strings"

	"github.com/donaldgifford/memberfmt/internal/lint"
)

// ParseMode converts a fix mode name ("type" or "member").
func ParseMode(s string) (lint.FixKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "type":
		return lint.FixType, nil
	case "member":
		return lint.FixMember, nil
	default:
		return 0, fmt.Errorf("unknown fix mode %q (want type or member)", s)
	}
}

// SelectFix returns the first fix of the given kind offered with d.
func SelectFix(d lint.Diagnostic, kind lint.FixKind) (lint.Fix, bool) {
	for _, f := range d.Fixes {
		if f.Kind == kind {
			return f, true
		}
	}
	return lint.Fix{}, false
}

// Edits collects the chosen fix's edit from every diagnostic that offers
// one.
func Edits(diags []lint.Diagnostic, kind lint.FixKind) []lint.TextEdit {
	var edits []lint.TextEdit
	for _, d := range diags {
		if f, ok := SelectFix(d, kind); ok {
			edits = append(edits, f.Edit)
		}
	}
	return edits
}
