// Package lint defines the vocabulary shared by rules and the tools that
// run them: descriptors, diagnostics, fixes and text edits.
package lint

import (
	"fmt"
	"strings"

	"github.com/donaldgifford/memberfmt/internal/member"
	"github.com/donaldgifford/memberfmt/internal/parser"
)

// =============================================================================
// Severity
// =============================================================================

// Severity of a diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeverityHint
)

// String returns the lower-case severity name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityHint:
		return "hint"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a severity name. Matching is case-insensitive.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return SeverityError, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "info":
		return SeverityInfo, nil
	case "hint":
		return SeverityHint, nil
	default:
		return 0, fmt.Errorf("unknown severity %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// =============================================================================
// Descriptors and diagnostics
// =============================================================================

// Descriptor is the static description of a rule: identifier, texts and
// default severity. MessageFormat takes the diagnostic arguments as fmt
// verbs.
type Descriptor struct {
	ID               string
	Title            string
	MessageFormat    string
	Category         string
	Description      string
	Severity         Severity
	EnabledByDefault bool
}

// Format renders the message for the given arguments.
func (d Descriptor) Format(args ...any) string {
	return fmt.Sprintf(d.MessageFormat, args...)
}

// Diagnostic is one finding.
type Diagnostic struct {
	RuleID   string          `json:"rule"`
	Severity Severity        `json:"severity"`
	Message  string          `json:"message"`
	Path     string          `json:"path"`
	Pos      parser.Position `json:"position"`
	Args     []string        `json:"args,omitempty"`

	// Properties carries rule-specific data for fixers.
	Properties map[string]string `json:"properties,omitempty"`
	Fixes      []Fix             `json:"-"`
}

// String formats the diagnostic as path:line:col: severity: message [ID].
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s [%s]", d.Path, d.Pos.Line, d.Pos.Column, d.Severity, d.Message, d.RuleID)
}

// FixKind says how much of a type a fix rewrites.
type FixKind int

const (
	// FixType reorders every member of the type.
	FixType FixKind = iota
	// FixMember moves a single member.
	FixMember
)

// Fix is a code action offered with a diagnostic.
type Fix struct {
	Title string
	// EquivalenceKey groups fixes that do the same thing across
	// diagnostics, so a caller can apply "the same fix everywhere".
	EquivalenceKey string
	Kind           FixKind
	Edit           TextEdit
}

// TextEdit replaces the bytes of Span with NewText.
type TextEdit struct {
	Span    member.Span
	NewText string
}

// =============================================================================
// Rules
// =============================================================================

// Reporter receives diagnostics from rules.
type Reporter interface {
	Report(Diagnostic)
}

// Collector is a Reporter that keeps diagnostics in report order.
type Collector struct {
	Diagnostics []Diagnostic
}

// Report implements Reporter.
func (c *Collector) Report(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}

// Rule checks one type declaration at a time. Rules must be stateless so a
// runner may call Check from many goroutines.
type Rule interface {
	Descriptor() Descriptor

	// Check inspects decl and reports at most the diagnostics it finds.
	// An error means the declaration could not be analysed at all.
	Check(file *parser.File, decl *parser.TypeDecl, report Reporter) error
}
