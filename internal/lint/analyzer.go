package lint

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/donaldgifford/memberfmt/internal/logutil"
	"github.com/donaldgifford/memberfmt/internal/parser"
)

// Config controls which rules run and their severity.
type Config struct {
	// DisabledRules contains rule IDs to skip.
	DisabledRules map[string]bool

	// SeverityOverrides replaces the default severity of rules.
	SeverityOverrides map[string]Severity
}

// NewConfig creates a configuration with every rule at its defaults.
func NewConfig() *Config {
	return &Config{
		DisabledRules:     make(map[string]bool),
		SeverityOverrides: make(map[string]Severity),
	}
}

// Disable turns off a rule.
func (c *Config) Disable(ruleID string) *Config {
	c.DisabledRules[ruleID] = true
	return c
}

// SetSeverity overrides the severity of a rule.
func (c *Config) SetSeverity(ruleID string, sev Severity) *Config {
	c.SeverityOverrides[ruleID] = sev
	return c
}

// IsEnabled reports whether rule should run.
func (c *Config) IsEnabled(d Descriptor) bool {
	if disabled, ok := c.DisabledRules[d.ID]; ok {
		return !disabled
	}
	return d.EnabledByDefault
}

// Severity returns the effective severity for a rule.
func (c *Config) Severity(ruleID string, def Severity) Severity {
	if sev, ok := c.SeverityOverrides[ruleID]; ok {
		return sev
	}
	return def
}

// Analyzer runs rules over every type declaration of a file.
type Analyzer struct {
	rules  []Rule
	config *Config
	logger *slog.Logger
}

// NewAnalyzer creates an analyzer. A nil config enables every rule that is
// enabled by default; a nil logger discards output.
func NewAnalyzer(rules []Rule, config *Config, logger *slog.Logger) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	if logger == nil {
		logger = logutil.NewDiscardLogger()
	}
	return &Analyzer{rules: rules, config: config, logger: logger}
}

// Rules returns the rules the analyzer runs, after config filtering.
func (a *Analyzer) Rules() []Rule {
	var out []Rule
	for _, r := range a.rules {
		if a.config.IsEnabled(r.Descriptor()) {
			out = append(out, r)
		}
	}
	return out
}

// Analyze checks every type declaration in file. A rule failing on one
// declaration does not stop the others; all failures are joined into the
// returned error.
func (a *Analyzer) Analyze(file *parser.File) ([]Diagnostic, error) {
	if file == nil {
		return nil, nil
	}

	rules := a.Rules()
	var (
		collector Collector
		errs      []error
	)
	for _, decl := range file.Types {
		if decl.HasErrors {
			a.logger.Debug("skipping type with syntax errors", "path", file.Path, "type", decl.Name, "line", decl.Pos.Line)
			continue
		}
		for _, rule := range rules {
			if err := rule.Check(file, decl, &collector); err != nil {
				errs = append(errs, fmt.Errorf("%s:%d:%d: %s: type %s: %w",
					file.Path, decl.Pos.Line, decl.Pos.Column, rule.Descriptor().ID, decl.Name, err))
			}
		}
	}

	diags := collector.Diagnostics
	for i := range diags {
		diags[i].Severity = a.config.Severity(diags[i].RuleID, diags[i].Severity)
	}

	a.logger.Debug("analyzed file", "path", file.Path, "types", len(file.Types), "diagnostics", len(diags))
	return diags, errors.Join(errs...)
}
