// Package config defines the configuration types and defaults for memberfmt.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/donaldgifford/memberfmt/internal/lint"
)

// Config is the top-level configuration.
type Config struct {
	Rules    map[string]RuleConfig `yaml:"rules"`
	Fix      FixConfig             `yaml:"fix"`
	Exclude  []string              `yaml:"exclude"`
	Jobs     int                   `yaml:"jobs"`
	LogLevel string                `yaml:"log_level"`
}

// RuleConfig adjusts a single rule, keyed by rule ID.
type RuleConfig struct {
	Severity string `yaml:"severity"`
	Disabled *bool  `yaml:"disabled"`
}

// FixConfig holds fix settings.
type FixConfig struct {
	Mode      string `yaml:"mode"`
	MaxPasses int    `yaml:"max_passes"`
}

// DefaultConfig returns a Config with all default values.
func DefaultConfig() *Config {
	return &Config{
		Rules: map[string]RuleConfig{},
		Fix: FixConfig{
			Mode:      "type",
			MaxPasses: 10,
		},
		Exclude:  []string{"bin/**", "obj/**"},
		LogLevel: "warn",
	}
}

// LintConfig converts the rules section to an analyzer configuration.
func (c *Config) LintConfig() (*lint.Config, error) {
	lc := lint.NewConfig()
	for id, rc := range c.Rules {
		if rc.Disabled != nil {
			lc.DisabledRules[id] = *rc.Disabled
		}
		if rc.Severity == "" {
			continue
		}
		sev, err := lint.ParseSeverity(rc.Severity)
		if err != nil {
			return nil, fmt.Errorf("rules.%s.severity: %w", id, err)
		}
		lc.SetSeverity(id, sev)
	}
	return lc, nil
}

// Excluded reports whether p matches one of the exclude patterns.
// Patterns use doublestar syntax against the slash-separated path. A
// pattern that does not start with "/" also matches at any depth, so
// "obj/**" excludes "src/App/obj/Debug/Gen.cs".
func (c *Config) Excluded(p string) bool {
	p = filepath.ToSlash(filepath.Clean(p))
	for _, pat := range c.Exclude {
		if strings.HasPrefix(pat, "/") {
			if ok, _ := doublestar.Match(strings.TrimPrefix(pat, "/"), p); ok {
				return true
			}
			continue
		}
		if ok, _ := doublestar.Match(pat, p); ok {
			return true
		}
		if ok, _ := doublestar.Match("**/"+pat, p); ok {
			return true
		}
	}
	return false
}
