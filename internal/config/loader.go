package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// configFileNames is the ordered list of config file names to search for.
var configFileNames = []string{
	"memberfmt.yml",
	"memberfmt.yaml",
	".memberfmt.yml",
	".memberfmt.yaml",
}

// Discover returns the path of the first config file found in dir,
// following the standard search order. It returns an empty string if
// no config file is found.
func Discover(dir string) string {
	for _, name := range configFileNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Load reads and parses a memberfmt config file. If configPath is non-empty,
// that file is loaded directly. Otherwise, Load searches the current working
// directory using Discover. If no config file is found, DefaultConfig is
// returned.
//
// Partial YAML files are supported: any fields not specified in the YAML
// retain their default values.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		configPath = Discover(wd)
	}

	if configPath == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		}
		return nil, fmt.Errorf("reading config file %s: %w", configPath, err)
	}

	// Start from defaults so missing YAML fields retain non-zero defaults.
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return cfg, nil
}

// Validate checks values that cannot be checked by the YAML decoder.
func (c *Config) Validate() error {
	switch c.Fix.Mode {
	case "type", "member":
	default:
		return fmt.Errorf("fix.mode: unknown mode %q (want type or member)", c.Fix.Mode)
	}
	if c.Fix.MaxPasses < 1 {
		return fmt.Errorf("fix.max_passes: must be at least 1, got %d", c.Fix.MaxPasses)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs: must not be negative, got %d", c.Jobs)
	}
	if _, err := c.LintConfig(); err != nil {
		return err
	}
	for _, pat := range c.Exclude {
		if !doublestar.ValidatePattern(strings.TrimPrefix(pat, "/")) {
			return fmt.Errorf("exclude: bad pattern %q", pat)
		}
	}
	return nil
}
