// Package config loads the optional obsidian-kit.yaml tool
// configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file. A missing file is not
// an error: it yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if errs := Validate(cfg); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return cfg, nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks a Config for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(cfg *Config) []string {
	var errs []string

	if cfg.Version != 1 {
		errs = append(errs, fmt.Sprintf("unsupported version %d, only version 1 is supported", cfg.Version))
	}

	if len(cfg.Extensions) == 0 {
		errs = append(errs, "at least one extension is required")
	}
	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, fmt.Sprintf("extension[%d]: %q must start with '.'", i, ext))
		}
	}

	if cfg.MTimeToleranceSeconds < 0 {
		errs = append(errs, fmt.Sprintf("mtime_tolerance_seconds must be non-negative, got %g", cfg.MTimeToleranceSeconds))
	}

	return errs
}

// MTimeTolerance returns the configured tolerance as a duration.
func (c *Config) MTimeTolerance() time.Duration {
	return time.Duration(c.MTimeToleranceSeconds * float64(time.Second))
}
