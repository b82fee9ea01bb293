package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config represents the effective settings for one run.
type Config struct {
	Base   string // base reference; "" means auto-detect develop/master
	Margin int    // expansion margin around each changed range
	Jobs   int    // per-file attribution workers
	Format string // "text" or "raw"
	Color  bool   // ANSI color and syntax highlighting
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Margin: 3,
		Jobs:   1,
		Format: "text",
		Color:  true,
	}
}

// Load builds the effective config by merging: defaults <- env <- overrides.
// The overrides map comes from CLI flags (only set values should be present).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no run could honor.
func (c Config) Validate() error {
	if c.Format != "text" && c.Format != "raw" {
		return fmt.Errorf("unrecognized output format: %s", c.Format)
	}
	if c.Margin < 0 {
		return fmt.Errorf("margin must be non-negative, got %d", c.Margin)
	}
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	return nil
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("REVIEWERS_BASE"); v != "" {
		cfg.Base = v
	}
	if v := os.Getenv("REVIEWERS_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("REVIEWERS_MARGIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Margin = n
		}
	}
	if v := os.Getenv("REVIEWERS_JOBS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Jobs = n
		}
	}
	// https://no-color.org convention.
	if os.Getenv("NO_COLOR") != "" {
		cfg.Color = false
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["base"]; ok && v != "" {
		cfg.Base = v
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["margin"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Margin = n
		}
	}
	if v, ok := overrides["jobs"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Jobs = n
		}
	}
	if v, ok := overrides["noColor"]; ok && v == "true" {
		cfg.Color = false
	}
}
