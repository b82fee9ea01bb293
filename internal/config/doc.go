// Package config builds the effective run configuration by merging
// defaults, REVIEWERS_* environment variables, and CLI flag overrides,
// in that order. There is no config file: every run is self-contained.
package config
