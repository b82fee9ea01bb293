// Package cli wires together the Cobra command tree for the reviewers
// binary. It binds flags, builds the effective configuration, drives the
// suggestion pipeline, and returns deterministic exit codes.
package cli
