// Package suggest implements the reviewer-suggestion pipeline: changed
// ranges from the diff against the base reference are widened by a margin,
// every line in each window is attributed to its last author via blame,
// and attributions are folded into a ranked contribution tally.
//
// Per-file failures (binary files, vanished paths, blame errors) degrade
// to a skipped [FileResult] instead of aborting the run; only the absence
// of a repository is fatal. The ranked output is deterministic regardless
// of how many attribution workers run.
package suggest
