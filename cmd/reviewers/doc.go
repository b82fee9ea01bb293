// Reviewers suggests code reviewers for a pending change by attributing
// the lines near each change to their most recent authors.
//
// It diffs the working branch against a base reference (develop if it
// exists, else master), widens every changed range by a small margin,
// attributes each line in the window via git blame, and ranks the
// contributors by their share of the attributed lines.
//
// Usage:
//
//	reviewers                        # rank reviewers for all changed files
//	reviewers -b origin/main         # diff against an explicit base
//	reviewers -c Sally src/auth.go   # show Sally's attributed lines in one file
//	reviewers -o raw                 # dump the report as JSON
package main
