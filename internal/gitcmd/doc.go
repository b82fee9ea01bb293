// Package gitcmd shells out to the git binary for repository discovery,
// changed-file enumeration, hunk extraction, and line-attribution queries.
//
// All commands run with their working directory pinned to the repository
// root so paths reported by `git diff --raw` resolve consistently. Opening
// a [Repo] outside a git checkout fails with [ErrNotARepository]; every
// other failure is surfaced per call so a single bad file cannot take down
// a whole run.
package gitcmd
