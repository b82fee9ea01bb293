// Package output renders a suggestion report for display or machine
// consumption.
//
// Three presentations are supported:
//   - text — changed-file listing plus the ranked reviewer table (default)
//   - raw  — JSON dump of the in-memory report for piping to other tools
//   - contributor diff mode — one contributor's attributed lines grouped by file
//
// Use [GetWriter] for the format-selected writers; diff mode is requested
// explicitly with [NewContribWriter] since it carries the contributor filter.
package output
