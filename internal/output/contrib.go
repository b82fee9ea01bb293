package output

import (
	"io"
	"sort"
	"strings"

	"github.com/reviewers-cli/reviewers/internal/highlight"
	"github.com/reviewers-cli/reviewers/internal/suggest"
)

// ContribWriter renders diff mode: only the lines attributed to identities
// containing the contributor substring, grouped by file in the report's
// file order. Non-adjacent lines are separated by gap markers.
type ContribWriter struct {
	contributor string
	color       bool
}

// NewContribWriter returns a diff-mode writer for the given contributor
// substring. When color is set, lines are syntax highlighted.
func NewContribWriter(contributor string, color bool) *ContribWriter {
	return &ContribWriter{contributor: contributor, color: color}
}

func (c *ContribWriter) Write(w io.Writer, report *suggest.Report) error {
	ew := &errWriter{w: w}

	matched := false
	for _, fr := range report.Files {
		lines := c.matchingLines(fr)
		if len(lines) == 0 {
			continue
		}
		matched = true

		ew.printf("%s%s%s\n", c.bold(), fr.Path, c.reset())
		prev := 0
		for _, rec := range lines {
			if prev != 0 && rec.Line > prev+1 {
				for i := 0; i < 3; i++ {
					ew.println("    .")
				}
			}
			content := rec.Content
			if c.color {
				content = highlight.Line(rec.Path, content)
			}
			ew.printf("%5d| %s\n", rec.Line, content)
			prev = rec.Line
		}
		ew.println("")
	}

	if !matched {
		ew.printf("No attributed lines match contributor %q.\n", c.contributor)
	}
	return ew.err
}

// matchingLines filters one file's records to the contributor substring,
// deduplicates lines attributed through overlapping windows, and restores
// original file order.
func (c *ContribWriter) matchingLines(fr suggest.FileResult) []suggest.AttributionRecord {
	seen := make(map[int]bool)
	var lines []suggest.AttributionRecord
	for _, rec := range fr.Records {
		if !strings.Contains(rec.Author, c.contributor) {
			continue
		}
		if seen[rec.Line] {
			continue
		}
		seen[rec.Line] = true
		lines = append(lines, rec)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Line < lines[j].Line })
	return lines
}

func (c *ContribWriter) bold() string {
	if !c.color {
		return ""
	}
	return ansiBold
}

func (c *ContribWriter) reset() string {
	if !c.color {
		return ""
	}
	return ansiReset
}
