package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/reviewers-cli/reviewers/internal/suggest"
)

// ANSI colors for the changed-file listing.
const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiBlue   = "\033[34m"
)

// TextWriter renders the human-readable report: the changed-file listing,
// warnings for degraded files, and the ranked reviewer table.
type TextWriter struct {
	Color bool
}

func (t *TextWriter) Write(w io.Writer, report *suggest.Report) error {
	ew := &errWriter{w: w}

	ew.printf("%sChanged files vs %s:%s\n", t.color(ansiBold), report.Base, t.color(ansiReset))
	if len(report.Files) == 0 {
		ew.println("  (none)")
	}
	for _, fr := range report.Files {
		line := fmt.Sprintf("  %-8s %s", fr.Change, displayPath(fr))
		switch fr.Status {
		case suggest.FileAdded, suggest.FileClean:
			line += "  (" + fr.Reason + ")"
		case suggest.FileSkipped:
			line += "  (skipped: " + fr.Reason + ")"
		}
		ew.printf("%s%s%s\n", t.statusColor(fr), line, t.color(ansiReset))
	}
	ew.println("")

	if len(report.Ranking) == 0 {
		ew.printf("%sNo potential reviewers found.%s\n", t.color(ansiBold), t.color(ansiReset))
		ew.println("This may be because the only person to touch these lines was you.")
		return ew.err
	}

	ew.printf("%sSuggested reviewers:%s\n", t.color(ansiBold), t.color(ansiReset))
	if ew.err != nil {
		return ew.err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Reviewer", "Lines", "Contrib"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)
	for _, s := range report.Ranking {
		table.Append([]string{s.Identity, fmt.Sprintf("%d", s.Lines), fmt.Sprintf("%.2f%%", s.Percent)})
	}
	table.Render()

	return ew.err
}

func (t *TextWriter) color(code string) string {
	if !t.Color {
		return ""
	}
	return code
}

func (t *TextWriter) statusColor(fr suggest.FileResult) string {
	if !t.Color {
		return ""
	}
	switch fr.Change {
	case "added":
		return ansiGreen
	case "deleted":
		return ansiRed
	case "modified":
		return ansiYellow
	default:
		return ansiBlue
	}
}

func displayPath(fr suggest.FileResult) string {
	if fr.OldPath != "" && fr.OldPath != fr.Path {
		return fr.OldPath + " -> " + fr.Path
	}
	return fr.Path
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
