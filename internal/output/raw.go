package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/reviewers-cli/reviewers/internal/suggest"
)

// RawWriter dumps the full in-memory report as JSON.
type RawWriter struct{}

func (r *RawWriter) Write(w io.Writer, report *suggest.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
