package output

import (
	"fmt"
	"io"

	"github.com/reviewers-cli/reviewers/internal/suggest"
)

// Writer renders a report in a specific format.
type Writer interface {
	Write(w io.Writer, report *suggest.Report) error
}

// GetWriter returns a writer for the given format string.
func GetWriter(format string, color bool) (Writer, error) {
	switch format {
	case "text":
		return &TextWriter{Color: color}, nil
	case "raw":
		return &RawWriter{}, nil
	default:
		return nil, fmt.Errorf("unrecognized output format: %s", format)
	}
}
