package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/reviewers-cli/reviewers/internal/suggest"
)

func TestRawWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &RawWriter{}
	if err := w.Write(&buf, sampleReport()); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var decoded suggest.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.Base != "develop" {
		t.Errorf("Base = %q, want develop", decoded.Base)
	}
	if len(decoded.Ranking) != 2 || decoded.Ranking[0].Identity != "Sally Smith" {
		t.Errorf("Ranking = %+v", decoded.Ranking)
	}
	if len(decoded.Files) != 3 {
		t.Errorf("got %d files, want 3", len(decoded.Files))
	}
	if decoded.TotalLines != 40 {
		t.Errorf("TotalLines = %d, want 40", decoded.TotalLines)
	}
}
