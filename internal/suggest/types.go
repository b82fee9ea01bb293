package suggest

// FileStatus classifies how a changed file fared in the pipeline.
type FileStatus string

const (
	// FileOK means attribution succeeded and records were collected.
	FileOK FileStatus = "ok"
	// FileAdded means the file is new on this branch; with no history at
	// the base reference there is nothing to attribute.
	FileAdded FileStatus = "added"
	// FileClean means the file was requested explicitly but has no diff
	// against the base, so no reviewers could be computed for it.
	FileClean FileStatus = "clean"
	// FileSkipped means a subprocess failed for this file; the run
	// continued without it.
	FileSkipped FileStatus = "skipped"
)

// AttributionRecord is one blamed line inside an expanded window.
type AttributionRecord struct {
	Path    string `json:"path"`
	Line    int    `json:"line"`
	Author  string `json:"author"`
	Mail    string `json:"mail,omitempty"`
	Content string `json:"content,omitempty"`
}

// FileResult is the per-file outcome: either attribution records or the
// reason none could be produced. Failures are data here, not errors, so
// the presenter can report partial degradation explicitly.
type FileResult struct {
	Path    string              `json:"path"`
	OldPath string              `json:"oldPath,omitempty"`
	Status  FileStatus          `json:"status"`
	Change  string              `json:"change,omitempty"` // added, deleted, modified, renamed, copied
	Reason  string              `json:"reason,omitempty"`
	Records []AttributionRecord `json:"records,omitempty"`
}

// ReviewerStat is one contributor's aggregate standing.
type ReviewerStat struct {
	Identity string  `json:"identity"`
	Lines    int     `json:"lines"`
	Percent  float64 `json:"percent"`
}

// Report is the complete result of one run.
type Report struct {
	Repo         string         `json:"repo"`
	Base         string         `json:"base"`
	Files        []FileResult   `json:"files"`
	Ranking      []ReviewerStat `json:"ranking"`
	TotalLines   int            `json:"totalLines"`
	ExcludedUser string         `json:"excludedUser,omitempty"`
}

// Window is an inclusive 1-based line range to attribute.
type Window struct {
	Start int
	End   int
}

// Expand widens a changed range of count lines starting at start by margin
// lines on each side, clamped to [1, fileLen]. ok is false when the range
// collapses to nothing (a pure insertion with margin 0, or an empty file).
func Expand(start, count, margin, fileLen int) (Window, bool) {
	if fileLen < 1 {
		return Window{}, false
	}
	lo := start - margin
	hi := start + count - 1 + margin
	if lo < 1 {
		lo = 1
	}
	if hi > fileLen {
		hi = fileLen
	}
	if hi < lo {
		return Window{}, false
	}
	return Window{Start: lo, End: hi}, true
}
