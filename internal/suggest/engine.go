package suggest

import (
	"context"
	"fmt"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/reviewers-cli/reviewers/internal/gitcmd"
)

// Source is the slice of git behavior the pipeline consumes. *gitcmd.Repo
// implements it; tests substitute a fake.
type Source interface {
	Root() string
	UserName() string
	ChangedFiles(base string) ([]gitcmd.ChangedFile, error)
	FileHunks(base, oldPath, newPath string) ([]gitcmd.Hunk, error)
	LineCount(base, path string) (int, error)
	Blame(base, path string, start, end int) ([]gitcmd.BlameLine, error)
}

// Options control one pipeline run.
type Options struct {
	Base   string   // base reference, already resolved
	Margin int      // expansion margin in lines
	Jobs   int      // per-file attribution workers; <=1 means sequential
	Files  []string // restrict analysis to these repo-relative paths
}

// Run executes the full pipeline: scan the diff, attribute every expanded
// window, and rank contributors. Only the initial diff can fail the run;
// per-file trouble degrades to a skipped FileResult.
func Run(ctx context.Context, src Source, opts Options) (*Report, error) {
	changed, err := src.ChangedFiles(opts.Base)
	if err != nil {
		return nil, fmt.Errorf("computing diff against %s: %w", opts.Base, err)
	}

	changed = restrict(changed, opts.Files)
	results := make([]FileResult, len(changed))

	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, cf := range changed {
		i, cf := i, cf
		g.Go(func() error {
			results[i] = attributeFile(src, opts, cf)
			return nil
		})
	}
	g.Wait() // workers never return errors; failures land in results

	for _, fr := range results {
		if fr.Status == FileSkipped {
			log.Warnf("skipping %s: %s", fr.Path, fr.Reason)
		}
	}

	// Requested files with no diff are reported, not silently dropped.
	results = append(results, cleanRequested(changed, opts.Files)...)

	user := src.UserName()
	if user == "" {
		log.Warn("git user.name is not set; you may see yourself in the output")
	}
	ranking, total := Rank(results, user, ExactMatch())

	return &Report{
		Repo:         src.Root(),
		Base:         opts.Base,
		Files:        results,
		Ranking:      ranking,
		TotalLines:   total,
		ExcludedUser: user,
	}, nil
}

// attributeFile runs hunk extraction, window expansion, and blame for one
// changed file. Any subprocess failure marks the whole file skipped.
func attributeFile(src Source, opts Options, cf gitcmd.ChangedFile) FileResult {
	fr := FileResult{
		Path:   cf.Path,
		Status: FileOK,
		Change: changeName(cf.Status),
	}
	if cf.OldPath != cf.Path {
		fr.OldPath = cf.OldPath
	}

	if cf.Status == gitcmd.StatusAdded {
		fr.Status = FileAdded
		fr.Reason = "no history at base reference"
		return fr
	}

	hunks, err := src.FileHunks(opts.Base, cf.OldPath, cf.Path)
	if err != nil {
		fr.Status = FileSkipped
		fr.Reason = err.Error()
		return fr
	}
	fileLen, err := src.LineCount(opts.Base, cf.OldPath)
	if err != nil {
		fr.Status = FileSkipped
		fr.Reason = err.Error()
		return fr
	}

	for _, h := range hunks {
		win, ok := Expand(h.Start, h.Count, opts.Margin, fileLen)
		if !ok {
			continue
		}
		lines, err := src.Blame(opts.Base, cf.OldPath, win.Start, win.End)
		if err != nil {
			fr.Status = FileSkipped
			fr.Reason = err.Error()
			fr.Records = nil
			return fr
		}
		for _, bl := range lines {
			fr.Records = append(fr.Records, AttributionRecord{
				Path:    cf.Path,
				Line:    bl.Line,
				Author:  bl.Author,
				Mail:    bl.Mail,
				Content: bl.Content,
			})
		}
	}
	return fr
}

// restrict intersects the changed files with an explicit request list.
// Paths are compared cleaned, so "./main.go" matches "main.go".
func restrict(changed []gitcmd.ChangedFile, requested []string) []gitcmd.ChangedFile {
	if len(requested) == 0 {
		return changed
	}
	want := make(map[string]bool, len(requested))
	for _, p := range requested {
		want[filepath.Clean(p)] = true
	}
	var kept []gitcmd.ChangedFile
	for _, cf := range changed {
		if want[filepath.Clean(cf.Path)] || want[filepath.Clean(cf.OldPath)] {
			kept = append(kept, cf)
		}
	}
	return kept
}

// cleanRequested reports explicitly requested files that had no diff.
func cleanRequested(changed []gitcmd.ChangedFile, requested []string) []FileResult {
	if len(requested) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(changed))
	for _, cf := range changed {
		seen[filepath.Clean(cf.Path)] = true
		seen[filepath.Clean(cf.OldPath)] = true
	}
	var extra []FileResult
	for _, p := range requested {
		clean := filepath.Clean(p)
		if seen[clean] {
			continue
		}
		seen[clean] = true
		extra = append(extra, FileResult{
			Path:   clean,
			Status: FileClean,
			Reason: "no diff against base reference",
		})
	}
	return extra
}

func changeName(status byte) string {
	switch status {
	case gitcmd.StatusAdded:
		return "added"
	case gitcmd.StatusDeleted:
		return "deleted"
	case gitcmd.StatusModified:
		return "modified"
	case gitcmd.StatusRenamed:
		return "renamed"
	case gitcmd.StatusCopied:
		return "copied"
	default:
		return string(status)
	}
}
