package gitcmd

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNotARepository indicates the current directory is not inside a git
// working copy. It is the only fatal repository-level error.
var ErrNotARepository = errors.New("not a git repository")

// Repo is an open git working copy. All subprocesses run at its root.
type Repo struct {
	root string
}

// Open locates the enclosing repository via `git rev-parse --show-toplevel`.
func Open() (*Repo, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotARepository, err)
	}
	return &Repo{root: strings.TrimSpace(string(out))}, nil
}

// Root returns the absolute path of the repository root.
func (r *Repo) Root() string { return r.root }

// HasRef reports whether ref resolves to a commit.
func (r *Repo) HasRef(ref string) bool {
	_, err := r.git("rev-parse", "--verify", "--quiet", ref+"^{commit}")
	return err == nil
}

// ResolveBase picks the base reference to diff against. An explicit ref
// wins; otherwise develop is used when it exists, falling back to master.
func (r *Repo) ResolveBase(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if r.HasRef("develop") {
		return "develop"
	}
	return "master"
}

// UserName returns the configured git user.name, or "" when unset.
func (r *Repo) UserName() string {
	out, err := r.git("config", "--get", "user.name")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// ChangedFiles lists files that differ from base, with their change status.
func (r *Repo) ChangedFiles(base string) ([]ChangedFile, error) {
	out, err := r.git("--no-pager", "diff", "--raw", base)
	if err != nil {
		return nil, fmt.Errorf("git diff --raw %s: %w", base, err)
	}
	return parseRawDiff(out), nil
}

// FileHunks returns the base-side changed ranges for one file, parsed from
// a zero-context diff. For renames both paths must be supplied as pathspecs
// so git can pair the rename; limiting to the old path alone would make the
// rename look like a whole-file deletion. Ranges refer to the old path,
// since they are later attributed against the base reference.
func (r *Repo) FileHunks(base, oldPath, newPath string) ([]Hunk, error) {
	args := []string{"--no-pager", "diff", "-U0", base, "--", oldPath}
	if newPath != oldPath {
		args = append(args, newPath)
	}
	out, err := r.git(args...)
	if err != nil {
		return nil, fmt.Errorf("git diff %s -- %s: %w", base, oldPath, err)
	}
	return parseHunks(out), nil
}

// LineCount returns the number of lines of path at the base reference.
func (r *Repo) LineCount(base, path string) (int, error) {
	out, err := r.git("cat-file", "blob", base+":"+path)
	if err != nil {
		return 0, fmt.Errorf("git cat-file %s:%s: %w", base, path, err)
	}
	return countLines(out), nil
}

// Blame attributes lines [start,end] of path at the base reference using
// the porcelain format, which is stable across locales and name formats.
func (r *Repo) Blame(base, path string, start, end int) ([]BlameLine, error) {
	out, err := r.git("--no-pager", "blame", "--line-porcelain",
		fmt.Sprintf("-L%d,%d", start, end), base, "--", path)
	if err != nil {
		return nil, fmt.Errorf("git blame -L%d,%d %s -- %s: %w", start, end, base, path, err)
	}
	return parseBlame(out), nil
}

func (r *Repo) git(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.root
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return string(out), fmt.Errorf("%v: %s", err, msg)
		}
		return string(out), err
	}
	return string(out), nil
}

func countLines(content string) int {
	if content == "" {
		return 0
	}
	n := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}
