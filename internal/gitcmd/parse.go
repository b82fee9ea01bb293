package gitcmd

import (
	"strconv"
	"strings"
)

// File change statuses from `git diff --raw`.
const (
	StatusAdded    = 'A'
	StatusDeleted  = 'D'
	StatusModified = 'M'
	StatusRenamed  = 'R'
	StatusCopied   = 'C'
)

// ChangedFile is one entry from `git diff --raw`.
type ChangedFile struct {
	Path    string // path in the working tree
	OldPath string // path at the base reference; differs from Path on rename/copy
	Status  byte
}

// Hunk is a changed range on the base side of a diff: Count lines
// beginning at Start. Count is 0 for a pure insertion.
type Hunk struct {
	Start int
	Count int
}

// BlameLine is one attributed line from `git blame --line-porcelain`.
type BlameLine struct {
	Line    int
	Author  string
	Mail    string
	Content string
}

// parseRawDiff parses `git diff --raw` output. Each entry looks like:
//
//	:100644 100644 abc1234 def5678 M\tpath
//	:100644 100644 abc1234 def5678 R095\told\tnew
func parseRawDiff(out string) []ChangedFile {
	var files []ChangedFile
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, ":") {
			continue
		}
		parts := strings.Split(line, "\t")
		meta := strings.Fields(parts[0])
		if len(meta) < 5 || len(parts) < 2 {
			continue
		}
		cf := ChangedFile{
			Path:    parts[1],
			OldPath: parts[1],
			Status:  meta[4][0],
		}
		if len(parts) > 2 {
			// Rename/copy entries list old then new path.
			cf.OldPath = parts[1]
			cf.Path = parts[2]
		}
		files = append(files, cf)
	}
	return files
}

// parseHunks extracts base-side ranges from `@@ -start,count +.. @@`
// headers of a unified diff. A missing count means 1.
func parseHunks(diff string) []Hunk {
	var hunks []Hunk
	for _, line := range strings.Split(diff, "\n") {
		if !strings.HasPrefix(line, "@@") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 || !strings.HasPrefix(fields[1], "-") {
			continue
		}
		spec := strings.TrimPrefix(fields[1], "-")
		startStr, countStr, hasCount := strings.Cut(spec, ",")
		start, err := strconv.Atoi(startStr)
		if err != nil {
			continue
		}
		count := 1
		if hasCount {
			count, err = strconv.Atoi(countStr)
			if err != nil {
				continue
			}
		}
		hunks = append(hunks, Hunk{Start: start, Count: count})
	}
	return hunks
}

// parseBlame parses `git blame --line-porcelain` output. Every line group
// starts with "<sha> <origline> <finalline> [<groupsize>]", repeats the
// author headers, and ends with the tab-prefixed content line.
func parseBlame(out string) []BlameLine {
	var lines []BlameLine
	var cur BlameLine
	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.HasPrefix(line, "\t"):
			cur.Content = strings.TrimPrefix(line, "\t")
			lines = append(lines, cur)
			cur = BlameLine{}
		case strings.HasPrefix(line, "author "):
			cur.Author = strings.TrimPrefix(line, "author ")
		case strings.HasPrefix(line, "author-mail "):
			mail := strings.TrimPrefix(line, "author-mail ")
			cur.Mail = strings.Trim(mail, "<>")
		default:
			if num, ok := blameHeaderLine(line); ok {
				cur.Line = num
			}
		}
	}
	return lines
}

// blameHeaderLine reports whether line is a porcelain group header and
// returns the final (post-image) line number it carries.
func blameHeaderLine(line string) (int, bool) {
	fields := strings.Fields(line)
	if len(fields) < 3 || len(fields) > 4 {
		return 0, false
	}
	if !isHex(fields[0]) || len(fields[0]) < 40 {
		return 0, false
	}
	num, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, false
	}
	return num, true
}

func isHex(s string) bool {
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return len(s) > 0
}
