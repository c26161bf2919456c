package gitlog

import (
	"errors"
	"os/exec"
	"path/filepath"
	"strings"

	"standup/internal/commit"
)

// Sentinel begins each commit block in the raw log stream. The unit
// separator keeps a subject that happens to contain "__COMMIT__" from
// opening a new block.
const Sentinel = "__COMMIT__\x1f"

// ErrUnavailable marks a path that is not a git repository, or a git
// invocation that failed or could not run at all. Callers skip the
// repository and continue.
var ErrUnavailable = errors.New("repository unavailable")

// Summary describes the last 24 hours of one repository.
type Summary struct {
	Name         string
	Path         string
	Commits      []commit.Record
	CommitCount  int
	FilesChanged int
}

// logSince is a function variable to allow testing without a git binary
// or a real repository.
var logSince = gitLogSince

// gitLogSince asks git for the last 24 hours of non-merge commits: one
// sentinel+subject line per commit, followed by that commit's numstat
// lines.
func gitLogSince(path string) (string, error) {
	cmd := exec.Command(
		"git", "-C", path,
		"log",
		"--since=24 hours ago",
		"--no-merges",
		"--pretty=format:__COMMIT__%x1f%s",
		"--numstat",
	)

	out, err := cmd.Output()
	if err != nil {
		// A missing binary and a non-zero exit (not a repository) are
		// the same outcome for the caller.
		return "", ErrUnavailable
	}

	return string(out), nil
}

// Decode splits a raw log stream into commit records, counting one changed
// file per numstat line. Lines before the first sentinel have no commit to
// belong to and are dropped, as are blank and malformed lines.
func Decode(raw string) []commit.Record {
	var commits []commit.Record
	var current *commit.Record

	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(line, Sentinel) {
			if current != nil {
				commits = append(commits, *current)
			}
			ctype, msg := commit.ParseSubject(line[len(Sentinel):])
			if !commit.Known(ctype) {
				ctype = commit.TypeOther
			}
			current = &commit.Record{Type: ctype, Message: msg}
			continue
		}

		if strings.TrimSpace(line) == "" || current == nil {
			continue
		}

		// Numstat lines carry additions, deletions, and a file name.
		// Anything with fewer fields is not a file change.
		if len(strings.Split(line, "\t")) >= 3 {
			current.FilesChanged++
		}
	}

	if current != nil {
		commits = append(commits, *current)
	}

	return commits
}

// Scan resolves the repository path, queries its log window, and decodes
// the result into a Summary. Every failure mode surfaces as
// ErrUnavailable.
func Scan(path string) (*Summary, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, ErrUnavailable
	}

	name := filepath.Base(abs)
	if name == "." || name == string(filepath.Separator) {
		name = abs
	}

	raw, err := logSince(abs)
	if err != nil {
		return nil, ErrUnavailable
	}

	commits := Decode(strings.TrimSpace(raw))

	filesChanged := 0
	for _, c := range commits {
		filesChanged += c.FilesChanged
	}

	return &Summary{
		Name:         name,
		Path:         abs,
		Commits:      commits,
		CommitCount:  len(commits),
		FilesChanged: filesChanged,
	}, nil
}
