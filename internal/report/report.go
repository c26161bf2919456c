package report

import (
	"fmt"
	"strings"

	"standup/internal/commit"
	"standup/internal/gitlog"
)

// Format selects the output shape of a rendered report
type Format string

const (
	FormatPlain    Format = "plain"
	FormatSlack    Format = "slack"
	FormatMarkdown Format = "markdown"
)

// ValidFormat reports whether name is a known output format
func ValidFormat(name string) bool {
	switch Format(name) {
	case FormatPlain, FormatSlack, FormatMarkdown:
		return true
	}
	return false
}

// Summarizer buckets commits by type and deduplicates their messages
// case-insensitively. The seen set lives for the whole run: a message
// repeated across repositories is reported once, by the first repository
// that had it.
type Summarizer struct {
	seen map[string]bool
}

func NewSummarizer() *Summarizer {
	return &Summarizer{seen: make(map[string]bool)}
}

// Lines renders one repository's commits as labelled sections in the
// fixed type order, with one bullet per surviving message.
func (s *Summarizer) Lines(commits []commit.Record) []string {
	if len(commits) == 0 {
		return []string{"No commits in the last 24 hours"}
	}

	grouped := make(map[commit.Type][]string)
	for _, c := range commits {
		key := strings.ToLower(c.Message)
		if s.seen[key] {
			continue
		}
		s.seen[key] = true
		grouped[c.Type] = append(grouped[c.Type], c.Message)
	}

	var lines []string
	for _, section := range commit.Sections {
		items := grouped[section.Type]
		if len(items) == 0 {
			continue
		}
		lines = append(lines, section.Label+":")
		for _, item := range items {
			lines = append(lines, "- "+item)
		}
	}

	return lines
}

// Render assembles the final report for the given format. Rendering is
// pure: the same inputs always produce the same bytes.
func Render(summaries []*gitlog.Summary, today, blockers string, format Format, team string) string {
	if blockers == "" {
		blockers = "None"
	}

	repoLines := repoBlocks(summaries)

	switch format {
	case FormatSlack:
		return renderSlack(repoLines, today, blockers, team)
	case FormatMarkdown:
		return renderMarkdown(repoLines, today, blockers, team)
	default:
		return renderPlain(repoLines, today, blockers, team)
	}
}

// repoBlocks renders each repository as a header plus its grouped body,
// separated by blank lines, sharing one Summarizer so deduplication spans
// the whole run.
func repoBlocks(summaries []*gitlog.Summary) []string {
	var lines []string
	if len(summaries) == 0 {
		lines = append(lines, "No repositories scanned")
	}

	summarizer := NewSummarizer()
	for _, repo := range summaries {
		lines = append(lines, fmt.Sprintf("%s (%d commits, %d files changed):",
			repo.Name, repo.CommitCount, repo.FilesChanged))
		lines = append(lines, summarizer.Lines(repo.Commits)...)
		lines = append(lines, "")
	}

	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	return lines
}

func renderPlain(repoLines []string, today, blockers, team string) string {
	var lines []string
	if team != "" {
		lines = append(lines, "Team: "+team)
	}
	lines = append(lines, "Yesterday:")
	lines = append(lines, repoLines...)
	lines = append(lines, "Today: "+today)
	lines = append(lines, "Blockers: "+blockers)
	return strings.Join(lines, "\n")
}

// renderSlack bolds header lines (anything ending in a colon) and turns
// every other non-blank line into a bullet.
func renderSlack(repoLines []string, today, blockers, team string) string {
	var lines []string
	if team != "" {
		lines = append(lines, "*Team:* "+team)
	}
	lines = append(lines, "*Yesterday:*")
	for _, line := range repoLines {
		switch {
		case line == "":
			lines = append(lines, "")
		case strings.HasSuffix(line, ":"):
			lines = append(lines, "*"+line+"*")
		case strings.HasPrefix(line, "- "):
			lines = append(lines, line)
		default:
			lines = append(lines, "- "+line)
		}
	}
	lines = append(lines, "*Today:* "+today)
	lines = append(lines, "*Blockers:* "+blockers)
	return strings.Join(lines, "\n")
}

func renderMarkdown(repoLines []string, today, blockers, team string) string {
	lines := []string{"### Daily Standup", ""}
	if team != "" {
		lines = append(lines, "**Team:**", team, "")
	}
	lines = append(lines, "**Yesterday:**")
	lines = append(lines, repoLines...)
	lines = append(lines, "", "**Today:**", today, "", "**Blockers:**", blockers)
	return strings.Join(lines, "\n")
}
