package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"standup/internal/clipboard"
	"standup/internal/config"
	"standup/internal/gitlog"
	"standup/internal/output"
	"standup/internal/prompt"
	"standup/internal/report"
)

// RootCmd builds the standup command: scan the configured repositories,
// ask the two standup questions, render the report, and copy it to the
// clipboard unless disabled. Repositories that cannot be scanned are
// reported and skipped; they never fail the run.
func RootCmd() *cobra.Command {
	var formatFlag string
	var teamFlag string
	var repoFlags []string
	var noCopy bool

	cmd := &cobra.Command{
		Use:   "standup",
		Short: "Generate your daily standup from git commits",
		Long:  "Standup scans your repositories for commits from the last 24 hours, groups them by conventional-commit type, and renders a report you can paste into your standup channel.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			// CLI flags win over rc values, rc values over defaults
			format := formatFlag
			if format == "" {
				format = cfg.Format
			}
			if format == "" {
				format = string(report.FormatPlain)
			}
			if !report.ValidFormat(format) {
				return fmt.Errorf("invalid format: %s (must be 'plain', 'slack', or 'markdown')", format)
			}

			team := teamFlag
			if team == "" {
				team = cfg.Team
			}

			copyEnabled := !noCopy && cfg.Copy
			repoPaths := collectRepoPaths(cfg, repoFlags)

			printer := output.NewPrinter()
			printer.Banner()
			printer.Scanning()

			var summaries []*gitlog.Summary
			var skipped []string
			for _, path := range repoPaths {
				summary, err := gitlog.Scan(path)
				if err != nil {
					skipped = append(skipped, path)
					continue
				}
				summaries = append(summaries, summary)
				printer.Scanned(summary.Name, summary.CommitCount, summary.FilesChanged)
			}
			for _, path := range skipped {
				printer.Skipped(path)
			}
			printer.Blank()

			today, err := prompt.Ask("  What are you working on today?")
			if err != nil {
				return fmt.Errorf("failed to read answer: %w", err)
			}
			printer.Blank()

			blockers, err := prompt.Ask(`  Any blockers? (press Enter for "None")`)
			if err != nil {
				return fmt.Errorf("failed to read answer: %w", err)
			}
			printer.Blank()

			if today == "" {
				today = "(not specified)"
			}

			rendered := report.Render(summaries, today, blockers, report.Format(format), team)
			printer.Report(rendered, format)

			if copyEnabled {
				if err := clipboard.Copy(rendered); err != nil {
					printer.CopyFailed()
				} else {
					printer.Copied()
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output format: 'plain', 'slack', or 'markdown'")
	cmd.Flags().StringVarP(&teamFlag, "team", "t", "", "Team name for the standup header")
	cmd.Flags().StringArrayVar(&repoFlags, "repo", nil, "Repository path to scan (repeatable, defaults to cwd or .standuprc repos)")
	cmd.Flags().BoolVar(&noCopy, "no-copy", false, "Disable clipboard auto-copy")

	return cmd
}

// collectRepoPaths resolves which repositories to scan: CLI flags win over
// rc config, and the current directory is the fallback. Paths are
// absolutized and deduplicated case-insensitively, keeping first-seen
// order.
func collectRepoPaths(cfg config.Config, cliRepos []string) []string {
	source := cliRepos
	if len(source) == 0 {
		source = cfg.Repos
	}
	if len(source) == 0 {
		if cwd, err := os.Getwd(); err == nil {
			source = []string{cwd}
		}
	}

	seen := make(map[string]bool)
	var ordered []string
	for _, repo := range source {
		abs, err := filepath.Abs(repo)
		if err != nil {
			continue
		}
		key := strings.ToLower(abs)
		if seen[key] {
			continue
		}
		seen[key] = true
		ordered = append(ordered, abs)
	}

	return ordered
}
