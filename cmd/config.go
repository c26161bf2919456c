package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"standup/internal/config"
)

func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show configuration settings",
		Long:  "Display the resolved .standuprc configuration and where it was loaded from.",
	}

	cmd.AddCommand(configShowCmd())
	cmd.AddCommand(configPathCmd())

	return cmd
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the configuration values a standup run would use.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			source := cfg.Source
			if source == "" {
				source = "(built-in defaults)"
			}
			format := cfg.Format
			if format == "" {
				format = "plain (default)"
			}
			team := cfg.Team
			if team == "" {
				team = "(not set)"
			}
			repos := strings.Join(cfg.Repos, ", ")
			if repos == "" {
				repos = "(current directory)"
			}

			fmt.Println("Current Configuration:")
			fmt.Printf("\n  Source: %s", source)
			fmt.Printf("\n  Format: %s", format)
			fmt.Printf("\n  Team: %s", team)
			fmt.Printf("\n  Copy to clipboard: %t", cfg.Copy)
			fmt.Printf("\n  Repos: %s", repos)
			fmt.Println()

			return nil
		},
	}
}

func configPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration file locations",
		Long:  "Display the .standuprc locations consulted, in precedence order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range config.Paths() {
				fmt.Println(path)
			}
			return nil
		},
	}
}
