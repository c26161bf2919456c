package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"standup/cmd"
)

func main() {
	rootCmd := cmd.RootCmd()
	rootCmd.AddCommand(cmd.ConfigCmd())

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}
