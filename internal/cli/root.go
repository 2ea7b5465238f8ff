// Package cli implements the IdeaForge command-line interface using Cobra.
// Each subcommand maps to one engine operation (complete, undo, status…).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "forge",
	Short: "IdeaForge — level up by shipping project ideas",
	Long: `IdeaForge tracks the project ideas you finish and turns them into
progression: achievements, badges, streaks, and a skill level.

Mark ideas as done, keep your streak alive, and unlock everything.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
