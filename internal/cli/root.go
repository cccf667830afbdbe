// Package cli implements the ChoreBoard command-line interface using
// Cobra. Each subcommand maps to a daemon capability (serve, dashboard,
// achievements, seed).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "choreboard",
	Short: "ChoreBoard — progress analytics for household chores and reading",
	Long: `ChoreBoard turns raw chore completions, reading sessions, and story
chapters into per-child metrics, achievements, engagement scores, and
household dashboards. Everything is recomputed from events on demand —
there is no cached state to drift.`,
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
