// Package cmd implements the vinom-maze command line.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vinom-maze",
	Short: "Generate and solve perfect mazes",
	Long: `vinom-maze carves perfect mazes with the binary tree, sidewinder,
Aldous-Broder or hunt-and-kill algorithm, and labels them with distances.

Run "vinom-maze generate" to print a maze, or "vinom-maze serve" to expose
generation and solving over HTTP.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
