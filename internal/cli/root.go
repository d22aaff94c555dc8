// Package cli implements the bottled command-line interface using Cobra.
// Each subcommand maps to one user action (create, open, list, etc.).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bottled",
	Short: "bottled — time-delayed messages for your future self",
	Long: `bottled seals messages (with optional attachments) that become
readable only after a delay you choose. Opening bottles builds streaks
and unlocks achievements. Everything stays on your machine.`,
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
