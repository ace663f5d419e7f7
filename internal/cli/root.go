// Package cli provides the Cobra command structure for gobrackets.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gobrackets/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gobrackets command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "gobrackets",
		Short: "Rainbow bracket-pair colorization for source files",
		Long: `gobrackets scans source files and colorizes matching bracket pairs by
nesting depth, the way editors render rainbow brackets.

It understands comments and string literals through syntax tokenization,
applies a language-aware heuristic to tell angle brackets from comparison
operators, and skips brackets inside inactive C-preprocessor regions such
as #if 0 blocks.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newInactiveCommand())
	rootCmd.AddCommand(newStatsCommand())
	rootCmd.AddCommand(newPaletteCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
