// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-18

// Package commands implements the ghiqc command line.
package commands

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/similigh/ghiqc/internal/output"
)

var (
	cfgFile string
	verbose bool

	ui = output.New()
)

var rootCmd = &cobra.Command{
	Use:   "ghiqc",
	Short: "GitHub issue quality checker",
	Long: `ghiqc reviews freshly opened GitHub issues.
It skips issues matching the ignore facts (ignore.ghiqc) and asks a
language model for a short review of everything else, published to the
console or as a comment on the issue.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.Verbose = verbose
		if !verbose && !isCI() {
			log.SetOutput(io.Discard)
		}
	},
}

// Execute runs the root command.
func Execute(version string) {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default .github/ghiqc.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

// isCI reports whether we run in a non-interactive CI environment.
func isCI() bool {
	return os.Getenv("CI") == "true" || os.Getenv("GITHUB_ACTIONS") == "true"
}
