/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "phishtab",
	Short: "Phish.net show and setlist extractor",
	Long: `phishtab pulls the Phish show catalog and per-show setlists from
the Phish.net API and writes them out as analysis-ready datasets.

The extract command sweeps the catalog year by year, enriches every
show with its setlist, and exports three CSV shapes: one row per show,
a wide feature matrix for modeling, and a long one-row-per-song table
for ML pipelines. Results can also be mirrored into SQLite.

The probe command checks API connectivity and your key without
fetching anything.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags can be added here if needed
}
