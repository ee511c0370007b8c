package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/data-donation/internal"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	dbPath  string
	version string = "dev"
	commit  string = "unknown"
	date    string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "data-donation",
	Short: "Review and donate personal data exports",
	Long: `A CLI tool to review a personal-data export and donate selected
fields to a research collection endpoint.

The tool extracts specific fields from a platform's data export (currently
TikTok JSON exports) into tables, shows them for review, and transmits the
tables only after explicit consent. Identifying fields are pseudonymized
with a one-way hash before they ever appear in a table.

Quick Start:
  data-donation run                        # Run the interactive donation flow
  data-donation extract export.json        # Preview the tables for a file
  data-donation donations                  # List stored donations`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "donations.db", "Path to the donation database")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
