// =============================================================================
// Event Ticket Sales Summary - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. All other commands
// ('report', 'version') are attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (summary)
//   ├── reportCmd  (summary report)
//   └── versionCmd (summary version)
//
// The root command owns the global flags (--config, --verbose) and the
// shared logger setup.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// cfgFile holds the path to the main configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// log is the shared application logger. Level is set per run from the
// --verbose flag and the configured log level.
var log = logrus.New()

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "summary",
	Short: "Event Ticket Sales Summary - Aggregate attendee exports into pivot reports",
	Long: `Event Ticket Sales Summary aggregates the valid and cancelled attendee
exports of a single event into a cross-tabulated sales report, grouped by
ticket type, payment gateway or sales channel, with a dense secondary
breakdown and CSV/XLSX output.

Example Usage:
  summary report --valid attendees.csv                     # ticket-type summary
  summary report --valid a.csv --cancelled c.csv \
      --primary gateway --breakdown ticket_type            # pivoted view
  summary report --valid a.xlsx --format both --out ./reports`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// configureLogger applies the effective log level. --verbose wins over the
// configured level.
func configureLogger(configuredLevel string) {
	if verbose {
		log.SetLevel(logrus.DebugLevel)
		return
	}
	level, err := logrus.ParseLevel(configuredLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
}
