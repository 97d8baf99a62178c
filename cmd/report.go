// =============================================================================
// Event Ticket Sales Summary - Report Command
// =============================================================================
//
// This file defines the 'report' command, the main command of the tool. It
// runs the whole pipeline: parse the attendee exports, aggregate them into
// the three pivot views, and write the chosen view as CSV and/or XLSX.
//
// COMMAND USAGE:
//   summary report --valid FILE [flags]
//
// FLAGS:
//   --valid      : Valid-attendees export (CSV or XLSX). Required.
//   --cancelled  : Cancelled-attendees export. Optional.
//   --primary    : Primary grouping dimension (default ticket_type)
//   --breakdown  : Secondary breakdown dimension, or "none" (default none)
//   --format     : Export format: csv, xlsx or both (default csv)
//   --out        : Output directory override
//   --dry-run    : Run the pipeline without writing output files
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/frankieeedeee/event-summary-demo/internal/config"
	"github.com/frankieeedeee/event-summary-demo/internal/generator"
	"github.com/frankieeedeee/event-summary-demo/internal/report"
	"github.com/spf13/cobra"
)

// Report command flags.
var (
	validPath     string
	cancelledPath string
	primaryFlag   string
	breakdownFlag string
	formatFlag    string
	outputDir     string
	dryRun        bool
)

// reportCmd represents the 'report' command.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Aggregate attendee exports into a pivoted sales summary",
	Long: `The report command reads the valid (and optionally cancelled) attendee
export of a single event, aggregates paid amounts, fee metrics and ticket
counts per ticket type, payment gateway and sales channel, and writes the
selected view as a summary file.

With a breakdown dimension selected, every primary row is expanded into one
line per breakdown value, zero-filled where the combination never occurred,
so all rows share the same breakdown key sequence.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport()
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&validPath, "valid", "", "Path to the valid-attendees export (CSV or XLSX)")
	reportCmd.Flags().StringVar(&cancelledPath, "cancelled", "", "Path to the cancelled-attendees export")
	reportCmd.Flags().StringVar(&primaryFlag, "primary", "ticket_type", "Primary dimension: ticket_type, gateway or sales_channel")
	reportCmd.Flags().StringVar(&breakdownFlag, "breakdown", "none", "Breakdown dimension: ticket_type, gateway, sales_channel or none")
	reportCmd.Flags().StringVar(&formatFlag, "format", "csv", "Export format: csv, xlsx or both")
	reportCmd.Flags().StringVar(&outputDir, "out", "", "Output directory (overrides the configured output_dir)")
	reportCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Run the pipeline without writing output files")

	reportCmd.MarkFlagRequired("valid")
}

// runReport validates the flags, loads configuration and runs the pipeline.
func runReport() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	configureLogger(cfg.LogLevel)

	primary, err := report.ParseDimension(primaryFlag)
	if err != nil {
		return err
	}
	if primary == report.DimensionNone {
		return fmt.Errorf("--primary must name a dimension")
	}
	breakdown, err := report.ParseDimension(breakdownFlag)
	if err != nil {
		return err
	}
	if breakdown == primary {
		return fmt.Errorf("--breakdown must differ from --primary")
	}

	formats, err := parseFormats(formatFlag)
	if err != nil {
		return err
	}

	gen := &generator.Generator{
		ValidPath:     validPath,
		CancelledPath: cancelledPath,
		Primary:       primary,
		Breakdown:     breakdown,
		Formats:       formats,
		OutputDir:     outputDir,
		DryRun:        dryRun,
		Config:        cfg,
		Log:           log,
	}

	result, err := gen.Run()
	if err != nil {
		return err
	}

	fmt.Println("=== Report Complete ===")
	fmt.Printf("Event:             %s\n", result.Report.EventName)
	fmt.Printf("Valid records:     %d\n", result.Stats.ValidRecords)
	fmt.Printf("Cancelled records: %d\n", result.Stats.CancelledRecords)
	if result.Stats.SkippedRows > 0 {
		fmt.Printf("Skipped rows:      %d\n", result.Stats.SkippedRows)
	}
	fmt.Printf("Ticket types:      %d\n", len(result.Report.TicketTypeRows))
	fmt.Printf("Gateways:          %d\n", len(result.Report.GatewayRows))
	fmt.Printf("Sales channels:    %d\n", len(result.Report.SalesChannelRows))
	fmt.Printf("Time elapsed:      %s\n", result.Stats.Elapsed)
	for _, file := range result.OutputFiles {
		fmt.Printf("  ✓ %s\n", file)
	}
	if dryRun {
		fmt.Println("Dry run: no files written.")
	}
	return nil
}

// parseFormats expands the --format flag into the concrete format list.
func parseFormats(s string) ([]string, error) {
	switch s {
	case "csv":
		return []string{"csv"}, nil
	case "xlsx":
		return []string{"xlsx"}, nil
	case "both":
		return []string{"csv", "xlsx"}, nil
	}
	return nil, fmt.Errorf("unknown format %q (want csv, xlsx or both)", s)
}
