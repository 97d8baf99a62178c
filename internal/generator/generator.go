// =============================================================================
// Event Ticket Sales Summary - Report Generator
// =============================================================================
//
// This module runs the whole report pipeline for one event:
//
//   1. Parse the valid and cancelled attendee exports (CSV or XLSX by file
//      extension), concurrently since the files are independent.
//   2. Map the parsed rows onto attendee records via the configured column
//      mapping, dropping rows that cannot be attributed.
//   3. Aggregate the records into the three cross-tabulated report views.
//   4. Write the requested export file(s) into the output directory.
//
// The cancelled export is optional; a missing path just means an empty
// cancelled list.
//
// =============================================================================

package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/frankieeedeee/event-summary-demo/internal/attendee"
	"github.com/frankieeedeee/event-summary-demo/internal/config"
	"github.com/frankieeedeee/event-summary-demo/internal/csvparser"
	"github.com/frankieeedeee/event-summary-demo/internal/report"
	"github.com/frankieeedeee/event-summary-demo/internal/types"
	"github.com/frankieeedeee/event-summary-demo/internal/xlsxparser"
	"github.com/frankieeedeee/event-summary-demo/pkg/utils"
	"github.com/sirupsen/logrus"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of one pipeline run.
type Result struct {
	// Report is the aggregated report data.
	Report *report.Data

	// OutputFiles are the export files written, in the order written.
	// Empty on a dry run.
	OutputFiles []string

	// Stats contains processing statistics.
	Stats Stats
}

// Stats contains statistics about a pipeline run.
type Stats struct {
	// ValidRecords is the number of valid attendee records mapped.
	ValidRecords int

	// CancelledRecords is the number of cancelled attendee records mapped.
	CancelledRecords int

	// SkippedRows is the number of export rows dropped for missing an event
	// name or ticket type.
	SkippedRows int

	// Elapsed is the total pipeline time.
	Elapsed time.Duration
}

// =============================================================================
// GENERATOR STRUCTURE
// =============================================================================

// Generator holds the inputs and options for one pipeline run.
type Generator struct {
	// ValidPath is the path to the valid-attendees export. Required.
	ValidPath string

	// CancelledPath is the path to the cancelled-attendees export. Optional.
	CancelledPath string

	// Primary is the primary grouping dimension of the exported view.
	Primary report.Dimension

	// Breakdown is the secondary dimension, or DimensionNone for summary
	// lines only.
	Breakdown report.Dimension

	// Formats lists the export formats to write: "csv" and/or "xlsx".
	Formats []string

	// OutputDir overrides the configured output directory when non-empty.
	OutputDir string

	// DryRun runs the full pipeline but writes nothing.
	DryRun bool

	// Config is the loaded application configuration.
	Config *config.MainConfig

	// Log receives pipeline progress. Required.
	Log *logrus.Logger
}

// Run executes the pipeline and returns the aggregated report plus the list
// of files written.
func (g *Generator) Run() (*Result, error) {
	startTime := time.Now()

	valid, cancelled, skipped, err := g.loadRecords()
	if err != nil {
		return nil, err
	}

	g.Log.WithFields(logrus.Fields{
		"valid":     len(valid),
		"cancelled": len(cancelled),
		"skipped":   skipped,
	}).Info("attendee records mapped")

	agg := report.NewAggregator(g.Config.LanguageTag())
	data := agg.Generate(valid, cancelled)

	g.Log.WithFields(logrus.Fields{
		"event":          data.EventName,
		"ticket_types":   len(data.TicketTypeRows),
		"gateways":       len(data.GatewayRows),
		"sales_channels": len(data.SalesChannelRows),
	}).Info("report aggregated")

	result := &Result{
		Report: data,
		Stats: Stats{
			ValidRecords:     len(valid),
			CancelledRecords: len(cancelled),
			SkippedRows:      skipped,
		},
	}

	if !g.DryRun {
		files, err := g.writeExports(data)
		if err != nil {
			return nil, err
		}
		result.OutputFiles = files
	}

	result.Stats.Elapsed = time.Since(startTime)
	return result, nil
}

// =============================================================================
// INPUT LOADING
// =============================================================================

// loadRecords parses and maps both exports. The two files are independent,
// so they are parsed concurrently.
func (g *Generator) loadRecords() (valid, cancelled []attendee.Record, skipped int, err error) {
	type loaded struct {
		records []attendee.Record
		result  attendee.ParseResult
		err     error
	}

	load := func(path string, status attendee.Status, out *loaded) {
		table, err := g.parseFile(path)
		if err != nil {
			out.err = fmt.Errorf("failed to parse %s: %w", path, err)
			return
		}
		out.records, out.result = attendee.MapRows(table, g.Config.Columns, status)
	}

	var validOut, cancelledOut loaded
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		load(g.ValidPath, attendee.StatusValid, &validOut)
	}()
	if g.CancelledPath != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			load(g.CancelledPath, attendee.StatusCancelled, &cancelledOut)
		}()
	}
	wg.Wait()

	if validOut.err != nil {
		return nil, nil, 0, validOut.err
	}
	if cancelledOut.err != nil {
		return nil, nil, 0, cancelledOut.err
	}

	skipped = validOut.result.Skipped + cancelledOut.result.Skipped
	return validOut.records, cancelledOut.records, skipped, nil
}

// parseFile picks the parser by file extension.
func (g *Generator) parseFile(path string) (*types.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return xlsxparser.Parse(path)
	}
	return csvparser.Parse(path, g.Config.CSVSettings)
}

// =============================================================================
// EXPORT WRITING
// =============================================================================

// writeExports writes the requested export formats and returns the paths
// written.
func (g *Generator) writeExports(data *report.Data) ([]string, error) {
	outputDir := g.OutputDir
	if outputDir == "" {
		outputDir = g.Config.OutputDir
	}
	if err := utils.EnsureDirectory(outputDir); err != nil {
		return nil, err
	}

	registry := report.NewRegistry(g.Config.LanguageTag(), g.Config.CurrencySymbol)
	baseName := utils.GenerateOutputFileName(g.Config.OutputNameFormat, data.EventName)

	var files []string
	for _, format := range g.Formats {
		switch format {
		case "csv":
			path := filepath.Join(outputDir, baseName+".csv")
			if err := g.writeCSV(registry, data, path); err != nil {
				return nil, err
			}
			files = append(files, path)
		case "xlsx":
			path := filepath.Join(outputDir, baseName+".xlsx")
			if err := registry.WriteXLSX(path, data, g.Primary, g.Breakdown); err != nil {
				return nil, err
			}
			files = append(files, path)
		default:
			return nil, fmt.Errorf("unknown export format %q (want csv or xlsx)", format)
		}
		g.Log.WithField("file", files[len(files)-1]).Info("export written")
	}
	return files, nil
}

// writeCSV serializes the chosen view to a CSV file.
func (g *Generator) writeCSV(registry *report.Registry, data *report.Data, path string) error {
	text, err := registry.CSVString(data, g.Primary, g.Breakdown)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write CSV file: %w", err)
	}
	return nil
}
