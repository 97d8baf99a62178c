// =============================================================================
// Event Ticket Sales Summary - CSV Exporter
// =============================================================================
//
// This module serializes an aggregated report through the column registry
// into RFC4180 CSV. The same line walk also feeds the XLSX exporter.
//
// LINE EMISSION:
//   - With a breakdown selected and present on a row: one line per breakdown
//     entry. The primary key cell comes from the primary row; the breakdown
//     key and every metric cell come from the breakdown entry.
//   - Without a breakdown (or when the row has none because the dimension was
//     never supplied by any record): one summary line from the primary row,
//     with an empty breakdown key cell if that column exists.
//
// =============================================================================

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// WriteCSV serializes the chosen view of the report to w as CSV, one header
// line followed by data lines. Output round-trips through any standard CSV
// reader: every line has exactly as many fields as the header.
func (reg *Registry) WriteCSV(w io.Writer, data *Data, primary, breakdown Dimension) error {
	header, lines := reg.exportLines(data, primary, breakdown)

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, line := range lines {
		if err := cw.Write(line); err != nil {
			return fmt.Errorf("failed to write CSV line: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSVString is WriteCSV into a string, for callers handing the text to a
// download shim.
func (reg *Registry) CSVString(data *Data, primary, breakdown Dimension) (string, error) {
	var sb strings.Builder
	if err := reg.WriteCSV(&sb, data, primary, breakdown); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// exportLines walks the view through ColumnsForExport and produces the header
// labels plus one string slice per output line.
func (reg *Registry) exportLines(data *Data, primary, breakdown Dimension) (header []string, lines [][]string) {
	cols := reg.ColumnsForExport(primary, breakdown)

	header = make([]string, len(cols))
	for i := range cols {
		header[i] = cols[i].Label
	}

	rows := data.View(primary)
	for ri := range rows {
		row := &rows[ri]
		entries := row.Breakdown(breakdown)
		if breakdown == DimensionNone || len(entries) == 0 {
			lines = append(lines, summaryLine(cols, row, breakdown != DimensionNone))
			continue
		}
		for bi := range entries {
			line := make([]string, len(cols))
			for ci := range cols {
				// Column 0 is the primary key and reads from the primary
				// row; everything else reads from the breakdown entry.
				if ci == 0 {
					line[ci] = cols[ci].CSV(&row.Bucket)
				} else {
					line[ci] = cols[ci].CSV(&entries[bi])
				}
			}
			lines = append(lines, line)
		}
	}
	return header, lines
}

// summaryLine emits one line sourced entirely from the primary row. When the
// column list carries a breakdown key column (index 1), that cell is left
// empty rather than repeating the primary key.
func summaryLine(cols []Column, row *Row, hasBreakdownColumn bool) []string {
	line := make([]string, len(cols))
	for ci := range cols {
		if hasBreakdownColumn && ci == 1 {
			continue
		}
		line[ci] = cols[ci].CSV(&row.Bucket)
	}
	return line
}
