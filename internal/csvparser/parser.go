// =============================================================================
// Event Ticket Sales Summary - CSV Parser Module
// =============================================================================
//
// This module parses attendee CSV exports into header-keyed rows. It handles
// the format quirks the exports show in practice:
//   - Different delimiters (comma, pipe, tab)
//   - Multi-line headers
//   - Custom data start rows
//   - Quoted fields and lazy quoting
//
// The parser knows nothing about attendee semantics; mapping headers to
// record fields happens in the attendee package.
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/frankieeedeee/event-summary-demo/internal/config"
	"github.com/frankieeedeee/event-summary-demo/internal/types"
)

// Parse reads a CSV file and returns the parsed table.
//
// The parsing process:
//  1. Configure the CSV reader from the settings (delimiter, lazy quotes).
//  2. Read and merge header rows (some exports span headers across rows).
//  3. Read data rows starting from the configured data start row.
//  4. Convert each row to a map of header -> value.
func Parse(filePath string, settings config.CSVSettings) (*types.Table, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	csvReader := csv.NewReader(bufio.NewReader(file))
	configureReader(csvReader, settings)

	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(allRows) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	headers, err := extractHeaders(allRows, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to extract headers: %w", err)
	}

	dataRows := extractDataRows(allRows, headers, settings)

	return &types.Table{
		Headers:     headers,
		Rows:        dataRows,
		SourceFile:  filePath,
		RowCount:    len(dataRows),
		ColumnCount: len(headers),
	}, nil
}

// configureReader applies the CSV settings to the reader.
func configureReader(reader *csv.Reader, settings config.CSVSettings) {
	switch settings.Delimiter {
	case "\\t", "tab", "TAB":
		reader.Comma = '\t'
	case "|", "pipe", "PIPE":
		reader.Comma = '|'
	case ";", "semicolon":
		reader.Comma = ';'
	default:
		if len(settings.Delimiter) > 0 {
			reader.Comma = rune(settings.Delimiter[0])
		} else {
			reader.Comma = ','
		}
	}

	// Exports occasionally have ragged rows and loosely quoted fields.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
}

// extractHeaders extracts and, for multi-row headers, merges the header rows.
// Merging concatenates the non-empty values of each column top to bottom:
//
//	Row 1: "Booking", "",     "Event", ""
//	Row 2: "Fees",    "Paid", "Name",  "Date"
//	Result: "Booking Fees", "Paid", "Event Name", "Date"
func extractHeaders(allRows [][]string, settings config.CSVSettings) ([]string, error) {
	if settings.HeaderRows <= 0 {
		return nil, fmt.Errorf("header_rows must be at least 1")
	}
	if len(allRows) < settings.HeaderRows {
		return nil, fmt.Errorf("file has fewer rows than header_rows setting")
	}

	if settings.HeaderRows == 1 {
		return cleanHeaders(allRows[0]), nil
	}

	maxCols := 0
	for i := 0; i < settings.HeaderRows; i++ {
		if len(allRows[i]) > maxCols {
			maxCols = len(allRows[i])
		}
	}

	headers := make([]string, maxCols)
	for col := 0; col < maxCols; col++ {
		var parts []string
		for row := 0; row < settings.HeaderRows; row++ {
			if col < len(allRows[row]) {
				if value := strings.TrimSpace(allRows[row][col]); value != "" {
					parts = append(parts, value)
				}
			}
		}
		headers[col] = strings.Join(parts, " ")
	}

	return cleanHeaders(headers), nil
}

// cleanHeaders trims headers and names empty ones by position so row maps
// never collide on "".
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))
	for i, header := range headers {
		header = strings.TrimSpace(header)
		if header == "" {
			header = fmt.Sprintf("Column_%d", i+1)
		}
		cleaned[i] = header
	}
	return cleaned
}

// extractDataRows converts the data rows to header-keyed maps, skipping
// entirely empty rows. Short rows get empty strings for missing columns.
func extractDataRows(allRows [][]string, headers []string, settings config.CSVSettings) []map[string]string {
	startIndex := settings.DataStartRow - 1
	if startIndex < 0 {
		startIndex = settings.HeaderRows
	}
	if startIndex >= len(allRows) {
		return []map[string]string{}
	}

	dataRows := make([]map[string]string, 0, len(allRows)-startIndex)
	for rowIndex := startIndex; rowIndex < len(allRows); rowIndex++ {
		row := allRows[rowIndex]
		if isRowEmpty(row) {
			continue
		}

		rowMap := make(map[string]string, len(headers))
		for colIndex, header := range headers {
			if colIndex < len(row) {
				rowMap[header] = strings.TrimSpace(row[colIndex])
			} else {
				rowMap[header] = ""
			}
		}
		dataRows = append(dataRows, rowMap)
	}

	return dataRows
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
