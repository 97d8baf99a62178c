// =============================================================================
// Event Ticket Sales Summary - XLSX Parser Module
// =============================================================================
//
// Some ticketing platforms hand out attendee exports as .xlsx workbooks
// instead of CSV. This module reads the first visible sheet of such a
// workbook into the same header-keyed table shape the CSV parser produces,
// so the attendee mapping layer handles both formats identically.
//
// Only the first sheet is read: attendee exports are single-sheet workbooks,
// and any extra sheets are platform boilerplate.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"strings"

	"github.com/frankieeedeee/event-summary-demo/internal/types"
	"github.com/xuri/excelize/v2"
)

// Parse reads an XLSX attendee export and returns the parsed table. The first
// row is the header row; all following non-empty rows are data.
func Parse(filePath string) (*types.Table, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := firstVisibleSheet(f)
	if sheetName == "" {
		return nil, fmt.Errorf("XLSX file has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheetName)
	}

	headers := cleanHeaders(rows[0])
	dataRows := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
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

	return &types.Table{
		Headers:     headers,
		Rows:        dataRows,
		SourceFile:  filePath,
		RowCount:    len(dataRows),
		ColumnCount: len(headers),
	}, nil
}

// firstVisibleSheet returns the name of the first non-hidden sheet.
func firstVisibleSheet(f *excelize.File) string {
	for _, name := range f.GetSheetList() {
		visible, err := f.GetSheetVisible(name)
		if err == nil && !visible {
			continue
		}
		return name
	}
	return ""
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

// isRowEmpty checks if a row contains only empty cells.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
