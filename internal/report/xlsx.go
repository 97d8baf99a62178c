// =============================================================================
// Event Ticket Sales Summary - XLSX Exporter
// =============================================================================
//
// Renders the same line walk as the CSV exporter into an XLSX workbook with a
// bold, frozen header row. Cell values use the CSV formatting (fixed-decimal
// money, plain counts) so the two export formats always agree.
//
// =============================================================================

package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const summarySheet = "Summary"

// XLSXFile builds an XLSX workbook for the chosen view. The caller owns the
// returned file and is responsible for saving and closing it.
func (reg *Registry) XLSXFile(data *Data, primary, breakdown Dimension) (*excelize.File, error) {
	header, lines := reg.exportLines(data, primary, breakdown)

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("failed to name summary sheet: %w", err)
	}

	if err := writeSheetRow(f, 1, header); err != nil {
		return nil, err
	}
	for i, line := range lines {
		if err := writeSheetRow(f, i+2, line); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		lastCell, _ := excelize.CoordinatesToCellName(len(header), 1)
		_ = f.SetCellStyle(summarySheet, "A1", lastCell, headerStyle)
	}
	_ = f.SetPanes(summarySheet, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	})

	return f, nil
}

// WriteXLSX builds the workbook and saves it to path.
func (reg *Registry) WriteXLSX(path string, data *Data, primary, breakdown Dimension) error {
	f, err := reg.XLSXFile(data, primary, breakdown)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save XLSX file: %w", err)
	}
	return nil
}

// writeSheetRow writes one slice of cell values into row n (1-indexed).
func writeSheetRow(f *excelize.File, n int, values []string) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, n)
		if err != nil {
			return fmt.Errorf("failed to address cell: %w", err)
		}
		if err := f.SetCellValue(summarySheet, cell, v); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
	}
	return nil
}
