// =============================================================================
// Event Ticket Sales Summary - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - csvparser
//   - xlsxparser
//   - attendee
//
// =============================================================================

package types

// =============================================================================
// TABLE TYPES
// =============================================================================

// Table represents a parsed tabular export (CSV or XLSX) as header-keyed rows.
// Both file parsers produce this shape, so the attendee mapping layer does not
// care which format the platform exported.
type Table struct {
	// Headers contains the column headers in file order.
	// For multi-line headers, these are the merged/final headers.
	Headers []string

	// Rows contains the data rows as maps of header -> value.
	// Using maps allows for easy field access by name.
	Rows []map[string]string

	// SourceFile is the path to the source file.
	SourceFile string

	// RowCount is the total number of data rows (excluding headers).
	RowCount int

	// ColumnCount is the number of columns in the table.
	ColumnCount int
}
