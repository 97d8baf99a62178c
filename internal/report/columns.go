// =============================================================================
// Event Ticket Sales Summary - Column Registry
// =============================================================================
//
// This module declares the typed column descriptors that drive every report
// output. Table rendering, CSV export and XLSX export all walk the same
// descriptor list, so labels, ordering and formatting are defined exactly
// once.
//
// A column extracts from a Bucket, which is the shape shared by primary rows
// and breakdown rows alike, so one descriptor serves every row kind that
// carries the field.
//
// FORMATTING:
//   - Monetary columns: locale-grouped currency string for display, fixed
//     2-decimal plain number for CSV.
//   - Count columns: no formatter; the raw integer's string form is used.
//   - Fallback chain: CSVFormat -> Format -> raw value via fmt.Sprint.
//
// =============================================================================

package report

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// =============================================================================
// COLUMN DESCRIPTOR
// =============================================================================

// Column describes one report column: identity, labeling, value extraction
// and optional display/CSV formatting.
type Column struct {
	// ID is the stable machine identifier of the column.
	ID string

	// Label is the header text shown on screen and written to exports.
	Label string

	// Description is optional help text for table tooltips.
	Description string

	// Extract pulls the column's value out of a bucket.
	Extract func(b *Bucket) any

	// Format renders the value for on-screen display. Optional.
	Format func(v any) string

	// CSVFormat renders the value for CSV/XLSX cells. Optional; falls back
	// to Format, then to the raw value.
	CSVFormat func(v any) string
}

// Display returns the on-screen string for the bucket's value.
func (c *Column) Display(b *Bucket) string {
	v := c.Extract(b)
	if c.Format != nil {
		return c.Format(v)
	}
	return fmt.Sprint(v)
}

// CSV returns the export cell string for the bucket's value.
func (c *Column) CSV(b *Bucket) string {
	v := c.Extract(b)
	if c.CSVFormat != nil {
		return c.CSVFormat(v)
	}
	if c.Format != nil {
		return c.Format(v)
	}
	return fmt.Sprint(v)
}

// =============================================================================
// REGISTRY
// =============================================================================

// Registry builds column lists for a chosen view. It carries the locale
// printer and currency symbol used by the monetary display formatters.
type Registry struct {
	printer *message.Printer
	symbol  string
}

// NewRegistry returns a registry formatting monetary values with the given
// locale and currency symbol.
func NewRegistry(tag language.Tag, currencySymbol string) *Registry {
	return &Registry{printer: message.NewPrinter(tag), symbol: currencySymbol}
}

// DefaultRegistry formats for English with a dollar symbol.
func DefaultRegistry() *Registry {
	return NewRegistry(language.English, "$")
}

// ColumnsForExport returns the export column list for a view, in order: the
// primary key column, the breakdown key column when a breakdown is selected,
// then the fifteen metric columns in canonical order. This order is the CSV
// column order and is stable.
func (reg *Registry) ColumnsForExport(primary, breakdown Dimension) []Column {
	cols := make([]Column, 0, 17)
	cols = append(cols, keyColumn(primary))
	if breakdown != DimensionNone {
		cols = append(cols, keyColumn(breakdown))
	}
	return append(cols, reg.metricColumns()...)
}

// ColumnsForTable is ColumnsForExport without the breakdown key column: the
// table widget shows the breakdown key as an indented sub-row label, while
// exports need it as an explicit column for flat re-import.
func (reg *Registry) ColumnsForTable(primary, breakdown Dimension) []Column {
	_ = breakdown
	cols := make([]Column, 0, 16)
	cols = append(cols, keyColumn(primary))
	return append(cols, reg.metricColumns()...)
}

// keyColumn is the dimension-key column for a view. Key columns have no
// formatters; the key renders as-is.
func keyColumn(d Dimension) Column {
	return Column{
		ID:    d.String(),
		Label: d.Label(),
		Extract: func(b *Bucket) any {
			return b.Key
		},
	}
}

// metricColumns returns the fifteen metric columns in canonical order:
// total paid, the two counts, then the thirteen fee fields.
func (reg *Registry) metricColumns() []Column {
	return []Column{
		reg.money("total_paid", "Total Paid", "Sum of the amounts paid by all contributing attendees", func(b *Bucket) decimal.Decimal {
			return b.TotalPaid
		}),
		count("valid_count", "Valid Tickets", "Number of valid tickets in this group", func(b *Bucket) int {
			return b.ValidCount
		}),
		count("cancelled_count", "Cancelled Tickets", "Number of cancelled tickets in this group", func(b *Bucket) int {
			return b.CancelledCount
		}),
		reg.money("booking_fees", "Booking Fees", "", func(b *Bucket) decimal.Decimal { return b.Fees.BookingFees }),
		reg.money("passed_on_fees", "Passed On Fees", "", func(b *Bucket) decimal.Decimal { return b.Fees.PassedOnFees }),
		reg.money("absorbed_fees", "Absorbed Fees", "", func(b *Bucket) decimal.Decimal { return b.Fees.AbsorbedFees }),
		reg.money("surcharge", "Surcharge", "", func(b *Bucket) decimal.Decimal { return b.Fees.Surcharge }),
		reg.money("custom_tax", "Custom Tax", "", func(b *Bucket) decimal.Decimal { return b.Fees.CustomTax }),
		reg.money("gateway_absorbed_fees", "Gateway Absorbed Fees", "", func(b *Bucket) decimal.Decimal { return b.Fees.GatewayAbsorbedFees }),
		reg.money("refunds", "Refunds", "", func(b *Bucket) decimal.Decimal { return b.Fees.Refunds }),
		reg.money("rebate", "Rebate", "", func(b *Bucket) decimal.Decimal { return b.Fees.Rebate }),
		reg.money("earnings", "Earnings", "Net earnings after fees and refunds", func(b *Bucket) decimal.Decimal { return b.Fees.Earnings }),
		reg.money("refunded_fees", "Refunded Fees", "", func(b *Bucket) decimal.Decimal { return b.Fees.RefundedFees }),
		reg.money("discount_redeemed", "Discount Redeemed", "", func(b *Bucket) decimal.Decimal { return b.Fees.DiscountRedeemed }),
		reg.money("tax_on_sales", "Tax on Sales", "", func(b *Bucket) decimal.Decimal { return b.Fees.TaxOnSales }),
		reg.money("tax_on_booking_fees", "Tax on Booking Fees", "", func(b *Bucket) decimal.Decimal { return b.Fees.TaxOnBookingFees }),
	}
}

// money builds a monetary column: currency display string for screen, fixed
// 2-decimal numeric string for CSV.
func (reg *Registry) money(id, label, description string, extract func(b *Bucket) decimal.Decimal) Column {
	return Column{
		ID:          id,
		Label:       label,
		Description: description,
		Extract: func(b *Bucket) any {
			return extract(b)
		},
		Format: func(v any) string {
			f, _ := v.(decimal.Decimal).Float64()
			return reg.printer.Sprintf("%s%v", reg.symbol,
				number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
		},
		CSVFormat: func(v any) string {
			return v.(decimal.Decimal).StringFixed(2)
		},
	}
}

// count builds a plain integer column with no formatters.
func count(id, label, description string, extract func(b *Bucket) int) Column {
	return Column{
		ID:          id,
		Label:       label,
		Description: description,
		Extract: func(b *Bucket) any {
			return extract(b)
		},
	}
}
