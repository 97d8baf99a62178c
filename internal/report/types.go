// =============================================================================
// Event Ticket Sales Summary - Report Types
// =============================================================================
//
// This module defines the aggregated report shapes: the dimension enum, the
// bucket accumulator shared by every row kind, the primary row with its dense
// breakdowns, and the top-level report data.
//
// =============================================================================

package report

import (
	"fmt"

	"github.com/frankieeedeee/event-summary-demo/internal/attendee"
	"github.com/shopspring/decimal"
)

// =============================================================================
// DIMENSIONS
// =============================================================================

// Dimension identifies one of the three pivot dimensions a report view can be
// grouped by. DimensionNone stands for "no breakdown selected".
type Dimension int

const (
	DimensionNone Dimension = iota
	DimensionTicketType
	DimensionGateway
	DimensionSalesChannel
)

// pivotDimensions lists the three groupable dimensions in canonical order.
var pivotDimensions = []Dimension{DimensionTicketType, DimensionGateway, DimensionSalesChannel}

// String returns the stable identifier used in CLI flags and column ids.
func (d Dimension) String() string {
	switch d {
	case DimensionTicketType:
		return "ticket_type"
	case DimensionGateway:
		return "gateway"
	case DimensionSalesChannel:
		return "sales_channel"
	case DimensionNone:
		return "none"
	}
	return fmt.Sprintf("dimension(%d)", int(d))
}

// Label returns the human-readable column label for the dimension key.
func (d Dimension) Label() string {
	switch d {
	case DimensionTicketType:
		return "Ticket Type"
	case DimensionGateway:
		return "Gateway"
	case DimensionSalesChannel:
		return "Sales Channel"
	}
	return ""
}

// ParseDimension parses a CLI/config identifier into a Dimension.
// The empty string and "none" both mean DimensionNone.
func ParseDimension(s string) (Dimension, error) {
	switch s {
	case "", "none":
		return DimensionNone, nil
	case "ticket_type":
		return DimensionTicketType, nil
	case "gateway":
		return DimensionGateway, nil
	case "sales_channel":
		return DimensionSalesChannel, nil
	}
	return DimensionNone, fmt.Errorf("unknown dimension %q (want ticket_type, gateway, sales_channel or none)", s)
}

// value extracts the record's value for the dimension. Empty means the record
// does not carry the dimension.
func (d Dimension) value(r *attendee.Record) string {
	switch d {
	case DimensionTicketType:
		return r.TicketType
	case DimensionGateway:
		return r.Gateway
	case DimensionSalesChannel:
		return r.SalesChannel
	}
	return ""
}

// =============================================================================
// BUCKETS AND ROWS
// =============================================================================

// Bucket is the accumulator for one dimension-value combination. The same
// shape backs primary rows and breakdown rows, so the column registry can be
// written once against it.
type Bucket struct {
	// Key is the dimension value this bucket aggregates (a ticket type name,
	// a gateway name, or a sales channel name, depending on the view).
	Key string

	// TotalPaid is the sum of Paid over all contributing records.
	TotalPaid decimal.Decimal

	// ValidCount is the number of contributing valid records.
	ValidCount int

	// CancelledCount is the number of contributing cancelled records.
	CancelledCount int

	// Fees holds the elementwise sums of the thirteen fee metrics.
	Fees attendee.FeeTotals
}

// add folds one record into the bucket.
func (b *Bucket) add(r *attendee.Record) {
	b.TotalPaid = b.TotalPaid.Add(r.Paid)
	if r.Status == attendee.StatusCancelled {
		b.CancelledCount++
	} else {
		b.ValidCount++
	}
	b.Fees.Add(r.Fees)
}

// Row is one primary row of a report view: its own bucket plus the dense
// breakdowns for the other two dimensions. The breakdown slice matching the
// row's own view dimension is never populated, and a slice is nil (not empty)
// when no record anywhere carried that dimension.
type Row struct {
	Bucket

	// TicketTypeBreakdown splits the row by ticket type.
	TicketTypeBreakdown []Bucket

	// GatewayBreakdown splits the row by payment gateway.
	GatewayBreakdown []Bucket

	// SalesChannelBreakdown splits the row by sales channel.
	SalesChannelBreakdown []Bucket
}

// Breakdown returns the row's breakdown for the given dimension, or nil when
// d is DimensionNone or the breakdown is absent.
func (r *Row) Breakdown(d Dimension) []Bucket {
	switch d {
	case DimensionTicketType:
		return r.TicketTypeBreakdown
	case DimensionGateway:
		return r.GatewayBreakdown
	case DimensionSalesChannel:
		return r.SalesChannelBreakdown
	}
	return nil
}

// setBreakdown stores a breakdown slice for the given dimension.
func (r *Row) setBreakdown(d Dimension, buckets []Bucket) {
	switch d {
	case DimensionTicketType:
		r.TicketTypeBreakdown = buckets
	case DimensionGateway:
		r.GatewayBreakdown = buckets
	case DimensionSalesChannel:
		r.SalesChannelBreakdown = buckets
	}
}

// =============================================================================
// REPORT DATA
// =============================================================================

// Data is the full aggregated report for one event: three parallel views over
// the same records, each sorted ascending by its key. Data is rebuilt in full
// on every aggregation and never mutated afterwards.
type Data struct {
	// EventName is taken from the first mapped record (valid list first).
	EventName string

	// TicketTypeRows groups by ticket type. Every record contributes here.
	TicketTypeRows []Row

	// GatewayRows groups by payment gateway. Records without a gateway are
	// not represented in this view.
	GatewayRows []Row

	// SalesChannelRows groups by sales channel. Records without a channel
	// are not represented in this view.
	SalesChannelRows []Row
}

// View returns the rows grouped by the given primary dimension.
func (d *Data) View(primary Dimension) []Row {
	switch primary {
	case DimensionTicketType:
		return d.TicketTypeRows
	case DimensionGateway:
		return d.GatewayRows
	case DimensionSalesChannel:
		return d.SalesChannelRows
	}
	return nil
}

// setView stores the rows for the given primary dimension.
func (d *Data) setView(primary Dimension, rows []Row) {
	switch primary {
	case DimensionTicketType:
		d.TicketTypeRows = rows
	case DimensionGateway:
		d.GatewayRows = rows
	case DimensionSalesChannel:
		d.SalesChannelRows = rows
	}
}
