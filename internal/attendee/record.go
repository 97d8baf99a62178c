// =============================================================================
// Event Ticket Sales Summary - Attendee Record Model
// =============================================================================
//
// This module defines the attendee record shape produced by the file mapping
// layer and consumed by the report aggregator. One record corresponds to one
// row of the platform's attendee export.
//
// The thirteen tracked fee metrics live in FeeTotals. The field list there is
// the single authoritative enumeration of tracked fees: the zero value, the
// Add operation, and the report column registry all derive from it. When a
// metric is added it must be added to FeeTotals, FeeTotals.Add and the column
// registry together.
//
// =============================================================================

package attendee

import "github.com/shopspring/decimal"

// =============================================================================
// STATUS
// =============================================================================

// Status classifies a record as a valid or a cancelled ticket sale.
type Status string

const (
	// StatusValid marks a ticket that is still valid.
	StatusValid Status = "valid"

	// StatusCancelled marks a ticket that was cancelled or refunded away.
	StatusCancelled Status = "cancelled"
)

// =============================================================================
// FEE TOTALS
// =============================================================================

// FeeTotals holds the thirteen monetary fee and earnings metrics tracked for
// every attendee record and every aggregated bucket. All fields are running
// sums when the struct lives inside a bucket.
//
// The zero value is a valid "all zero" total.
type FeeTotals struct {
	// BookingFees is the booking fee charged on the order line.
	BookingFees decimal.Decimal

	// PassedOnFees are booking fees passed on to the buyer.
	PassedOnFees decimal.Decimal

	// AbsorbedFees are booking fees absorbed by the organizer.
	AbsorbedFees decimal.Decimal

	// Surcharge is any per-ticket surcharge applied at checkout.
	Surcharge decimal.Decimal

	// CustomTax is the organizer-defined tax amount.
	CustomTax decimal.Decimal

	// GatewayAbsorbedFees are payment gateway fees absorbed by the organizer.
	GatewayAbsorbedFees decimal.Decimal

	// Refunds is the refunded ticket amount.
	Refunds decimal.Decimal

	// Rebate is the platform rebate credited to the organizer.
	Rebate decimal.Decimal

	// Earnings is the organizer's net earnings for the line.
	Earnings decimal.Decimal

	// RefundedFees are booking fees returned as part of a refund.
	RefundedFees decimal.Decimal

	// DiscountRedeemed is the discount amount redeemed against the line.
	DiscountRedeemed decimal.Decimal

	// TaxOnSales is the tax collected on the ticket price.
	TaxOnSales decimal.Decimal

	// TaxOnBookingFees is the tax collected on booking fees.
	TaxOnBookingFees decimal.Decimal
}

// Add accumulates other into t, field by field. This is the only place the
// thirteen fee fields are enumerated for arithmetic; every aggregation path
// goes through it.
func (t *FeeTotals) Add(other FeeTotals) {
	t.BookingFees = t.BookingFees.Add(other.BookingFees)
	t.PassedOnFees = t.PassedOnFees.Add(other.PassedOnFees)
	t.AbsorbedFees = t.AbsorbedFees.Add(other.AbsorbedFees)
	t.Surcharge = t.Surcharge.Add(other.Surcharge)
	t.CustomTax = t.CustomTax.Add(other.CustomTax)
	t.GatewayAbsorbedFees = t.GatewayAbsorbedFees.Add(other.GatewayAbsorbedFees)
	t.Refunds = t.Refunds.Add(other.Refunds)
	t.Rebate = t.Rebate.Add(other.Rebate)
	t.Earnings = t.Earnings.Add(other.Earnings)
	t.RefundedFees = t.RefundedFees.Add(other.RefundedFees)
	t.DiscountRedeemed = t.DiscountRedeemed.Add(other.DiscountRedeemed)
	t.TaxOnSales = t.TaxOnSales.Add(other.TaxOnSales)
	t.TaxOnBookingFees = t.TaxOnBookingFees.Add(other.TaxOnBookingFees)
}

// =============================================================================
// RECORD
// =============================================================================

// Record is one attendee line from a ticket export. Records are immutable
// once mapped; the aggregator only reads them.
type Record struct {
	// EventName is the event the ticket belongs to. Never empty: rows without
	// an event name are dropped during mapping.
	EventName string

	// EventDateTime is the event start date/time as exported. May be empty.
	EventDateTime string

	// TicketType is the ticket type name. Never empty: rows without a ticket
	// type are dropped during mapping.
	TicketType string

	// Paid is the total amount paid for the ticket.
	Paid decimal.Decimal

	// Status says whether the ticket is valid or cancelled.
	Status Status

	// Gateway is the payment gateway used for the order. May be empty when
	// the export does not carry one (e.g. free or offline orders).
	Gateway string

	// SalesChannel is the channel the ticket was sold through. May be empty.
	SalesChannel string

	// Fees holds the thirteen monetary fee metrics for this line.
	Fees FeeTotals
}
