// =============================================================================
// Event Ticket Sales Summary - Attendee Mapping
// =============================================================================
//
// This module maps a parsed export table onto attendee records using the
// configured column-mapping profile. It is the coercion boundary: by the time
// records leave here, every monetary field is a well-formed decimal (absent
// or unparseable source values become 0), and rows missing an event name or
// ticket type have been dropped and counted.
//
// =============================================================================

package attendee

import (
	"strings"

	"github.com/frankieeedeee/event-summary-demo/internal/config"
	"github.com/frankieeedeee/event-summary-demo/internal/types"
	"github.com/shopspring/decimal"
)

// =============================================================================
// PARSE RESULT
// =============================================================================

// ParseResult accounts for what happened during a mapping pass.
type ParseResult struct {
	// Total is the number of data rows seen.
	Total int

	// Mapped is the number of rows that became records.
	Mapped int

	// Skipped is the number of rows dropped for missing an event name or
	// ticket type.
	Skipped int
}

// =============================================================================
// MAPPING
// =============================================================================

// MapRows converts the table's rows into attendee records with the given
// status. Rows without an event name or ticket type are skipped; they cannot
// be attributed to any report bucket.
func MapRows(table *types.Table, mapping config.ColumnMapping, status Status) ([]Record, ParseResult) {
	records := make([]Record, 0, len(table.Rows))
	result := ParseResult{Total: len(table.Rows)}

	for _, row := range table.Rows {
		eventName := strings.TrimSpace(row[mapping.EventName])
		ticketType := strings.TrimSpace(row[mapping.TicketType])
		if eventName == "" || ticketType == "" {
			result.Skipped++
			continue
		}

		records = append(records, Record{
			EventName:     eventName,
			EventDateTime: strings.TrimSpace(row[mapping.EventDateTime]),
			TicketType:    ticketType,
			Paid:          ParseMoney(row[mapping.Paid]),
			Status:        status,
			Gateway:       strings.TrimSpace(row[mapping.Gateway]),
			SalesChannel:  strings.TrimSpace(row[mapping.SalesChannel]),
			Fees: FeeTotals{
				BookingFees:         ParseMoney(row[mapping.BookingFees]),
				PassedOnFees:        ParseMoney(row[mapping.PassedOnFees]),
				AbsorbedFees:        ParseMoney(row[mapping.AbsorbedFees]),
				Surcharge:           ParseMoney(row[mapping.Surcharge]),
				CustomTax:           ParseMoney(row[mapping.CustomTax]),
				GatewayAbsorbedFees: ParseMoney(row[mapping.GatewayAbsorbedFees]),
				Refunds:             ParseMoney(row[mapping.Refunds]),
				Rebate:              ParseMoney(row[mapping.Rebate]),
				Earnings:            ParseMoney(row[mapping.Earnings]),
				RefundedFees:        ParseMoney(row[mapping.RefundedFees]),
				DiscountRedeemed:    ParseMoney(row[mapping.DiscountRedeemed]),
				TaxOnSales:          ParseMoney(row[mapping.TaxOnSales]),
				TaxOnBookingFees:    ParseMoney(row[mapping.TaxOnBookingFees]),
			},
		})
		result.Mapped++
	}

	return records, result
}

// ParseMoney coerces a currency-formatted export value to a decimal. Currency
// symbols, thousands separators and whitespace are stripped; anything still
// unparseable, including the empty string, becomes 0.
//
//	"$1,234.56" -> 1234.56
//	"(12.50)"   -> -12.50
//	"free"      -> 0
func ParseMoney(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}

	// Accountant-style negatives: "(12.50)".
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	var sb strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			sb.WriteRune(r)
		}
	}

	d, err := decimal.NewFromString(sb.String())
	if err != nil {
		return decimal.Zero
	}
	if negative {
		return d.Neg()
	}
	return d
}
