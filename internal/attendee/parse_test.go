package attendee

import (
	"testing"

	"github.com/frankieeedeee/event-summary-demo/internal/config"
	"github.com/frankieeedeee/event-summary-demo/internal/types"
	"github.com/shopspring/decimal"
)

func TestParseMoney(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"", "0"},
		{"0", "0"},
		{"100", "100"},
		{"1234.56", "1234.56"},
		{"$1,234.56", "1234.56"},
		{"  $ 99.90 ", "99.9"},
		{"-12.50", "-12.5"},
		{"(12.50)", "-12.5"},
		{"free", "0"},
		{"N/A", "0"},
		// Naive symbol stripping: European separators are not understood.
		{"€2.000,00", "2"},
	}
	for _, c := range cases {
		got := ParseMoney(c.in)
		if got.String() != c.want {
			t.Fatalf("ParseMoney(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestMapRows(t *testing.T) {
	t.Parallel()

	mapping := config.Default().Columns
	table := &types.Table{
		Rows: []map[string]string{
			{
				"Event Name":      "Summer Gala",
				"Event Date":      "2026-07-01 19:00",
				"Ticket Type":     "GA",
				"Total Paid":      "$100.00",
				"Payment Gateway": "Stripe",
				"Sales Channel":   "Online",
				"Booking Fees":    "2.50",
				"Earnings":        "95.00",
			},
			// Missing ticket type: dropped.
			{"Event Name": "Summer Gala", "Ticket Type": "", "Total Paid": "10"},
			// Missing event name: dropped.
			{"Event Name": "", "Ticket Type": "GA", "Total Paid": "10"},
			// No gateway/channel and unparseable money: kept, coerced to 0.
			{"Event Name": "Summer Gala", "Ticket Type": "VIP", "Total Paid": "comp"},
		},
	}

	records, result := MapRows(table, mapping, StatusCancelled)

	if result.Total != 4 || result.Mapped != 2 || result.Skipped != 2 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(records) != 2 {
		t.Fatalf("records: want 2, got %d", len(records))
	}

	first := records[0]
	if first.EventName != "Summer Gala" || first.TicketType != "GA" || first.Status != StatusCancelled {
		t.Fatalf("unexpected first record: %+v", first)
	}
	if !first.Paid.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("paid: want 100, got %s", first.Paid)
	}
	if !first.Fees.BookingFees.Equal(decimal.NewFromFloat(2.5)) || !first.Fees.Earnings.Equal(decimal.NewFromInt(95)) {
		t.Fatalf("unexpected fees: %+v", first.Fees)
	}
	if first.Gateway != "Stripe" || first.SalesChannel != "Online" {
		t.Fatalf("unexpected dimensions: %q %q", first.Gateway, first.SalesChannel)
	}

	second := records[1]
	if second.Gateway != "" || second.SalesChannel != "" {
		t.Fatalf("expected empty dimensions, got %q %q", second.Gateway, second.SalesChannel)
	}
	if !second.Paid.IsZero() {
		t.Fatalf("unparseable paid should coerce to 0, got %s", second.Paid)
	}
}

func TestFeeTotalsAdd(t *testing.T) {
	t.Parallel()

	var sum FeeTotals
	sum.Add(FeeTotals{BookingFees: decimal.NewFromFloat(1.5), TaxOnBookingFees: decimal.NewFromInt(2)})
	sum.Add(FeeTotals{BookingFees: decimal.NewFromFloat(2.5), Refunds: decimal.NewFromInt(7)})

	if !sum.BookingFees.Equal(decimal.NewFromInt(4)) {
		t.Fatalf("booking fees: want 4, got %s", sum.BookingFees)
	}
	if !sum.TaxOnBookingFees.Equal(decimal.NewFromInt(2)) || !sum.Refunds.Equal(decimal.NewFromInt(7)) {
		t.Fatalf("unexpected sums: %+v", sum)
	}
	if !sum.Earnings.IsZero() {
		t.Fatalf("untouched field should stay zero, got %s", sum.Earnings)
	}
}
