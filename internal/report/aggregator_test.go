package report

import (
	"math/rand"
	"testing"

	"github.com/frankieeedeee/event-summary-demo/internal/attendee"
	"github.com/shopspring/decimal"
)

// rec builds a valid attendee record with the fields the aggregator cares
// about. Earnings is derived from paid so fee-sum checks have a second
// non-zero metric to verify.
func rec(ticketType, gateway, channel string, paid float64, status attendee.Status) attendee.Record {
	return attendee.Record{
		EventName:    "Summer Gala",
		TicketType:   ticketType,
		Paid:         decimal.NewFromFloat(paid),
		Status:       status,
		Gateway:      gateway,
		SalesChannel: channel,
		Fees: attendee.FeeTotals{
			BookingFees: decimal.NewFromFloat(paid / 10),
			Earnings:    decimal.NewFromFloat(paid * 0.9),
		},
	}
}

func TestGenerate_Empty(t *testing.T) {
	t.Parallel()

	data := Generate(nil, nil)
	if data.EventName != "" {
		t.Fatalf("event name: want empty, got %q", data.EventName)
	}
	if len(data.TicketTypeRows) != 0 || len(data.GatewayRows) != 0 || len(data.SalesChannelRows) != 0 {
		t.Fatalf("expected all views empty, got %d/%d/%d",
			len(data.TicketTypeRows), len(data.GatewayRows), len(data.SalesChannelRows))
	}
}

func TestGenerate_ZeroFilledBreakdowns(t *testing.T) {
	t.Parallel()

	valid := []attendee.Record{
		rec("GA", "Stripe", "", 100, attendee.StatusValid),
		rec("GA", "PayPal", "", 50, attendee.StatusValid),
	}
	cancelled := []attendee.Record{
		rec("VIP", "Stripe", "", 200, attendee.StatusCancelled),
	}

	data := Generate(valid, cancelled)

	if data.EventName != "Summer Gala" {
		t.Fatalf("event name: want Summer Gala, got %q", data.EventName)
	}
	if len(data.TicketTypeRows) != 2 {
		t.Fatalf("ticket type rows: want 2, got %d", len(data.TicketTypeRows))
	}

	ga := data.TicketTypeRows[0]
	if ga.Key != "GA" || !ga.TotalPaid.Equal(decimal.NewFromInt(150)) || ga.ValidCount != 2 || ga.CancelledCount != 0 {
		t.Fatalf("unexpected GA row: %+v", ga.Bucket)
	}
	vip := data.TicketTypeRows[1]
	if vip.Key != "VIP" || !vip.TotalPaid.Equal(decimal.NewFromInt(200)) || vip.ValidCount != 0 || vip.CancelledCount != 1 {
		t.Fatalf("unexpected VIP row: %+v", vip.Bucket)
	}

	// Both rows carry the full gateway key set, sorted, zero-filled where the
	// combination never occurred.
	wantKeys := []string{"PayPal", "Stripe"}
	for _, row := range data.TicketTypeRows {
		if len(row.GatewayBreakdown) != len(wantKeys) {
			t.Fatalf("row %s: gateway breakdown length %d, want %d", row.Key, len(row.GatewayBreakdown), len(wantKeys))
		}
		for i, b := range row.GatewayBreakdown {
			if b.Key != wantKeys[i] {
				t.Fatalf("row %s: breakdown key[%d] = %q, want %q", row.Key, i, b.Key, wantKeys[i])
			}
		}
	}
	if !vip.GatewayBreakdown[0].TotalPaid.IsZero() {
		t.Fatalf("VIP/PayPal should be zero-filled, got %s", vip.GatewayBreakdown[0].TotalPaid)
	}
	if !vip.GatewayBreakdown[1].TotalPaid.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("VIP/Stripe total paid: want 200, got %s", vip.GatewayBreakdown[1].TotalPaid)
	}

	// No record carried a sales channel, so that view and every sales-channel
	// breakdown must be absent, not empty.
	if len(data.SalesChannelRows) != 0 {
		t.Fatalf("sales channel rows: want none, got %d", len(data.SalesChannelRows))
	}
	if ga.SalesChannelBreakdown != nil {
		t.Fatalf("expected nil sales channel breakdown, got %v", ga.SalesChannelBreakdown)
	}
}

func TestGenerate_SumAndCountConservation(t *testing.T) {
	t.Parallel()

	valid := []attendee.Record{
		rec("GA", "Stripe", "Online", 100, attendee.StatusValid),
		rec("GA", "", "Box Office", 50, attendee.StatusValid),
		rec("VIP", "PayPal", "", 75.25, attendee.StatusValid),
	}
	cancelled := []attendee.Record{
		rec("VIP", "Stripe", "Online", 200, attendee.StatusCancelled),
		rec("Early Bird", "", "", 10.50, attendee.StatusCancelled),
	}

	data := Generate(valid, cancelled)

	var paid, bookingFees decimal.Decimal
	validCount, cancelledCount := 0, 0
	for _, row := range data.TicketTypeRows {
		paid = paid.Add(row.TotalPaid)
		bookingFees = bookingFees.Add(row.Fees.BookingFees)
		validCount += row.ValidCount
		cancelledCount += row.CancelledCount
	}

	wantPaid := decimal.NewFromFloat(435.75)
	if !paid.Equal(wantPaid) {
		t.Fatalf("total paid across rows: want %s, got %s", wantPaid, paid)
	}
	wantFees := decimal.NewFromFloat(43.575)
	if !bookingFees.Equal(wantFees) {
		t.Fatalf("booking fees across rows: want %s, got %s", wantFees, bookingFees)
	}
	if validCount != len(valid) || cancelledCount != len(cancelled) {
		t.Fatalf("counts: want %d/%d, got %d/%d", len(valid), len(cancelled), validCount, cancelledCount)
	}

	// Records without a gateway exist in the ticket-type view but not in the
	// gateway view, so the gateway view's counts are smaller.
	gatewayTotal := 0
	for _, row := range data.GatewayRows {
		gatewayTotal += row.ValidCount + row.CancelledCount
	}
	if gatewayTotal != 3 {
		t.Fatalf("gateway view records: want 3, got %d", gatewayTotal)
	}
}

func TestGenerate_DensityInvariant(t *testing.T) {
	t.Parallel()

	valid := []attendee.Record{
		rec("GA", "Stripe", "Online", 10, attendee.StatusValid),
		rec("VIP", "PayPal", "Box Office", 20, attendee.StatusValid),
		rec("Early Bird", "Invoice", "Partner", 30, attendee.StatusValid),
	}

	data := Generate(valid, nil)

	for _, primary := range []Dimension{DimensionTicketType, DimensionGateway, DimensionSalesChannel} {
		rows := data.View(primary)
		for _, breakdown := range []Dimension{DimensionTicketType, DimensionGateway, DimensionSalesChannel} {
			if breakdown == primary {
				continue
			}
			var wantKeys []string
			for _, b := range rows[0].Breakdown(breakdown) {
				wantKeys = append(wantKeys, b.Key)
			}
			for _, row := range rows[1:] {
				entries := row.Breakdown(breakdown)
				if len(entries) != len(wantKeys) {
					t.Fatalf("%s/%s: row %s breakdown length %d, want %d",
						primary, breakdown, row.Key, len(entries), len(wantKeys))
				}
				for i, b := range entries {
					if b.Key != wantKeys[i] {
						t.Fatalf("%s/%s: row %s key[%d] = %q, want %q",
							primary, breakdown, row.Key, i, b.Key, wantKeys[i])
					}
				}
			}
		}
	}
}

func TestGenerate_Commutativity(t *testing.T) {
	t.Parallel()

	valid := []attendee.Record{
		rec("GA", "Stripe", "Online", 12.34, attendee.StatusValid),
		rec("VIP", "PayPal", "Online", 56.78, attendee.StatusValid),
		rec("GA", "Stripe", "Box Office", 90.12, attendee.StatusValid),
		rec("VIP", "Stripe", "", 34.56, attendee.StatusValid),
	}
	cancelled := []attendee.Record{
		rec("GA", "PayPal", "Online", 11.11, attendee.StatusCancelled),
		rec("VIP", "", "Partner", 22.22, attendee.StatusCancelled),
	}

	want := Generate(valid, cancelled)

	rng := rand.New(rand.NewSource(1))
	shuffledValid := append([]attendee.Record(nil), valid...)
	shuffledCancelled := append([]attendee.Record(nil), cancelled...)
	rng.Shuffle(len(shuffledValid), func(i, j int) {
		shuffledValid[i], shuffledValid[j] = shuffledValid[j], shuffledValid[i]
	})
	rng.Shuffle(len(shuffledCancelled), func(i, j int) {
		shuffledCancelled[i], shuffledCancelled[j] = shuffledCancelled[j], shuffledCancelled[i]
	})

	got := Generate(shuffledValid, shuffledCancelled)

	for _, d := range []Dimension{DimensionTicketType, DimensionGateway, DimensionSalesChannel} {
		wantRows, gotRows := want.View(d), got.View(d)
		if len(wantRows) != len(gotRows) {
			t.Fatalf("%s: row count %d vs %d", d, len(wantRows), len(gotRows))
		}
		for i := range wantRows {
			if wantRows[i].Key != gotRows[i].Key ||
				!wantRows[i].TotalPaid.Equal(gotRows[i].TotalPaid) ||
				wantRows[i].ValidCount != gotRows[i].ValidCount ||
				wantRows[i].CancelledCount != gotRows[i].CancelledCount {
				t.Fatalf("%s: row %d differs after shuffle: %+v vs %+v",
					d, i, wantRows[i].Bucket, gotRows[i].Bucket)
			}
		}
	}
}

func TestGenerate_ReaggregationPreservesSums(t *testing.T) {
	t.Parallel()

	valid := []attendee.Record{
		rec("GA", "Stripe", "Online", 100, attendee.StatusValid),
		rec("GA", "PayPal", "", 50, attendee.StatusValid),
		rec("VIP", "Stripe", "Online", 200, attendee.StatusValid),
	}

	first := Generate(valid, nil)

	// Flatten the primary rows back into one synthetic record per bucket and
	// aggregate again: per-key sums must survive the round trip.
	var synthetic []attendee.Record
	for _, row := range first.TicketTypeRows {
		synthetic = append(synthetic, attendee.Record{
			EventName:  first.EventName,
			TicketType: row.Key,
			Paid:       row.TotalPaid,
			Status:     attendee.StatusValid,
			Fees:       row.Fees,
		})
	}

	second := Generate(synthetic, nil)
	if len(second.TicketTypeRows) != len(first.TicketTypeRows) {
		t.Fatalf("row count changed: %d vs %d", len(second.TicketTypeRows), len(first.TicketTypeRows))
	}
	for i := range first.TicketTypeRows {
		w, g := first.TicketTypeRows[i], second.TicketTypeRows[i]
		if w.Key != g.Key || !w.TotalPaid.Equal(g.TotalPaid) || !w.Fees.Earnings.Equal(g.Fees.Earnings) {
			t.Fatalf("row %d sums changed: %+v vs %+v", i, w.Bucket, g.Bucket)
		}
	}
}

func TestGenerate_EventNamePolicy(t *testing.T) {
	t.Parallel()

	cancelledOnly := rec("GA", "", "", 10, attendee.StatusCancelled)
	cancelledOnly.EventName = "Fallback Night"

	if got := Generate(nil, []attendee.Record{cancelledOnly}).EventName; got != "Fallback Night" {
		t.Fatalf("cancelled-only event name: want Fallback Night, got %q", got)
	}

	valid := rec("GA", "", "", 10, attendee.StatusValid)
	if got := Generate([]attendee.Record{valid}, []attendee.Record{cancelledOnly}).EventName; got != "Summer Gala" {
		t.Fatalf("event name: want Summer Gala, got %q", got)
	}
}

func TestGenerate_RowsSortedByKey(t *testing.T) {
	t.Parallel()

	valid := []attendee.Record{
		rec("zeta", "", "", 1, attendee.StatusValid),
		rec("alpha", "", "", 1, attendee.StatusValid),
		rec("Beta", "", "", 1, attendee.StatusValid),
	}

	data := Generate(valid, nil)
	want := []string{"alpha", "Beta", "zeta"}
	if len(data.TicketTypeRows) != len(want) {
		t.Fatalf("row count: want %d, got %d", len(want), len(data.TicketTypeRows))
	}
	for i, row := range data.TicketTypeRows {
		if row.Key != want[i] {
			t.Fatalf("row[%d]: want %q, got %q", i, want[i], row.Key)
		}
	}
}
