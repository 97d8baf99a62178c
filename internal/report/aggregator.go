// =============================================================================
// Event Ticket Sales Summary - Report Aggregator
// =============================================================================
//
// This module turns the flat valid/cancelled attendee lists into the three
// cross-tabulated report views with dense breakdowns.
//
// AGGREGATION PIPELINE:
//   1. Scan every record once, upserting a bucket per dimension value in each
//      of the three primary groupings. A record missing a gateway or sales
//      channel still counts toward the ticket-type view but is absent from
//      the views (and breakdowns) of the dimension it lacks.
//   2. In the same scan, upsert a nested bucket for every ordered dimension
//      pair present on the record (outer value -> inner value).
//   3. Collect the globally observed key set per dimension and sort it with
//      the configured collator.
//   4. Densify: every primary row gets one breakdown bucket per global key of
//      the breakdown dimension, zero-filled where the pair never co-occurred.
//      This keeps breakdown arrays positionally comparable across rows (the
//      density invariant). A dimension nobody supplied yields nil breakdowns.
//
// The dimension key sets must be complete before any breakdown row can be
// emitted, so the whole scan runs to completion before densification starts.
// Aggregation is associative and commutative per field; input order never
// changes the result.
//
// =============================================================================

package report

import (
	"sort"

	"github.com/frankieeedeee/event-summary-demo/internal/attendee"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// =============================================================================
// AGGREGATOR
// =============================================================================

// Aggregator builds report data from attendee records. It carries only the
// collator used for key ordering and is safe to reuse across calls.
type Aggregator struct {
	coll *collate.Collator
}

// NewAggregator returns an aggregator whose dimension keys sort according to
// the given locale.
func NewAggregator(tag language.Tag) *Aggregator {
	return &Aggregator{coll: collate.New(tag)}
}

// Generate aggregates with English collation. Convenience for callers that
// do not carry a locale.
func Generate(valid, cancelled []attendee.Record) *Data {
	return NewAggregator(language.English).Generate(valid, cancelled)
}

// dimensionPair identifies one ordered pair of pivot dimensions for the
// nested (breakdown) accumulation.
type dimensionPair struct {
	outer Dimension
	inner Dimension
}

// Generate builds the full report: three primary views plus, for every
// ordered dimension pair, the dense nested breakdowns. The function is total:
// any input produces a report, and empty inputs produce an empty one. The
// caller keeps ownership of both slices; they are only read.
func (a *Aggregator) Generate(valid, cancelled []attendee.Record) *Data {
	primary := make(map[Dimension]map[string]*Bucket, len(pivotDimensions))
	nested := make(map[dimensionPair]map[string]map[string]*Bucket)
	for _, d := range pivotDimensions {
		primary[d] = make(map[string]*Bucket)
		for _, inner := range pivotDimensions {
			if inner != d {
				nested[dimensionPair{d, inner}] = make(map[string]map[string]*Bucket)
			}
		}
	}

	accumulate := func(records []attendee.Record) {
		for i := range records {
			r := &records[i]
			for _, d := range pivotDimensions {
				v := d.value(r)
				if v == "" {
					continue
				}
				upsert(primary[d], v).add(r)
			}
			for _, outer := range pivotDimensions {
				ov := outer.value(r)
				if ov == "" {
					continue
				}
				for _, inner := range pivotDimensions {
					if inner == outer {
						continue
					}
					iv := inner.value(r)
					if iv == "" {
						continue
					}
					byOuter := nested[dimensionPair{outer, inner}]
					byInner := byOuter[ov]
					if byInner == nil {
						byInner = make(map[string]*Bucket)
						byOuter[ov] = byInner
					}
					upsert(byInner, iv).add(r)
				}
			}
		}
	}
	accumulate(valid)
	accumulate(cancelled)

	// Global sorted key set per dimension. These drive both the primary row
	// order and the densified breakdown order.
	keys := make(map[Dimension][]string, len(pivotDimensions))
	for _, d := range pivotDimensions {
		keys[d] = a.sortedKeys(primary[d])
	}

	data := &Data{EventName: eventName(valid, cancelled)}
	for _, p := range pivotDimensions {
		rows := make([]Row, 0, len(keys[p]))
		for _, key := range keys[p] {
			row := Row{Bucket: *primary[p][key]}
			for _, b := range pivotDimensions {
				if b == p || len(keys[b]) == 0 {
					continue
				}
				row.setBreakdown(b, densify(nested[dimensionPair{p, b}][key], keys[b]))
			}
			rows = append(rows, row)
		}
		data.setView(p, rows)
	}
	return data
}

// =============================================================================
// HELPERS
// =============================================================================

// upsert returns the bucket for key, creating it on first sight. Each bucket
// is owned by exactly one map slot and never aliased elsewhere.
func upsert(m map[string]*Bucket, key string) *Bucket {
	b := m[key]
	if b == nil {
		b = &Bucket{Key: key}
		m[key] = b
	}
	return b
}

// densify emits one bucket per global key, taking the accumulated bucket
// where the pair co-occurred and a zeroed bucket otherwise. Iterating the
// global key set rather than the map's own keys is what makes every row's
// breakdown identical in length and ordering.
func densify(byInner map[string]*Bucket, globalKeys []string) []Bucket {
	dense := make([]Bucket, len(globalKeys))
	for i, key := range globalKeys {
		if b := byInner[key]; b != nil {
			dense[i] = *b
		} else {
			dense[i] = Bucket{Key: key}
		}
	}
	return dense
}

// sortedKeys returns the map's keys sorted ascending with the collator.
func (a *Aggregator) sortedKeys(m map[string]*Bucket) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		return a.coll.CompareString(out[i], out[j]) < 0
	})
	return out
}

// eventName picks the report's event name: first valid record, else first
// cancelled record, else empty. The dataset is assumed single-event, so
// divergent event names across rows are not checked.
func eventName(valid, cancelled []attendee.Record) string {
	if len(valid) > 0 {
		return valid[0].EventName
	}
	if len(cancelled) > 0 {
		return cancelled[0].EventName
	}
	return ""
}
