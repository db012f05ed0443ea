/*
view.go - Table view engine: filter, sort, summary

PURPOSE:
  Derives the displayed view of a charge collection. Every function here is
  pure: the output depends only on the collection, the query and the sort
  config, never on cached intermediate state. Callers recompute on every
  dependency change.

FILTERING:
  Case-insensitive substring match against charge_id, student_id,
  date_charged and the literal decimal string forms of the two amounts.
  Empty query passes everything.

SORTING:
  Stable sort on a chosen field (including the derived outstanding value),
  ascending or descending. Cycle implements the header-click behavior:
  same field cycles asc -> desc -> unsorted, a different field resets to
  ascending.

SUMMARY:
  Totals are computed over the UNFILTERED collection - the summary reflects
  the whole book regardless of the active search.
*/
package charge

import (
	"sort"
	"strconv"
	"strings"
)

// =============================================================================
// FILTER
// =============================================================================

// Filter returns the charges matching the query. Matching is a
// case-insensitive substring test against every displayed field; amounts
// are matched against their shortest decimal string form ("80.5", "120").
func Filter(charges []Charge, query string) []Charge {
	if query == "" {
		return charges
	}
	q := strings.ToLower(query)
	var out []Charge
	for _, c := range charges {
		if strings.Contains(strings.ToLower(c.ChargeID), q) ||
			strings.Contains(strings.ToLower(c.StudentID), q) ||
			strings.Contains(c.DateCharged, q) ||
			strings.Contains(amountString(c.ChargeAmount), q) ||
			strings.Contains(amountString(c.PaidAmount), q) {
			out = append(out, c)
		}
	}
	return out
}

func amountString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// =============================================================================
// SORT
// =============================================================================

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortConfig names the active sort. A nil *SortConfig means unsorted
// (original collection order).
type SortConfig struct {
	Field     SortField
	Direction Direction
}

// Cycle returns the sort config after a header click on field: clicking the
// active field advances asc -> desc -> unsorted; clicking a different field
// starts ascending on it.
func Cycle(current *SortConfig, field SortField) *SortConfig {
	if current != nil && current.Field == field {
		if current.Direction == Asc {
			return &SortConfig{Field: field, Direction: Desc}
		}
		return nil
	}
	return &SortConfig{Field: field, Direction: Asc}
}

// Sort returns a stably sorted copy of the charges. A nil config returns
// the input unchanged; equal keys keep their relative order in both
// directions.
func Sort(charges []Charge, config *SortConfig) []Charge {
	if config == nil {
		return charges
	}
	sorted := make([]Charge, len(charges))
	copy(sorted, charges)
	less := lessFunc(config.Field)
	sort.SliceStable(sorted, func(i, j int) bool {
		if config.Direction == Desc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}

func lessFunc(field SortField) func(a, b Charge) bool {
	switch field {
	case FieldChargeAmount:
		return func(a, b Charge) bool { return a.ChargeAmount < b.ChargeAmount }
	case FieldPaidAmount:
		return func(a, b Charge) bool { return a.PaidAmount < b.PaidAmount }
	case FieldOutstanding:
		return func(a, b Charge) bool { return a.Outstanding() < b.Outstanding() }
	case FieldStudentID:
		return func(a, b Charge) bool { return a.StudentID < b.StudentID }
	case FieldDateCharged:
		return func(a, b Charge) bool { return a.DateCharged < b.DateCharged }
	default:
		return func(a, b Charge) bool { return a.ChargeID < b.ChargeID }
	}
}

// View applies filter then sort in one call.
func View(charges []Charge, query string, config *SortConfig) []Charge {
	return Sort(Filter(charges, query), config)
}

// =============================================================================
// SUMMARY
// =============================================================================

// Summary holds the aggregate totals shown above the table.
type Summary struct {
	TotalCharged     float64 `json:"total_charged"`
	TotalPaid        float64 `json:"total_paid"`
	TotalOutstanding float64 `json:"total_outstanding"`
}

// Summarize computes totals over the full (unfiltered) collection. The
// outstanding total is the sum of the per-row derived values, so it agrees
// with what the rows display.
func Summarize(charges []Charge) Summary {
	var s Summary
	for _, c := range charges {
		s.TotalCharged += c.ChargeAmount
		s.TotalPaid += c.PaidAmount
		s.TotalOutstanding += c.Outstanding()
	}
	s.TotalCharged = Round2(s.TotalCharged)
	s.TotalPaid = Round2(s.TotalPaid)
	s.TotalOutstanding = Round2(s.TotalOutstanding)
	return s
}
