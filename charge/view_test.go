package charge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supersharkz/chargeboard/charge"
)

func sampleCharges() []charge.Charge {
	return []charge.Charge{
		{ChargeID: "chg_001", StudentID: "stu_101", ChargeAmount: 120.00, PaidAmount: 0.00, DateCharged: "2025-01-05"},
		{ChargeID: "chg_002", StudentID: "stu_102", ChargeAmount: 80.50, PaidAmount: 80.50, DateCharged: "2025-01-07"},
		{ChargeID: "chg_003", StudentID: "stu_101", ChargeAmount: 150.00, PaidAmount: 50.00, DateCharged: "2025-01-12"},
		{ChargeID: "chg_004", StudentID: "stu_103", ChargeAmount: 95.00, PaidAmount: 0.00, DateCharged: "2025-01-15"},
		{ChargeID: "chg_005", StudentID: "stu_104", ChargeAmount: 200.00, PaidAmount: 200.00, DateCharged: "2025-01-20"},
	}
}

// =============================================================================
// FILTER
// =============================================================================

func TestFilter_EmptyQueryPassesEverything(t *testing.T) {
	charges := sampleCharges()
	assert.Len(t, charge.Filter(charges, ""), len(charges))
}

func TestFilter_ByStudentID(t *testing.T) {
	filtered := charge.Filter(sampleCharges(), "stu_101")

	require.Len(t, filtered, 2)
	assert.Equal(t, "chg_001", filtered[0].ChargeID)
	assert.Equal(t, "chg_003", filtered[1].ChargeID)
}

func TestFilter_CaseInsensitive(t *testing.T) {
	filtered := charge.Filter(sampleCharges(), "STU_103")

	require.Len(t, filtered, 1)
	assert.Equal(t, "chg_004", filtered[0].ChargeID)
}

func TestFilter_ByAmountStringForm(t *testing.T) {
	// Amounts match their shortest decimal form: 80.50 renders as "80.5".
	filtered := charge.Filter(sampleCharges(), "80.5")
	require.Len(t, filtered, 1)
	assert.Equal(t, "chg_002", filtered[0].ChargeID)

	// "95" matches charge_amount of chg_004.
	filtered = charge.Filter(sampleCharges(), "95")
	require.Len(t, filtered, 1)
	assert.Equal(t, "chg_004", filtered[0].ChargeID)
}

func TestFilter_ByDateSubstring(t *testing.T) {
	// Matches 2025-01-12 and 2025-01-15.
	filtered := charge.Filter(sampleCharges(), "2025-01-1")

	require.Len(t, filtered, 2)
}

func TestFilter_NoMatchesYieldsEmpty(t *testing.T) {
	assert.Empty(t, charge.Filter(sampleCharges(), "zzz"))
}

// =============================================================================
// SORT
// =============================================================================

func TestSort_NilConfigKeepsOriginalOrder(t *testing.T) {
	charges := sampleCharges()
	sorted := charge.Sort(charges, nil)

	assert.Equal(t, charges, sorted)
}

func TestSort_ByOutstandingDescending(t *testing.T) {
	// Outstanding per row: 120, 0, 100, 95, 0. Most owed first.
	sorted := charge.Sort(sampleCharges(), &charge.SortConfig{
		Field:     charge.FieldOutstanding,
		Direction: charge.Desc,
	})

	ids := make([]string, len(sorted))
	for i, c := range sorted {
		ids[i] = c.ChargeID
	}
	assert.Equal(t, []string{"chg_001", "chg_003", "chg_004", "chg_002", "chg_005"}, ids)
}

func TestSort_ByStudentIDAscendingIsStable(t *testing.T) {
	// chg_001 and chg_003 share stu_101; stable sort keeps their original
	// relative order.
	sorted := charge.Sort(sampleCharges(), &charge.SortConfig{
		Field:     charge.FieldStudentID,
		Direction: charge.Asc,
	})

	assert.Equal(t, "chg_001", sorted[0].ChargeID)
	assert.Equal(t, "chg_003", sorted[1].ChargeID)
}

func TestSort_StableInBothDirections(t *testing.T) {
	// Two fully paid charges tie on outstanding; descending must not flip
	// their relative order.
	sorted := charge.Sort(sampleCharges(), &charge.SortConfig{
		Field:     charge.FieldOutstanding,
		Direction: charge.Desc,
	})

	require.Len(t, sorted, 5)
	assert.Equal(t, "chg_002", sorted[3].ChargeID)
	assert.Equal(t, "chg_005", sorted[4].ChargeID)
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	charges := sampleCharges()
	charge.Sort(charges, &charge.SortConfig{Field: charge.FieldChargeAmount, Direction: charge.Desc})

	assert.Equal(t, sampleCharges(), charges)
}

func TestCycle_SameFieldAscDescUnsorted(t *testing.T) {
	// Clicking the same column three times returns to unsorted.
	first := charge.Cycle(nil, charge.FieldDateCharged)
	require.NotNil(t, first)
	assert.Equal(t, charge.Asc, first.Direction)

	second := charge.Cycle(first, charge.FieldDateCharged)
	require.NotNil(t, second)
	assert.Equal(t, charge.Desc, second.Direction)

	third := charge.Cycle(second, charge.FieldDateCharged)
	assert.Nil(t, third)
}

func TestCycle_DifferentFieldResetsToAscending(t *testing.T) {
	current := &charge.SortConfig{Field: charge.FieldChargeAmount, Direction: charge.Desc}

	next := charge.Cycle(current, charge.FieldStudentID)

	require.NotNil(t, next)
	assert.Equal(t, charge.FieldStudentID, next.Field)
	assert.Equal(t, charge.Asc, next.Direction)
}

// =============================================================================
// SUMMARY
// =============================================================================

func TestSummarize(t *testing.T) {
	s := charge.Summarize(sampleCharges())

	assert.Equal(t, 645.5, s.TotalCharged)
	assert.Equal(t, 330.5, s.TotalPaid)
	assert.Equal(t, 315.0, s.TotalOutstanding)
}

func TestSummarize_IgnoresActiveFilter(t *testing.T) {
	// The summary reflects the whole book: callers pass the unfiltered
	// collection even while a search is active.
	all := sampleCharges()
	filtered := charge.Filter(all, "stu_101")

	require.Less(t, len(filtered), len(all))
	assert.NotEqual(t, charge.Summarize(filtered), charge.Summarize(all))
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, charge.Summary{}, charge.Summarize(nil))
}
