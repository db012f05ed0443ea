package charge_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supersharkz/chargeboard/charge"
)

// Fixed clock so the future-date rule is deterministic.
var testNow = time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

func newTestValidator() *charge.Validator {
	return &charge.Validator{Now: func() time.Time { return testNow }}
}

func f(v float64) *float64 { return &v }

func validCandidate() charge.Candidate {
	return charge.Candidate{
		StudentID:    "stu_101",
		ChargeAmount: f(120),
		PaidAmount:   f(0),
		DateCharged:  "2025-01-05",
	}
}

func TestValidate_ValidCandidatePasses(t *testing.T) {
	v := newTestValidator()

	result := v.Validate(validCandidate())

	require.True(t, result.OK())
	assert.Empty(t, result.Messages())
	assert.Equal(t, "stu_101", result.Payload.StudentID)
	assert.Equal(t, 120.0, result.Payload.ChargeAmount)
}

func TestValidate_StudentIDRequired(t *testing.T) {
	// GIVEN: An otherwise valid payload with an empty student_id
	// THEN: Exactly one error, on student_id

	v := newTestValidator()
	c := validCandidate()
	c.StudentID = "   "

	result := v.Validate(c)

	require.False(t, result.OK())
	assert.Len(t, result.Errors, 1)
	assert.Equal(t, charge.CodeRequired, result.Errors["student_id"].Code)
	assert.Equal(t, "Student ID is required", result.Errors["student_id"].Message)
}

func TestValidate_StudentIDTrimmed(t *testing.T) {
	v := newTestValidator()
	c := validCandidate()
	c.StudentID = "  stu_101  "

	result := v.Validate(c)

	require.True(t, result.OK())
	assert.Equal(t, "stu_101", result.Payload.StudentID)
}

func TestValidate_ChargeAmountRules(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name    string
		amount  *float64
		code    charge.ErrorCode
		message string
	}{
		{"missing", nil, charge.CodeType, "Charge amount must be a valid number"},
		{"zero", f(0), charge.CodeRange, "Charge amount must be greater than 0"},
		{"negative", f(-10), charge.CodeRange, "Charge amount must be greater than 0"},
		{"sub-cent precision", f(10.005), charge.CodePrecision, "Maximum two decimal places allowed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCandidate()
			c.ChargeAmount = tt.amount

			result := v.Validate(c)

			require.False(t, result.OK())
			fe := result.Errors["charge_amount"]
			require.NotNil(t, fe)
			assert.Equal(t, tt.code, fe.Code)
			assert.Equal(t, tt.message, fe.Message)
		})
	}
}

func TestValidate_NonFiniteAmountsAreTypeErrors(t *testing.T) {
	// GIVEN: Amounts that parse as floats but are not numbers (NaN, +/-Inf)
	// THEN: Both fields fail the type rule, same as non-numeric input

	v := newTestValidator()

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		c := validCandidate()
		c.ChargeAmount = f(bad)
		c.PaidAmount = f(bad)

		result := v.Validate(c)

		require.False(t, result.OK())
		require.NotNil(t, result.Errors["charge_amount"])
		assert.Equal(t, charge.CodeType, result.Errors["charge_amount"].Code)
		assert.Equal(t, "Charge amount must be a valid number", result.Errors["charge_amount"].Message)
		require.NotNil(t, result.Errors["paid_amount"])
		assert.Equal(t, charge.CodeType, result.Errors["paid_amount"].Code)
	}
}

func TestValidate_PaidAmountRules(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name   string
		amount *float64
		code   charge.ErrorCode
	}{
		{"missing", nil, charge.CodeType},
		{"negative", f(-1), charge.CodeRange},
		{"sub-cent precision", f(5.001), charge.CodePrecision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCandidate()
			c.PaidAmount = tt.amount

			result := v.Validate(c)

			require.False(t, result.OK())
			require.NotNil(t, result.Errors["paid_amount"])
			assert.Equal(t, tt.code, result.Errors["paid_amount"].Code)
		})
	}

	// Zero is allowed.
	c := validCandidate()
	c.PaidAmount = f(0)
	assert.True(t, v.Validate(c).OK())
}

func TestValidate_DateRules(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name    string
		date    string
		code    charge.ErrorCode
		message string
	}{
		{"empty", "", charge.CodeRequired, "Date is required"},
		{"garbage", "not-a-date", charge.CodeFormat, "Invalid date format"},
		{"wrong layout", "15/06/2025", charge.CodeFormat, "Invalid date format"},
		{"tomorrow", "2025-06-16", charge.CodeRange, "Date cannot be in the future"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCandidate()
			c.DateCharged = tt.date

			result := v.Validate(c)

			require.False(t, result.OK())
			fe := result.Errors["date_charged"]
			require.NotNil(t, fe)
			assert.Equal(t, tt.code, fe.Code)
			assert.Equal(t, tt.message, fe.Message)
		})
	}
}

func TestValidate_TodayIsNotFuture(t *testing.T) {
	// The boundary is end of the current day, inclusive.
	v := newTestValidator()
	c := validCandidate()
	c.DateCharged = "2025-06-15"

	assert.True(t, v.Validate(c).OK())
}

func TestValidate_PaidCannotExceedCharge(t *testing.T) {
	// GIVEN: Both amounts individually valid but paid > charge
	// THEN: The constraint error lands on paid_amount

	v := newTestValidator()
	c := validCandidate()
	c.ChargeAmount = f(10)
	c.PaidAmount = f(20)

	result := v.Validate(c)

	require.False(t, result.OK())
	assert.Len(t, result.Errors, 1)
	fe := result.Errors["paid_amount"]
	require.NotNil(t, fe)
	assert.Equal(t, charge.CodeConstraint, fe.Code)
	assert.Equal(t, "Paid amount cannot exceed charge amount", fe.Message)
}

func TestValidate_CrossFieldWaitsForFieldRules(t *testing.T) {
	// The cross-field rule only runs once per-field rules pass, so a
	// negative charge amount reports a range error, not the constraint.
	v := newTestValidator()
	c := validCandidate()
	c.ChargeAmount = f(-5)
	c.PaidAmount = f(20)

	result := v.Validate(c)

	require.False(t, result.OK())
	assert.Equal(t, charge.CodeRange, result.Errors["charge_amount"].Code)
	assert.NotContains(t, result.Errors, "paid_amount")
}

func TestValidate_FirstErrorPerFieldWins(t *testing.T) {
	// Every field broken at once: one error each, no overwrites.
	v := newTestValidator()

	result := v.Validate(charge.Candidate{})

	require.False(t, result.OK())
	assert.Len(t, result.Errors, 4)
	assert.Equal(t, charge.CodeRequired, result.Errors["student_id"].Code)
	assert.Equal(t, charge.CodeType, result.Errors["charge_amount"].Code)
	assert.Equal(t, charge.CodeType, result.Errors["paid_amount"].Code)
	assert.Equal(t, charge.CodeRequired, result.Errors["date_charged"].Code)
}

func TestValidate_ErrorsUnwrapToValidationFamily(t *testing.T) {
	v := newTestValidator()
	c := validCandidate()
	c.StudentID = ""

	result := v.Validate(c)

	require.False(t, result.OK())
	assert.True(t, charge.IsValidation(result.Errors["student_id"]))
}
