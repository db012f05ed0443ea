/*
validate.go - Declarative validation rules for a candidate charge

PURPOSE:
  Validates a candidate charge payload field by field, plus one cross-field
  rule. Deterministic and side-effect-free: the same candidate and clock
  always produce the same result.

RULES:
  student_id     required (after trim)
  charge_amount  numeric, > 0, at most 2 fractional digits
  paid_amount    numeric, >= 0, at most 2 fractional digits
  date_charged   required, parseable calendar date, not in the future
                 (end of current day inclusive - today is valid)
  cross-field    paid_amount <= charge_amount, reported on paid_amount

ERROR SHAPE:
  Per field, only the FIRST failing rule is reported; later rules on an
  already-failed field are suppressed. The cross-field rule only runs once
  every per-field rule has passed, so it can assume both amounts are valid.

SEE ALSO:
  - errors.go: FieldError and the error-code taxonomy
  - form.go: Converts raw string input into a Candidate
*/
package charge

import (
	"math"
	"strings"
	"time"
)

// DateLayout is the calendar-date wire format used everywhere: YYYY-MM-DD,
// no time component.
const DateLayout = "2006-01-02"

// Candidate is an unvalidated charge payload. Amounts are pointers so a
// missing or non-numeric input is distinguishable from zero.
type Candidate struct {
	StudentID    string
	ChargeAmount *float64
	PaidAmount   *float64
	DateCharged  string
}

// Result is the outcome of validating a Candidate. When OK, Payload holds
// the fully typed create input (student_id trimmed).
type Result struct {
	Payload Charge
	Errors  map[string]*FieldError
}

// OK reports whether every rule passed.
func (r Result) OK() bool { return len(r.Errors) == 0 }

// Messages flattens the errors to field name -> first error message.
func (r Result) Messages() map[string]string {
	if len(r.Errors) == 0 {
		return nil
	}
	out := make(map[string]string, len(r.Errors))
	for field, fe := range r.Errors {
		out[field] = fe.Message
	}
	return out
}

// Input returns the validated payload as a CreateInput.
func (r Result) Input() CreateInput {
	return CreateInput{
		StudentID:    r.Payload.StudentID,
		ChargeAmount: r.Payload.ChargeAmount,
		PaidAmount:   r.Payload.PaidAmount,
		DateCharged:  r.Payload.DateCharged,
	}
}

// Validator validates candidates against the charge rule set. The clock is
// injectable so the future-date rule is testable.
type Validator struct {
	Now func() time.Time
}

// NewValidator returns a validator on the real clock.
func NewValidator() *Validator {
	return &Validator{Now: time.Now}
}

// Validate applies every rule to the candidate.
func (v *Validator) Validate(c Candidate) Result {
	errs := make(map[string]*FieldError)
	fail := func(field string, code ErrorCode, msg string) {
		if _, exists := errs[field]; exists {
			return // first error per field wins
		}
		errs[field] = &FieldError{Field: field, Code: code, Message: msg}
	}

	// student_id
	studentID := strings.TrimSpace(c.StudentID)
	if studentID == "" {
		fail("student_id", CodeRequired, "Student ID is required")
	}

	// charge_amount. NaN and the infinities parse as floats but are not
	// valid amounts; they fail the type rule before anything touches
	// decimal math.
	switch {
	case c.ChargeAmount == nil || !isFinite(*c.ChargeAmount):
		fail("charge_amount", CodeType, "Charge amount must be a valid number")
	case *c.ChargeAmount <= 0:
		fail("charge_amount", CodeRange, "Charge amount must be greater than 0")
	case !HasCentPrecision(*c.ChargeAmount):
		fail("charge_amount", CodePrecision, "Maximum two decimal places allowed")
	}

	// paid_amount
	switch {
	case c.PaidAmount == nil || !isFinite(*c.PaidAmount):
		fail("paid_amount", CodeType, "Paid amount must be a valid number")
	case *c.PaidAmount < 0:
		fail("paid_amount", CodeRange, "Paid amount cannot be negative")
	case !HasCentPrecision(*c.PaidAmount):
		fail("paid_amount", CodePrecision, "Maximum two decimal places allowed")
	}

	// date_charged
	var date time.Time
	switch {
	case c.DateCharged == "":
		fail("date_charged", CodeRequired, "Date is required")
	default:
		var err error
		date, err = time.Parse(DateLayout, c.DateCharged)
		if err != nil {
			fail("date_charged", CodeFormat, "Invalid date format")
		} else if date.After(today(v.Now())) {
			fail("date_charged", CodeRange, "Date cannot be in the future")
		}
	}

	// Cross-field rule runs only once every per-field rule has passed.
	if len(errs) == 0 && *c.PaidAmount > *c.ChargeAmount {
		fail("paid_amount", CodeConstraint, "Paid amount cannot exceed charge amount")
	}

	if len(errs) > 0 {
		return Result{Errors: errs}
	}
	return Result{Payload: Charge{
		StudentID:    studentID,
		ChargeAmount: *c.ChargeAmount,
		PaidAmount:   *c.PaidAmount,
		DateCharged:  c.DateCharged,
	}}
}

// isFinite reports whether v is a usable amount. strconv.ParseFloat
// happily produces NaN and the infinities from typed input like "NaN";
// those must fail as type errors, not reach decimal math.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// today truncates the clock reading to its calendar day in UTC, matching
// the UTC midnight that time.Parse(DateLayout, ...) produces. The boundary
// is inclusive: a charge dated today is not in the future.
func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
