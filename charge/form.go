/*
form.go - Form controller for the add/edit charge dialogs

PURPOSE:
  Tracks raw string field values exactly as the user typed them (partial
  numeric entry like "12." survives a re-render), runs validation at the
  right moments, and converts validated input into the canonical payload.

VALIDATION TIMING:
  Before the first submit attempt errors are suppressed - typing into a
  fresh form never shows noise. After the first submit, every field change
  revalidates so errors clear as the user fixes them.

SUBMIT:
  Re-validates fully; aborts without calling the handler if any field
  fails; otherwise coerces (trim strings, round amounts to cent precision)
  and invokes the handler. A second Submit while one is in flight is a
  no-op, guarding against double-clicks.

OWNERSHIP:
  A Form belongs to a single goroutine (one open dialog); it carries no
  lock of its own.
*/
package charge

import (
	"strconv"
	"strings"
)

// Field names, matching the wire and error-map keys.
const (
	FormStudentID    = "student_id"
	FormChargeAmount = "charge_amount"
	FormPaidAmount   = "paid_amount"
	FormDateCharged  = "date_charged"
)

// Form manages per-field input state for the add/edit charge dialog.
type Form struct {
	validator *Validator

	fields     map[string]string
	errors     map[string]*FieldError
	submitted  bool
	submitting bool
}

// NewForm returns an empty form for creating a charge. Paid amount
// defaults to "0" so a fresh charge starts unpaid.
func NewForm(v *Validator) *Form {
	if v == nil {
		v = NewValidator()
	}
	return &Form{
		validator: v,
		fields: map[string]string{
			FormStudentID:    "",
			FormChargeAmount: "",
			FormPaidAmount:   "0",
			FormDateCharged:  "",
		},
		errors: map[string]*FieldError{},
	}
}

// NewEditForm returns a form pre-filled from an existing charge.
func NewEditForm(v *Validator, c Charge) *Form {
	f := NewForm(v)
	f.fields[FormStudentID] = c.StudentID
	f.fields[FormChargeAmount] = amountString(c.ChargeAmount)
	f.fields[FormPaidAmount] = amountString(c.PaidAmount)
	f.fields[FormDateCharged] = c.DateCharged
	return f
}

// Field returns the raw string value of a field.
func (f *Form) Field(name string) string { return f.fields[name] }

// FieldError returns the current error message for a field, or "" if the
// field has no visible error.
func (f *Form) FieldError(name string) string {
	if fe, ok := f.errors[name]; ok {
		return fe.Message
	}
	return ""
}

// Errors returns the current field -> message error map.
func (f *Form) Errors() map[string]string {
	if len(f.errors) == 0 {
		return nil
	}
	out := make(map[string]string, len(f.errors))
	for name, fe := range f.errors {
		out[name] = fe.Message
	}
	return out
}

// SetField records a keystroke. Validation only runs once the user has
// attempted a submit; before that, errors stay suppressed.
func (f *Form) SetField(name, value string) {
	f.fields[name] = value
	if f.submitted {
		f.validate()
	}
}

// Submit re-validates and, if everything passes, coerces the raw input and
// invokes handler with the canonical payload. Returns the handler's error.
// If validation fails the handler is not called and ErrValidation is
// returned; inspect Errors for the per-field messages.
func (f *Form) Submit(handler func(CreateInput) error) error {
	f.submitted = true

	if result := f.validate(); !result.OK() {
		return ErrValidation
	}
	if f.submitting {
		return nil // already in flight; swallow the duplicate
	}

	f.submitting = true
	defer func() { f.submitting = false }()

	return handler(CreateInput{
		StudentID:    strings.TrimSpace(f.fields[FormStudentID]),
		ChargeAmount: roundedNumber(f.fields[FormChargeAmount]),
		PaidAmount:   roundedNumber(f.fields[FormPaidAmount]),
		DateCharged:  f.fields[FormDateCharged],
	})
}

func (f *Form) validate() Result {
	result := f.validator.Validate(Candidate{
		StudentID:    f.fields[FormStudentID],
		ChargeAmount: parseNumber(f.fields[FormChargeAmount]),
		PaidAmount:   parseNumber(f.fields[FormPaidAmount]),
		DateCharged:  f.fields[FormDateCharged],
	})
	if result.OK() {
		f.errors = map[string]*FieldError{}
	} else {
		f.errors = result.Errors
	}
	return result
}

// parseNumber converts a raw numeric field to a value, or nil when the
// input is empty or not a number (which validation reports as a type
// error).
func parseNumber(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// roundedNumber coerces an already-validated numeric field to cent
// precision.
func roundedNumber(raw string) float64 {
	v := parseNumber(raw)
	if v == nil {
		return 0
	}
	return Round2(*v)
}
