/*
Package charge provides the core domain logic for swim-school billing charges.

PURPOSE:
  This package contains everything the rest of the system needs to reason
  about a charge record without touching storage or HTTP: the entity types,
  currency math, ID generation, validation rules, the table view engine
  (filter/sort/summary), and the form controller.

KEY CONCEPTS IN THIS FILE (types.go):
  - Charge: The sole entity - a billable record for one student
  - CreateInput: A validated payload for creating a charge (no ID yet)
  - UpdateInput: A partial payload for mutating an existing charge
  - SortField: Table columns a view can be ordered by

DESIGN PRINCIPLES:
  1. IDs are immutable: charge_id is assigned once by the Generator and
     never changes or gets reused, even after deletion
  2. Precision: monetary values carry at most two fractional digits;
     rounding goes through decimal math, never repeated float arithmetic
  3. Derived values are never stored: outstanding balance is computed at
     read time from charge_amount and paid_amount

SEE ALSO:
  - currency.go: Rounding, outstanding balance, display formatting
  - validate.go: Field and cross-field validation rules
  - view.go: Filter, sort and summary over a collection
*/
package charge

// Charge is a billable record linking a student to an amount owed and an
// amount paid on a given date. Field names and JSON tags match the
// persisted snapshot layout: numeric fields are IEEE-754 doubles, dates
// are YYYY-MM-DD strings.
type Charge struct {
	ChargeID     string  `json:"charge_id"`
	StudentID    string  `json:"student_id"`
	ChargeAmount float64 `json:"charge_amount"`
	PaidAmount   float64 `json:"paid_amount"`
	DateCharged  string  `json:"date_charged"`
}

// Outstanding returns the unpaid balance for this charge, rounded to cent
// precision.
func (c Charge) Outstanding() float64 {
	return Outstanding(c.ChargeAmount, c.PaidAmount)
}

// FullyPaid reports whether nothing is owed on this charge.
func (c Charge) FullyPaid() bool {
	return c.Outstanding() == 0
}

// CreateInput is a fully validated payload for creating a charge. The store
// assigns the charge_id.
type CreateInput struct {
	StudentID    string  `json:"student_id"`
	ChargeAmount float64 `json:"charge_amount"`
	PaidAmount   float64 `json:"paid_amount"`
	DateCharged  string  `json:"date_charged"`
}

// UpdateInput is a partial payload for updating a charge. Nil fields are
// left untouched; charge_id can never be changed.
type UpdateInput struct {
	StudentID    *string  `json:"student_id,omitempty"`
	ChargeAmount *float64 `json:"charge_amount,omitempty"`
	PaidAmount   *float64 `json:"paid_amount,omitempty"`
	DateCharged  *string  `json:"date_charged,omitempty"`
}

// ApplyTo shallow-merges the non-nil fields of the input over an existing
// charge and returns the merged record. The ID is preserved.
func (in UpdateInput) ApplyTo(c Charge) Charge {
	if in.StudentID != nil {
		c.StudentID = *in.StudentID
	}
	if in.ChargeAmount != nil {
		c.ChargeAmount = *in.ChargeAmount
	}
	if in.PaidAmount != nil {
		c.PaidAmount = *in.PaidAmount
	}
	if in.DateCharged != nil {
		c.DateCharged = *in.DateCharged
	}
	return c
}

// SortField identifies a table column the view can be ordered by.
// FieldOutstanding is derived and never stored.
type SortField string

const (
	FieldChargeID     SortField = "charge_id"
	FieldStudentID    SortField = "student_id"
	FieldChargeAmount SortField = "charge_amount"
	FieldPaidAmount   SortField = "paid_amount"
	FieldDateCharged  SortField = "date_charged"
	FieldOutstanding  SortField = "outstanding"
)

// ValidSortField reports whether f names a sortable column.
func ValidSortField(f SortField) bool {
	switch f {
	case FieldChargeID, FieldStudentID, FieldChargeAmount,
		FieldPaidAmount, FieldDateCharged, FieldOutstanding:
		return true
	}
	return false
}
