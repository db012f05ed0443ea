/*
errors.go - Centralized error types for the charge domain

PURPOSE:
  All error types in one place for consistency and discoverability.
  Outer layers (store, service, api) wrap or translate these, never
  invent their own.

ERROR CATEGORIES:
  1. Validation errors - Field-scoped rule violations, recoverable,
     surfaced inline next to the offending input
  2. Not-found errors  - Mutating a charge that does not exist
  3. Generator errors  - Programming-contract violations (fatal)

USAGE:
  if errors.Is(err, charge.ErrNotFound) {
      // 404
  }
*/
package charge

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrNotFound is returned when an update or delete names a charge_id
	// that is not in the collection.
	ErrNotFound = errors.New("charge not found")

	// ErrGeneratorUninitialized is returned when Next is called on a
	// Generator before Init. This is a programming-contract violation,
	// not a user-recoverable condition.
	ErrGeneratorUninitialized = errors.New("id generator used before init")

	// ErrValidation is the root of the validation error family. Every
	// FieldError unwraps to it.
	ErrValidation = errors.New("validation failed")
)

// =============================================================================
// VALIDATION ERROR FAMILY - Field-scoped, recoverable
// =============================================================================

// ErrorCode classifies which rule a field failed.
type ErrorCode string

const (
	CodeRequired   ErrorCode = "required"   // empty after trim
	CodeType       ErrorCode = "type"       // not numeric
	CodeRange      ErrorCode = "range"      // outside allowed bounds
	CodePrecision  ErrorCode = "precision"  // more than 2 fractional digits
	CodeFormat     ErrorCode = "format"     // unparseable date
	CodeConstraint ErrorCode = "constraint" // cross-field rule violated
)

// FieldError is a single validation failure attached to one input field.
type FieldError struct {
	Field   string
	Code    ErrorCode
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error { return ErrValidation }

// =============================================================================
// NOT FOUND - Carries the offending ID
// =============================================================================

// NotFoundError reports a mutation against a missing charge_id.
type NotFoundError struct {
	ChargeID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("charge %s not found", e.ChargeID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsNotFound reports whether err indicates a missing charge.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsValidation reports whether err belongs to the validation family.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
