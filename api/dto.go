/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication, decoupling the domain
  model from the external contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

VALIDATION:
  DTOs are pure data carriers; validation happens in the handlers via the
  charge validator.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import "github.com/supersharkz/chargeboard/charge"

// ChargeDTO represents a charge in API responses. Outstanding is derived
// at serialization time, never stored.
type ChargeDTO struct {
	ChargeID           string  `json:"charge_id"`
	StudentID          string  `json:"student_id"`
	ChargeAmount       float64 `json:"charge_amount"`
	PaidAmount         float64 `json:"paid_amount"`
	DateCharged        string  `json:"date_charged"`
	Outstanding        float64 `json:"outstanding"`
	OutstandingDisplay string  `json:"outstanding_display"`
	FullyPaid          bool    `json:"fully_paid"`
}

func toChargeDTO(c charge.Charge) ChargeDTO {
	out := c.Outstanding()
	return ChargeDTO{
		ChargeID:           c.ChargeID,
		StudentID:          c.StudentID,
		ChargeAmount:       c.ChargeAmount,
		PaidAmount:         c.PaidAmount,
		DateCharged:        c.DateCharged,
		Outstanding:        out,
		OutstandingDisplay: charge.FormatAmount(out),
		FullyPaid:          c.FullyPaid(),
	}
}

// ChargeRequest is the body for create and update. Amounts are pointers so
// a missing field is distinguishable from zero and reported as a type
// error by validation.
type ChargeRequest struct {
	StudentID    string   `json:"student_id"`
	ChargeAmount *float64 `json:"charge_amount"`
	PaidAmount   *float64 `json:"paid_amount"`
	DateCharged  string   `json:"date_charged"`
}

func (r ChargeRequest) candidate() charge.Candidate {
	return charge.Candidate{
		StudentID:    r.StudentID,
		ChargeAmount: r.ChargeAmount,
		PaidAmount:   r.PaidAmount,
		DateCharged:  r.DateCharged,
	}
}

// ListResponse is the table view: the filtered/sorted rows plus the
// "N of M charges" footer counts.
type ListResponse struct {
	Charges []ChargeDTO `json:"charges"`
	Shown   int         `json:"shown"`
	Total   int         `json:"total"`
}

// SummaryResponse carries the three totals with display strings, computed
// over the unfiltered collection.
type SummaryResponse struct {
	TotalCharged            float64 `json:"total_charged"`
	TotalPaid               float64 `json:"total_paid"`
	TotalOutstanding        float64 `json:"total_outstanding"`
	TotalChargedDisplay     string  `json:"total_charged_display"`
	TotalPaidDisplay        string  `json:"total_paid_display"`
	TotalOutstandingDisplay string  `json:"total_outstanding_display"`
}

func toSummaryResponse(s charge.Summary) SummaryResponse {
	return SummaryResponse{
		TotalCharged:            s.TotalCharged,
		TotalPaid:               s.TotalPaid,
		TotalOutstanding:        s.TotalOutstanding,
		TotalChargedDisplay:     charge.FormatAmount(s.TotalCharged),
		TotalPaidDisplay:        charge.FormatAmount(s.TotalPaid),
		TotalOutstandingDisplay: charge.FormatAmount(s.TotalOutstanding),
	}
}

// MutationResponse wraps a successful create/update/delete with the
// notification message the UI shows.
type MutationResponse struct {
	Charge  *ChargeDTO `json:"charge,omitempty"`
	Message string     `json:"message"`
}

// ErrorResponse is the JSON error envelope. Fields is present only for
// validation failures: field name -> first error message.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
