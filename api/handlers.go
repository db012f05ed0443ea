/*
handlers.go - HTTP handlers for the charge management API

PURPOSE:
  Exposes the charge system over REST. Handlers parse the request, run
  validation, delegate to the session (which keeps its cache in sync with
  the store), and serialize the response.

ENDPOINTS:
  GET    /api/charges          List charges (q, sort, dir query params)
  GET    /api/charges/summary  Totals over the full collection
  POST   /api/charges          Create a charge
  PUT    /api/charges/{id}     Update a charge
  DELETE /api/charges/{id}     Delete a charge

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, malformed body or query
  - 404: Charge not found
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/supersharkz/chargeboard/charge"
	"github.com/supersharkz/chargeboard/session"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Session   *session.Session
	Validator *charge.Validator
}

// NewHandler creates a handler over the given session.
func NewHandler(sess *session.Session) *Handler {
	return &Handler{
		Session:   sess,
		Validator: charge.NewValidator(),
	}
}

// =============================================================================
// LIST / SUMMARY
// =============================================================================

// ListCharges returns the filtered, sorted table view.
func (h *Handler) ListCharges(w http.ResponseWriter, r *http.Request) {
	if msg := h.Session.Err(); msg != "" {
		writeError(w, http.StatusInternalServerError, msg, nil)
		return
	}

	query := r.URL.Query().Get("q")
	config, err := sortConfigFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	all := h.Session.Charges()
	view := charge.View(all, query, config)

	dtos := make([]ChargeDTO, len(view))
	for i, c := range view {
		dtos[i] = toChargeDTO(c)
	}
	writeJSON(w, http.StatusOK, ListResponse{
		Charges: dtos,
		Shown:   len(view),
		Total:   len(all),
	})
}

// GetSummary returns totals over the unfiltered collection.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	if msg := h.Session.Err(); msg != "" {
		writeError(w, http.StatusInternalServerError, msg, nil)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryResponse(charge.Summarize(h.Session.Charges())))
}

func sortConfigFromQuery(r *http.Request) (*charge.SortConfig, error) {
	field := charge.SortField(r.URL.Query().Get("sort"))
	if field == "" {
		return nil, nil
	}
	if !charge.ValidSortField(field) {
		return nil, fmt.Errorf("unknown sort field %q", field)
	}
	dir := charge.Direction(r.URL.Query().Get("dir"))
	switch dir {
	case "":
		dir = charge.Asc
	case charge.Asc, charge.Desc:
	default:
		return nil, fmt.Errorf("invalid sort direction %q", dir)
	}
	return &charge.SortConfig{Field: field, Direction: dir}, nil
}

// =============================================================================
// MUTATIONS
// =============================================================================

// CreateCharge validates the payload and creates a charge.
func (h *Handler) CreateCharge(w http.ResponseWriter, r *http.Request) {
	var req ChargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result := h.Validator.Validate(req.candidate())
	if !result.OK() {
		writeValidationError(w, result)
		return
	}

	created, err := h.Session.Add(r.Context(), result.Input())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to add charge", err)
		return
	}

	dto := toChargeDTO(created)
	writeJSON(w, http.StatusCreated, MutationResponse{
		Charge:  &dto,
		Message: fmt.Sprintf("Charge %s added successfully", created.ChargeID),
	})
}

// UpdateCharge validates the payload and replaces the mutable fields of an
// existing charge. The charge_id never changes.
func (h *Handler) UpdateCharge(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ChargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result := h.Validator.Validate(req.candidate())
	if !result.OK() {
		writeValidationError(w, result)
		return
	}

	input := result.Input()
	updated, err := h.Session.Update(r.Context(), id, charge.UpdateInput{
		StudentID:    &input.StudentID,
		ChargeAmount: &input.ChargeAmount,
		PaidAmount:   &input.PaidAmount,
		DateCharged:  &input.DateCharged,
	})
	if err != nil {
		if charge.IsNotFound(err) {
			writeError(w, http.StatusNotFound, err.Error(), nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update charge", err)
		return
	}

	dto := toChargeDTO(updated)
	writeJSON(w, http.StatusOK, MutationResponse{
		Charge:  &dto,
		Message: fmt.Sprintf("Charge %s updated successfully", id),
	})
}

// DeleteCharge removes a charge. Hard removal, no undo.
func (h *Handler) DeleteCharge(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Session.Remove(r.Context(), id); err != nil {
		if charge.IsNotFound(err) {
			writeError(w, http.StatusNotFound, err.Error(), nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete charge", err)
		return
	}

	writeJSON(w, http.StatusOK, MutationResponse{
		Message: fmt.Sprintf("Charge %s deleted", id),
	})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		log.Printf("%s: %v", message, err)
	}
	writeJSON(w, status, ErrorResponse{Error: message})
}

func writeValidationError(w http.ResponseWriter, result charge.Result) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:  "Validation failed",
		Fields: result.Messages(),
	})
}
