// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"

	"balancewheel/internal/domain/wheel"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// saveRequest carries the parallel per-category inputs of a save.
type saveRequest struct {
	Ratings map[wheel.Category]int    `json:"ratings" validate:"required,len=6,dive,min=0,max=10"`
	Notes   map[wheel.Category]string `json:"notes"`
}

// HistoryHandler serves the history collection: list and save.
type HistoryHandler struct {
	deps Dependencies
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(deps Dependencies) *HistoryHandler {
	return &HistoryHandler{deps: deps}
}

// HandleHistory handles GET and POST /api/history requests.
func (h *HistoryHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleSave(w, r)
	default:
		http.NotFound(w, r)
	}
}

// handleList returns all saved entries, newest first.
func (h *HistoryHandler) handleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_history"
	entries, err := h.deps.History(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// handleSave persists a new snapshot built from the request body.
func (h *HistoryHandler) handleSave(w http.ResponseWriter, r *http.Request) {
	const op = "api.save_snapshot"
	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	ts, err := h.deps.Save(r.Context(), req.Ratings, req.Notes)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	writeJSON(w, http.StatusCreated, changeResponse{Changed: true, Timestamp: ts})
}
