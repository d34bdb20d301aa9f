// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// WheelHandler serves the chart projection of a snapshot.
type WheelHandler struct {
	deps Dependencies
}

// NewWheelHandler creates a new wheel handler.
func NewWheelHandler(deps Dependencies) *WheelHandler {
	return &WheelHandler{deps: deps}
}

// HandleGetWheel handles GET /api/wheel?ts=... requests. With no ts it
// projects the latest snapshot (or the defaults when history is empty).
func (h *WheelHandler) HandleGetWheel(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_wheel"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	ts := r.URL.Query().Get("ts")
	chart, err := h.deps.Wheel(r.Context(), ts)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, chart)
}
