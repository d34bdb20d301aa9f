// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strings"
)

// SnapshotHandler serves single snapshots under /api/history/{ts},
// including the synthetic "latest" key.
type SnapshotHandler struct {
	deps Dependencies
}

// NewSnapshotHandler creates a new snapshot handler.
func NewSnapshotHandler(deps Dependencies) *SnapshotHandler {
	return &SnapshotHandler{deps: deps}
}

// HandleSnapshot handles GET and DELETE /api/history/{ts} requests.
// GET /api/history/latest returns the most recent snapshot, or the
// default one when nothing has been saved yet.
func (h *SnapshotHandler) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	const op = "api.snapshot"
	ts := strings.TrimPrefix(r.URL.Path, "/api/history/")
	if ts == "" || strings.Contains(ts, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	switch {
	case r.Method == http.MethodGet && ts == "latest":
		entry, err := h.deps.Latest(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
			return
		}
		writeJSON(w, http.StatusOK, entry)

	case r.Method == http.MethodGet:
		snap, err := h.deps.Snapshot(r.Context(), ts)
		if err != nil {
			if isNotFound(err) {
				writeError(w, http.StatusNotFound, "not_found", err)
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
			return
		}
		writeJSON(w, http.StatusOK, Entry{Timestamp: ts, Snapshot: snap})

	case r.Method == http.MethodDelete:
		if err := h.deps.Delete(r.Context(), ts); err != nil {
			if isNotFound(err) {
				writeError(w, http.StatusNotFound, "not_found", err)
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
			return
		}
		writeJSON(w, http.StatusOK, changeResponse{Changed: true, Timestamp: ts})

	default:
		http.NotFound(w, r)
	}
}
