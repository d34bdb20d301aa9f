// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"io"
	"net/http"
	"strings"
)

// ExportFilename is the download name offered for the history backup.
const ExportFilename = "balance_wheel_history.json"

// maxImportBytes bounds uploaded backups; histories are small.
const maxImportBytes = 8 << 20

// ExportHandler serves the full history as a downloadable JSON file.
type ExportHandler struct {
	deps Dependencies
}

// NewExportHandler creates a new export handler.
func NewExportHandler(deps Dependencies) *ExportHandler {
	return &ExportHandler{deps: deps}
}

// HandleExport handles GET /api/export requests.
func (h *ExportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	const op = "api.export_history"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	data, err := h.deps.Export(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+ExportFilename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// ImportHandler restores a history from an uploaded JSON backup.
type ImportHandler struct {
	deps Dependencies
}

// NewImportHandler creates a new import handler.
func NewImportHandler(deps Dependencies) *ImportHandler {
	return &ImportHandler{deps: deps}
}

// HandleImport handles POST /api/import requests. The body is the raw
// JSON backup. Parse failures are 400; schema rejections (strict mode)
// are 422 and leave the store untouched.
func (h *ImportHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	const op = "api.import_history"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	n, err := h.deps.Import(r.Context(), payload)
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "validation"):
			writeError(w, http.StatusUnprocessableEntity, "validation_failed", WrapKind(op, ErrValidation, err))
		case strings.Contains(err.Error(), "malformed"):
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		}
		return
	}
	writeJSON(w, http.StatusOK, changeResponse{Changed: true, Snapshots: n})
}

// ResetHandler clears all saved progress.
type ResetHandler struct {
	deps Dependencies
}

// NewResetHandler creates a new reset handler.
func NewResetHandler(deps Dependencies) *ResetHandler {
	return &ResetHandler{deps: deps}
}

// HandleReset handles POST /api/reset requests.
func (h *ResetHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	const op = "api.reset_history"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if err := h.deps.ResetAll(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, changeResponse{Changed: true})
}
