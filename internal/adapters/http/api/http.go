// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"balancewheel/internal/domain/wheel"
)

// Dependencies required by HTTP handlers. Using an interface bundle
// keeps the handler layer loosely coupled to implementations in other
// packages.
type Dependencies interface {
	// Read operations.
	History(ctx context.Context) ([]Entry, error)
	Latest(ctx context.Context) (Entry, error)
	Snapshot(ctx context.Context, ts string) (wheel.Snapshot, error)
	Wheel(ctx context.Context, ts string) (wheel.ChartData, error)
	Export(ctx context.Context) ([]byte, error)

	// Mutations. Each reports success explicitly so the caller knows
	// the data changed and a re-render is due.
	Save(ctx context.Context, ratings map[wheel.Category]int, notes map[wheel.Category]string) (string, error)
	Delete(ctx context.Context, ts string) error
	ResetAll(ctx context.Context) error
	Import(ctx context.Context, payload []byte) (int, error)
}

// Entry mirrors the read shape returned by history queries.
type Entry = wheel.Entry

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	historyHandler  *HistoryHandler
	snapshotHandler *SnapshotHandler
	wheelHandler    *WheelHandler
	exportHandler   *ExportHandler
	importHandler   *ImportHandler
	resetHandler    *ResetHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		historyHandler:  NewHistoryHandler(deps),
		snapshotHandler: NewSnapshotHandler(deps),
		wheelHandler:    NewWheelHandler(deps),
		exportHandler:   NewExportHandler(deps),
		importHandler:   NewImportHandler(deps),
		resetHandler:    NewResetHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/history", RequestIDMiddleware(MetricsMiddleware(s.historyHandler.HandleHistory, "history")))
	mux.HandleFunc("/api/history/", RequestIDMiddleware(MetricsMiddleware(s.snapshotHandler.HandleSnapshot, "snapshot")))
	mux.HandleFunc("/api/wheel", RequestIDMiddleware(MetricsMiddleware(s.wheelHandler.HandleGetWheel, "wheel")))
	mux.HandleFunc("/api/export", RequestIDMiddleware(MetricsMiddleware(s.exportHandler.HandleExport, "export")))
	mux.HandleFunc("/api/import", RequestIDMiddleware(MetricsMiddleware(s.importHandler.HandleImport, "import")))
	mux.HandleFunc("/api/reset", RequestIDMiddleware(MetricsMiddleware(s.resetHandler.HandleReset, "reset")))
}

// changeResponse signals a completed mutation to the presentation
// layer, which re-fetches instead of relying on any global flag.
type changeResponse struct {
	Changed   bool   `json:"changed"`
	Timestamp string `json:"timestamp,omitempty"`
	Snapshots int    `json:"snapshots,omitempty"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound translates upstream not-found errors to 404. A string
// check keeps this layer decoupled from the store's sentinel errors.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "not found")
}
