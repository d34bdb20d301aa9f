// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"balancewheel/internal/adapters/repository"
	"balancewheel/internal/domain/wheel"
	"balancewheel/pkg/logger"
	"balancewheel/pkg/metrics"
)

const defaultDataFile = "balance_wheel_history.json"

// Service implements the API dependencies for the balance wheel.
// Mutating operations return explicit change signals; there is no
// process-wide refresh flag.
type Service struct {
	mu sync.RWMutex

	store repository.Store

	// Configuration
	dataFile     string
	strictImport bool
	historyLimit int
	clock        func() time.Time

	// State
	started  bool
	lastSave string

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDataFile sets the JSON backing file path.
func WithDataFile(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.dataFile = path
		}
	}
}

// WithStrictImport toggles schema validation of imported histories.
func WithStrictImport(strict bool) Option {
	return func(s *Service) {
		s.strictImport = strict
	}
}

// WithHistoryLimit caps the number of entries history listings return.
// Zero means unlimited.
func WithHistoryLimit(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.historyLimit = n
		}
	}
}

// WithClock overrides the wall clock used for snapshot keys.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.clock = now
		}
	}
}

// WithStore injects a prebuilt store, mainly for tests.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		dataFile:     defaultDataFile,
		strictImport: true,
		clock:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the backing store.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.store == nil {
		s.store = repository.NewFileStore(s.dataFile,
			repository.WithClock(s.clock),
			repository.WithStrictImport(s.strictImport),
		)
	}
	s.started = true
	s.logger.Info(ctx, "balance wheel service started",
		logger.String("data_file", s.dataFile),
		logger.Bool("strict_import", s.strictImport),
		logger.Int("snapshots", s.store.Count(ctx)),
	)
	return nil
}

// Stop shuts the service down. The store holds no open resources, so
// this only flips state.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "balance wheel service stopped")
}

// History returns all saved entries, newest first.
func (s *Service) History(ctx context.Context) ([]wheel.Entry, error) {
	start := time.Now()
	h, err := s.store.Load(ctx)
	if err != nil {
		metrics.RecordStoreError()
		return nil, err
	}
	metrics.RecordStoreOpDuration("load", float64(time.Since(start).Milliseconds()))
	metrics.UpdateHistorySize(h.Len())
	entries := h.Entries(true)
	if s.historyLimit > 0 && len(entries) > s.historyLimit {
		entries = entries[:s.historyLimit]
	}
	return entries, nil
}

// Latest returns the most recently saved entry, or the default
// snapshot with an empty timestamp when nothing has been saved.
func (s *Service) Latest(ctx context.Context) (wheel.Entry, error) {
	ts, snap, err := s.store.Latest(ctx)
	if err != nil {
		metrics.RecordStoreError()
		return wheel.Entry{}, err
	}
	return wheel.Entry{Timestamp: ts, Snapshot: snap}, nil
}

// Snapshot returns the entry saved under ts.
func (s *Service) Snapshot(ctx context.Context, ts string) (wheel.Snapshot, error) {
	snap, err := s.store.Get(ctx, ts)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			metrics.RecordStoreError()
		}
		return nil, err
	}
	return snap, nil
}

// Save builds a snapshot from parallel rating/note inputs and persists
// it under the current timestamp. Returns the key used.
func (s *Service) Save(ctx context.Context, ratings map[wheel.Category]int, notes map[wheel.Category]string) (string, error) {
	snap, err := wheel.BuildSnapshot(ratings, notes)
	if err != nil {
		return "", err
	}
	start := time.Now()
	ts, err := s.store.Save(ctx, snap)
	if err != nil {
		metrics.RecordStoreError()
		return "", err
	}
	metrics.RecordStoreOpDuration("save", float64(time.Since(start).Milliseconds()))
	metrics.RecordSnapshotSaved()
	s.noteSaved(ts)
	s.refreshGauges(ctx)
	s.logger.Info(ctx, "snapshot saved", logger.String("timestamp", ts))
	return ts, nil
}

// Delete removes one snapshot.
func (s *Service) Delete(ctx context.Context, ts string) error {
	start := time.Now()
	if err := s.store.Delete(ctx, ts); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			metrics.RecordStoreError()
		}
		return err
	}
	metrics.RecordStoreOpDuration("delete", float64(time.Since(start).Milliseconds()))
	metrics.RecordSnapshotDeleted()
	s.refreshGauges(ctx)
	s.logger.Info(ctx, "snapshot deleted", logger.String("timestamp", ts))
	return nil
}

// ResetAll clears the history and removes the backing file.
func (s *Service) ResetAll(ctx context.Context) error {
	if err := s.store.ResetAll(ctx); err != nil {
		metrics.RecordStoreError()
		return err
	}
	metrics.RecordHistoryReset()
	s.refreshGauges(ctx)
	s.logger.Info(ctx, "history reset")
	return nil
}

// Export serializes the full history for download.
func (s *Service) Export(ctx context.Context) ([]byte, error) {
	data, err := s.store.Export(ctx)
	if err != nil {
		metrics.RecordStoreError()
		return nil, err
	}
	metrics.RecordHistoryExported()
	return data, nil
}

// Import replaces the history with the parsed payload, returning the
// number of snapshots imported.
func (s *Service) Import(ctx context.Context, payload []byte) (int, error) {
	n, err := s.store.Import(ctx, payload)
	if err != nil {
		if errors.Is(err, repository.ErrBadPayload) || errors.Is(err, repository.ErrValidation) {
			metrics.RecordImportRejected()
		} else {
			metrics.RecordStoreError()
		}
		return 0, err
	}
	metrics.RecordHistoryImported()
	s.refreshGauges(ctx)
	s.logger.Info(ctx, "history imported", logger.Int("snapshots", n))
	return n, nil
}

// Wheel projects the snapshot under ts (or the latest when ts is
// empty) into chart form with the highlight colors applied.
func (s *Service) Wheel(ctx context.Context, ts string) (wheel.ChartData, error) {
	if ts == "" {
		entry, err := s.Latest(ctx)
		if err != nil {
			return wheel.ChartData{}, err
		}
		return wheel.NewChartData(entry.Timestamp, entry.Snapshot), nil
	}
	snap, err := s.Snapshot(ctx, ts)
	if err != nil {
		return wheel.ChartData{}, err
	}
	return wheel.NewChartData(ts, snap), nil
}

// GetStats returns service statistics for the /stats endpoint and the
// background metrics updater.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	lastSave := s.lastSave
	started := s.started
	s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":      started,
		"dataFile":     s.dataFile,
		"strictImport": s.strictImport,
		"lastSave":     lastSave,
	}
	if s.store != nil {
		stats["snapshotCount"] = s.store.Count(context.Background())
	}
	if info, err := os.Stat(s.dataFile); err == nil {
		stats["dataFileBytes"] = info.Size()
	} else {
		stats["dataFileBytes"] = int64(0)
	}
	return stats
}

func (s *Service) noteSaved(ts string) {
	s.mu.Lock()
	s.lastSave = ts
	s.mu.Unlock()
}

// refreshGauges pushes current history size and file size to metrics
// after every mutation.
func (s *Service) refreshGauges(ctx context.Context) {
	metrics.UpdateHistorySize(s.store.Count(ctx))
	if info, err := os.Stat(s.dataFile); err == nil {
		metrics.UpdateBackingFileBytes(info.Size())
	} else {
		metrics.UpdateBackingFileBytes(0)
	}
}
