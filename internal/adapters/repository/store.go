// Package repository persists balance wheel history to a single JSON
// file, the sole source of truth between sessions.
package repository

import (
	"context"

	"balancewheel/internal/domain/wheel"
)

// Store provides read/write access to the snapshot history. Every
// operation is a whole-file read-modify-write; reads reload from disk
// so concurrent edits to the file by the same process are never stale.
type Store interface {
	// Load returns the full history. An absent or unparseable backing
	// file yields an empty history, never an error.
	Load(ctx context.Context) (*wheel.History, error)

	// Get returns the snapshot saved under ts.
	// Returns ErrNotFound for unknown timestamps.
	Get(ctx context.Context, ts string) (wheel.Snapshot, error)

	// Latest returns the most recently inserted snapshot and its key,
	// or defaults (rating 5, empty note) with an empty key when the
	// history is empty.
	Latest(ctx context.Context) (string, wheel.Snapshot, error)

	// Save keys snap by the current wall-clock timestamp and rewrites
	// the backing file. A second save within the same second overwrites
	// the first. Returns the timestamp used as the key.
	Save(ctx context.Context, snap wheel.Snapshot) (string, error)

	// Delete removes one snapshot and rewrites the backing file.
	// Returns ErrNotFound for unknown timestamps.
	Delete(ctx context.Context, ts string) error

	// ResetAll clears the history and removes the backing file.
	// A missing file is tolerated.
	ResetAll(ctx context.Context) error

	// Export serializes the full history as pretty-printed JSON.
	Export(ctx context.Context) ([]byte, error)

	// Import replaces the history with the parsed payload. Returns the
	// number of snapshots imported. Fails with ErrBadPayload on JSON
	// parse errors and, in strict mode, ErrValidation on schema
	// violations; the store is left untouched on failure.
	Import(ctx context.Context, payload []byte) (int, error)

	// Count returns the number of snapshots on disk.
	Count(ctx context.Context) int
}
