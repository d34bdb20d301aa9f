package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"balancewheel/internal/domain/wheel"
)

const defaultFileMode = 0o644

// FileStore implements Store on top of one pretty-printed JSON file.
// A mutex serializes operations within the process; the file itself is
// not protected against other processes, matching the single-user
// assumption of the wheel.
type FileStore struct {
	mu       sync.Mutex
	path     string
	now      func() time.Time
	strict   bool
	fileMode uint32
}

// NewFileStore creates a store backed by the file at path. The file is
// not created until the first save.
func NewFileStore(path string, opts ...Option) *FileStore {
	s := &FileStore{
		path:     path,
		now:      time.Now,
		strict:   true,
		fileMode: defaultFileMode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file location.
func (s *FileStore) Path() string {
	return s.path
}

// load reads and parses the backing file. Absence and parse failures
// both yield an empty history; a half-written file after a crash is
// silently treated as no history at all.
func (s *FileStore) load() *wheel.History {
	h := wheel.NewHistory()
	data, err := os.ReadFile(s.path)
	if err != nil {
		return h
	}
	if err := json.Unmarshal(data, h); err != nil {
		return wheel.NewHistory()
	}
	return h
}

// write rewrites the whole backing file atomically: marshal to a temp
// file in the same directory, then rename over the target.
func (s *FileStore) write(h *wheel.History) error {
	data, err := json.MarshalIndent(h, "", "    ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".balance-wheel-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, fs.FileMode(s.fileMode)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace backing file: %w", err)
	}
	return nil
}

// Load implements Store.
func (s *FileStore) Load(_ context.Context) (*wheel.History, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(), nil
}

// Get implements Store.
func (s *FileStore) Get(_ context.Context, ts string) (wheel.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.load().Get(ts)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, ts)
	}
	return snap, nil
}

// Latest implements Store.
func (s *FileStore) Latest(_ context.Context) (string, wheel.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ts, snap, ok := s.load().Latest()
	if !ok {
		return "", wheel.DefaultSnapshot(), nil
	}
	return ts, snap, nil
}

// Save implements Store.
func (s *FileStore) Save(_ context.Context, snap wheel.Snapshot) (string, error) {
	if err := snap.Validate(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	h := s.load()
	ts := s.now().Format(wheel.TimestampLayout)
	h.Set(ts, snap)
	if err := s.write(h); err != nil {
		return "", err
	}
	return ts, nil
}

// Delete implements Store.
func (s *FileStore) Delete(_ context.Context, ts string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := s.load()
	if !h.Delete(ts) {
		return fmt.Errorf("%w: %s", ErrNotFound, ts)
	}
	return s.write(h)
}

// ResetAll implements Store.
func (s *FileStore) ResetAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove backing file: %w", err)
	}
	return nil
}

// Export implements Store.
func (s *FileStore) Export(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.MarshalIndent(s.load(), "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encode history: %w", err)
	}
	return data, nil
}

// Import implements Store.
func (s *FileStore) Import(_ context.Context, payload []byte) (int, error) {
	h := wheel.NewHistory()
	if err := json.Unmarshal(payload, h); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadPayload, err)
	}
	if s.strict {
		if err := h.Validate(); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.write(h); err != nil {
		return 0, err
	}
	return h.Len(), nil
}

// Count implements Store.
func (s *FileStore) Count(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().Len()
}
