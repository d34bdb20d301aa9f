package repository

import "time"

// Option applies a configuration option to the FileStore.
type Option func(*FileStore)

// WithClock overrides the wall clock used to key new snapshots.
// Tests use this to force same-second key collisions.
func WithClock(now func() time.Time) Option {
	return func(s *FileStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithStrictImport toggles schema validation of imported payloads.
// Strict mode rejects unknown category sets and out-of-range ratings;
// lax mode trusts the payload verbatim.
func WithStrictImport(strict bool) Option {
	return func(s *FileStore) {
		s.strict = strict
	}
}

// WithFileMode sets the permission bits for the backing file.
func WithFileMode(mode uint32) Option {
	return func(s *FileStore) {
		if mode != 0 {
			s.fileMode = mode
		}
	}
}
