package logger

import "io"

type settings struct {
	out  io.Writer
	json bool
}

// Option configures Init.
type Option func(*settings)

// WithJSON switches output to the JSON handler.
func WithJSON() Option {
	return func(s *settings) { s.json = true }
}

// WithOutput redirects log output, mainly for tests.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.out = w
		}
	}
}
