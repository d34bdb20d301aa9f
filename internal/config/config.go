// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - New() builds a Config carrying defaults; Load layers file and env on top.
// - External errors are wrapped with this package's sentinel kinds.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8090".
	Addr string `koanf:"addr"`

	// DataFile is the JSON backing file holding the snapshot history.
	DataFile string `koanf:"data_file"`

	// StrictImport rejects imported payloads that fail the snapshot
	// schema (category set, rating bounds). Lax mode trusts any
	// parseable payload verbatim.
	StrictImport bool `koanf:"strict_import"`

	// MaxHistoryLimit caps the number of entries returned by history
	// listings. Zero means unlimited.
	MaxHistoryLimit int `koanf:"max_history_limit"`

	// ReadTimeoutSec / WriteTimeoutSec bound HTTP request handling.
	ReadTimeoutSec  int `koanf:"read_timeout_sec"`
	WriteTimeoutSec int `koanf:"write_timeout_sec"`
}

// New returns a Config with defaults. The backing file name matches
// the export download name so a downloaded backup drops back in place.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":8090",
		DataFile:        "balance_wheel_history.json",
		StrictImport:    true,
		MaxHistoryLimit: 0,
		ReadTimeoutSec:  10,
		WriteTimeoutSec: 10,
	}
}
