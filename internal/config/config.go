// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - Load(ctx) layers defaults, an optional YAML file, and env vars.
// - External errors are wrapped via this package's sentinel errors.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DBPath locates the SQLite database file.
	DBPath string `koanf:"db_path"`

	// DropWindow is the default lookahead width k for drop scoring.
	DropWindow int `koanf:"drop_window"`

	// PickRetries bounds retry attempts when a pick assignment loses a
	// race and conflicts.
	PickRetries int `koanf:"pick_retries"`

	// MaxImportBytes caps the size of an uploaded player CSV.
	MaxImportBytes int64 `koanf:"max_import_bytes"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":9090",
		DBPath:         "draftboard.db",
		DropWindow:     6,
		PickRetries:    3,
		MaxImportBytes: 5 << 20, // 5 MiB
	}
}
