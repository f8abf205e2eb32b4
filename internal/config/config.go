// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load() layers an optional YAML file and UOM_-prefixed env vars on top.
// - External errors are wrapped via this package's sentinel kinds.
package config

import "runtime"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DBPath locates the sqlite database holding legacy test results.
	DBPath string `koanf:"db_path"`

	// MigrateWorkers sets the number of goroutines migrating a batch.
	MigrateWorkers int `koanf:"migrate_workers"`

	// Precision is the default display precision for formatted values.
	Precision int `koanf:"precision"`

	// Preferences maps unit families to preferred display units,
	// e.g. {"mass": "lb", "length": "in"}. Families not listed keep the
	// metric defaults.
	Preferences map[string]string `koanf:"preferences"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":9080",
		DBPath:         "uom.db",
		MigrateWorkers: runtime.NumCPU(),
		Precision:      2,
		Preferences:    map[string]string{},
	}
}
