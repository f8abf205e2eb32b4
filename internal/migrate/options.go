package migrate

import "github.com/okian/uom/pkg/logger"

// Option applies a configuration option to the Migrator.
type Option func(*Migrator)

// WithWorkers sets the number of goroutines migrating a batch.
func WithWorkers(n int) Option {
	return func(m *Migrator) {
		if n > 0 {
			m.workers = n
		}
	}
}

// WithLogger sets a custom logger for the migrator.
func WithLogger(l logger.Logger) Option {
	return func(m *Migrator) {
		if l != nil {
			m.logger = l
		}
	}
}
