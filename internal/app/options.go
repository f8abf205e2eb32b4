package app

import (
	"github.com/okian/uom/internal/domain/prefs"
	"github.com/okian/uom/internal/migrate"
	"github.com/okian/uom/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithPreferences sets the active display preferences.
func WithPreferences(p *prefs.Preferences) Option {
	return func(s *Service) {
		if p != nil {
			s.prefs = p
		}
	}
}

// WithPrecision sets the default display precision.
func WithPrecision(precision int) Option {
	return func(s *Service) {
		if precision >= 0 {
			s.precision = precision
		}
	}
}

// WithMigrator sets a custom migrator.
func WithMigrator(m *migrate.Migrator) Option {
	return func(s *Service) {
		if m != nil {
			s.migrator = m
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
