// Package app provides the core service that implements the dependencies
// required by the HTTP API: conversion, classification, preference-aware
// formatting, and batch migration.
package app

import (
	"context"
	"errors"

	"github.com/okian/uom/internal/domain/classify"
	"github.com/okian/uom/internal/domain/model"
	"github.com/okian/uom/internal/domain/prefs"
	"github.com/okian/uom/internal/domain/unit"
	"github.com/okian/uom/internal/migrate"
	"github.com/okian/uom/pkg/logger"
	"github.com/okian/uom/pkg/metrics"
)

// FormattedValue is a display-ready rendering of a base value: the string a
// UI shows, the unit it was rendered in, and the preference version it was
// rendered under. Consumers cache the string and recompute when the version
// moves.
type FormattedValue struct {
	Display           string      `json:"display"`
	Unit              unit.Unit   `json:"unit"`
	Family            unit.Family `json:"family"`
	PreferenceVersion uint64      `json:"preference_version"`
}

// Service implements the API dependencies for the unit normalization system.
type Service struct {
	prefs     *prefs.Preferences
	precision int
	migrator  *migrate.Migrator
	logger    logger.Logger
}

// New creates a Service with configuration options.
func New(opts ...Option) *Service {
	s := &Service{
		prefs:     prefs.Default(),
		precision: unit.DefaultPrecision,
		logger:    logger.Get().Named("app"),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.migrator == nil {
		s.migrator = migrate.New(migrate.WithLogger(s.logger.Named("migrate")))
	}

	return s
}

// Convert moves a value between two registered units of the same family.
func (s *Service) Convert(ctx context.Context, value float64, from, to unit.Unit) (float64, error) {
	out, err := unit.Convert(value, from, to)
	if err != nil {
		metrics.RecordConversionError(errorReason(err))
		return 0, err
	}
	metrics.RecordConversion("convert")
	return out, nil
}

// ToBase converts a display-unit value to its family's base unit.
func (s *Service) ToBase(ctx context.Context, value float64, u unit.Unit) (float64, error) {
	out, err := unit.ToBase(value, u)
	if err != nil {
		metrics.RecordConversionError(errorReason(err))
		return 0, err
	}
	metrics.RecordConversion("to_base")
	return out, nil
}

// FromBase converts a base-unit value to the given display unit.
func (s *Service) FromBase(ctx context.Context, base float64, u unit.Unit) (float64, error) {
	out, err := unit.FromBase(base, u)
	if err != nil {
		metrics.RecordConversionError(errorReason(err))
		return 0, err
	}
	metrics.RecordConversion("from_base")
	return out, nil
}

// Classify maps a metric key to its unit family.
func (s *Service) Classify(ctx context.Context, metricKey string) unit.Family {
	return classify.Classify(metricKey)
}

// Format renders a base value for a metric key in the user's preferred unit.
// A nil base value renders the placeholder glyph with the unit that would
// have been used.
func (s *Service) Format(ctx context.Context, metricKey string, base *float64, precision int) (FormattedValue, error) {
	family := classify.Classify(metricKey)
	display, err := s.prefs.DisplayUnit(family)
	if err != nil {
		return FormattedValue{}, err
	}
	if precision < 0 {
		precision = s.precision
	}
	return FormattedValue{
		Display:           unit.SafeFormat(base, display, precision),
		Unit:              display,
		Family:            family,
		PreferenceVersion: s.prefs.Version(),
	}, nil
}

// ResolveFromUnitRef resolves the display unit for a legacy payload carrying
// an explicit unit descriptor.
func (s *Service) ResolveFromUnitRef(ctx context.Context, rawUnit string, ref prefs.UnitRef) (unit.Unit, error) {
	return prefs.ResolveFromUnitRef(rawUnit, ref, s.prefs)
}

// Preferences returns a snapshot of the active display preferences and the
// version it was taken at.
func (s *Service) Preferences(ctx context.Context) (map[unit.Family]unit.Unit, uint64) {
	return s.prefs.Snapshot()
}

// SetPreference updates a family's display unit and returns the new version.
func (s *Service) SetPreference(ctx context.Context, f unit.Family, u unit.Unit) (uint64, error) {
	if err := s.prefs.Set(f, u); err != nil {
		return 0, err
	}
	version := s.prefs.Version()
	s.logger.Info(ctx, "display preference updated",
		logger.String("family", string(f)),
		logger.String("unit", string(u)),
		logger.Any("version", version))
	return version, nil
}

// MigrateBatch migrates legacy records and validates the result.
func (s *Service) MigrateBatch(ctx context.Context, records []model.TestResult) ([]model.MigratedResult, migrate.Report) {
	migrated := s.migrator.Batch(ctx, records)
	return migrated, migrate.Validate(records, migrated)
}

// errorReason maps conversion errors to a metrics label.
func errorReason(err error) string {
	switch {
	case errors.Is(err, unit.ErrIncompatibleUnits):
		return "incompatible_units"
	case errors.Is(err, unit.ErrUnknownUnit):
		return "unknown_unit"
	default:
		return "other"
	}
}
