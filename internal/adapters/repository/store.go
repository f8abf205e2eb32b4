// Package repository persists legacy test results and their migrated
// counterparts. The conversion core stays free of I/O; this adapter owns all
// database access for the offline migration job.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/spf13/cast"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/okian/uom/internal/domain/model"
	"github.com/okian/uom/pkg/logger"
)

// testResultRow mirrors the legacy test_results table. Legacy columns were
// written by several generations of clients, so value arrives as TEXT and
// may carry anything a float parser can chew on.
type testResultRow struct {
	ID    string         `gorm:"column:id;primaryKey"`
	Key   string         `gorm:"column:key"`
	Value string         `gorm:"column:value"`
	Units sql.NullString `gorm:"column:units"`
}

func (testResultRow) TableName() string { return "test_results" }

// migratedRow holds a migrated triple alongside its audit fields.
type migratedRow struct {
	ID        string         `gorm:"column:id;primaryKey"`
	ValueBase float64        `gorm:"column:value_base"`
	ValueRaw  float64        `gorm:"column:value_raw"`
	UnitRaw   sql.NullString `gorm:"column:unit_raw"`
}

func (migratedRow) TableName() string { return "migrated_results" }

// Store reads legacy records and writes migrated results through gorm.
type Store struct {
	db     *gorm.DB
	logger logger.Logger
}

// Open opens (or creates) the sqlite database at path and ensures the
// migrated_results table exists. The legacy test_results table is never
// created or altered here; it belongs to the system being migrated.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{logger: logger.Get().Named("repository")}

	for _, opt := range opts {
		opt(s)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	if err := db.AutoMigrate(&migratedRow{}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	s.db = db
	return s, nil
}

// LegacyResults loads every legacy record in id order. Rows whose value
// cannot be coerced to a float are logged and skipped; migration is a batch
// job and a single corrupt row must not abort it.
func (s *Store) LegacyResults(ctx context.Context) ([]model.TestResult, error) {
	var rows []testResultRow
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load legacy results: %w", err)
	}

	out := make([]model.TestResult, 0, len(rows))
	for _, row := range rows {
		value, err := cast.ToFloat64E(row.Value)
		if err != nil {
			s.logger.Warn(ctx, "skipping legacy row with non-numeric value",
				logger.String("id", row.ID),
				logger.String("value", row.Value),
				logger.Error(err))
			continue
		}
		r := model.TestResult{ID: row.ID, Key: row.Key, Value: value}
		if row.Units.Valid {
			units := row.Units.String
			r.Units = &units
		}
		out = append(out, r)
	}
	return out, nil
}

// SaveMigrated upserts migrated triples in a single transaction.
func (s *Store) SaveMigrated(ctx context.Context, results []model.MigratedResult) error {
	rows := make([]migratedRow, 0, len(results))
	for _, r := range results {
		row := migratedRow{ID: r.ID, ValueBase: r.ValueBase, ValueRaw: r.ValueRaw}
		if r.UnitRaw != nil {
			row.UnitRaw = sql.NullString{String: *r.UnitRaw, Valid: true}
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Save(&rows).Error; err != nil {
		return fmt.Errorf("save migrated results: %w", err)
	}
	return nil
}

// Migrated loads a migrated triple by id.
func (s *Store) Migrated(ctx context.Context, id string) (model.MigratedResult, error) {
	var row migratedRow
	err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return model.MigratedResult{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	case err != nil:
		return model.MigratedResult{}, fmt.Errorf("load migrated result: %w", err)
	}

	out := model.MigratedResult{ID: row.ID, ValueBase: row.ValueBase, ValueRaw: row.ValueRaw}
	if row.UnitRaw.Valid {
		unitRaw := row.UnitRaw.String
		out.UnitRaw = &unitRaw
	}
	return out, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	return nil
}
