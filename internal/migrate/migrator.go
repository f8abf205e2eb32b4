// Package migrate retrofits legacy unlabeled measurement records into the
// base-unit scheme and validates the result.
package migrate

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/okian/uom/internal/domain/model"
	"github.com/okian/uom/internal/domain/normalize"
	"github.com/okian/uom/internal/domain/unit"
	"github.com/okian/uom/pkg/logger"
	"github.com/okian/uom/pkg/metrics"
)

// Default migrator configuration constants.
const (
	defaultWorkers = 1
)

// Migrator converts legacy (value, free-text unit) records into
// (base value, raw value, raw unit) triples. Records are independent, so a
// batch may fan out over workers; output order always matches input order so
// positional validation stays meaningful.
type Migrator struct {
	workers int
	logger  logger.Logger
}

// New creates a Migrator with configuration options.
func New(opts ...Option) *Migrator {
	m := &Migrator{
		workers: defaultWorkers,
		logger:  logger.Get().Named("migrate"),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// One migrates a single legacy record. It never fails: an unlabeled record
// passes its value through unchanged (assumed already in base units), and an
// unrecognized unit logs a warning and degrades to identity conversion. The
// audit fields always equal the original input exactly, whichever path was
// taken.
func (m *Migrator) One(ctx context.Context, r model.TestResult) model.MigratedResult {
	out := model.MigratedResult{
		ID:        r.ID,
		ValueBase: r.Value,
		ValueRaw:  r.Value,
		UnitRaw:   r.Units,
	}

	if r.Units == nil || strings.TrimSpace(*r.Units) == "" {
		metrics.RecordMigrationUnchanged()
		return out
	}

	canon := normalize.Normalize(*r.Units)
	base, err := unit.ToBase(r.Value, canon)
	if err != nil {
		m.logger.Warn(ctx, "unrecognized unit; passing value through unchanged",
			logger.String("id", r.ID),
			logger.String("key", r.Key),
			logger.String("units", *r.Units),
			logger.Error(err))
		metrics.RecordMigrationDegraded()
		return out
	}

	out.ValueBase = base
	if math.Abs(base-r.Value) < unit.DefaultTolerance {
		metrics.RecordMigrationUnchanged()
	} else {
		metrics.RecordMigrationConverted()
	}
	return out
}

// Batch migrates records element-wise, preserving input order. With more
// than one worker the records are distributed by index and results written
// positionally.
func (m *Migrator) Batch(ctx context.Context, records []model.TestResult) []model.MigratedResult {
	start := time.Now()
	runID := uuid.NewString()
	out := make([]model.MigratedResult, len(records))

	if m.workers <= 1 || len(records) < 2 {
		for i, r := range records {
			out[i] = m.One(ctx, r)
		}
	} else {
		indexes := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < m.workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range indexes {
					out[i] = m.One(ctx, records[i])
				}
			}()
		}
		for i := range records {
			indexes <- i
		}
		close(indexes)
		wg.Wait()
	}

	elapsed := time.Since(start)
	metrics.RecordMigrationBatchDuration(float64(elapsed.Milliseconds()))
	m.logger.Info(ctx, "migration batch complete",
		logger.String("run_id", runID),
		logger.Int("records", len(records)),
		logger.Int("workers", m.workers),
		logger.String("elapsed", elapsed.String()))
	return out
}
