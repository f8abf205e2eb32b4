package migrate

import (
	"fmt"
	"math"

	"github.com/okian/uom/internal/domain/model"
	"github.com/okian/uom/internal/domain/unit"
	"github.com/okian/uom/pkg/metrics"
)

// Validation thresholds.
const (
	// Conversion ratios outside [minPlausibleRatio, maxPlausibleRatio] are
	// flagged as implausible. None of the registered factors comes close to
	// these bounds.
	minPlausibleRatio = 0.001
	maxPlausibleRatio = 1000
)

// Stats aggregates per-record validation outcomes. Failed counts individual
// check failures, so a single record can contribute more than one.
type Stats struct {
	Total     int `json:"total"`
	Converted int `json:"converted"`
	Unchanged int `json:"unchanged"`
	Failed    int `json:"failed"`
}

// Report is the outcome of validating a migrated batch against its input.
// Errors make Success false; warnings are advisory only.
type Report struct {
	Success  bool     `json:"success"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	Stats    Stats    `json:"stats"`
}

// Validate checks a migrated batch for integrity against the original
// records. It never fails itself; every problem is collected into the report.
//
// A length mismatch fails the whole batch without per-record checks. Per
// index, the positional IDs must match (a mismatch skips the remaining
// checks for that pair); a record counts as converted when the base value
// moved by at least the round-trip tolerance; converted records with an
// implausible conversion ratio draw a warning; and the audit fields must
// equal the original input exactly, each mismatch a distinct error.
func Validate(original []model.TestResult, migrated []model.MigratedResult) Report {
	r := Report{Stats: Stats{Total: len(original)}}

	if len(original) != len(migrated) {
		r.Errors = append(r.Errors, fmt.Sprintf(
			"record count mismatch: %d original, %d migrated", len(original), len(migrated)))
		r.Stats.Failed = len(original)
		metrics.RecordMigrationValidationErrors(len(r.Errors))
		return r
	}

	for i := range original {
		orig, mig := original[i], migrated[i]

		if orig.ID != mig.ID {
			r.Errors = append(r.Errors, fmt.Sprintf(
				"index %d: id mismatch: %q vs %q", i, orig.ID, mig.ID))
			r.Stats.Failed++
			continue
		}

		if math.Abs(orig.Value-mig.ValueBase) >= unit.DefaultTolerance {
			r.Stats.Converted++
			ratio := mig.ValueBase / orig.Value
			if ratio < minPlausibleRatio || ratio > maxPlausibleRatio {
				r.Warnings = append(r.Warnings, fmt.Sprintf(
					"record %s: implausible conversion ratio %g", orig.ID, ratio))
			}
		} else {
			r.Stats.Unchanged++
		}

		if mig.ValueRaw != orig.Value {
			r.Errors = append(r.Errors, fmt.Sprintf(
				"record %s: raw value %v does not match original %v", orig.ID, mig.ValueRaw, orig.Value))
			r.Stats.Failed++
		}
		if !unitRawEqual(orig.Units, mig.UnitRaw) {
			r.Errors = append(r.Errors, fmt.Sprintf(
				"record %s: raw unit %s does not match original %s",
				orig.ID, strOrNull(mig.UnitRaw), strOrNull(orig.Units)))
			r.Stats.Failed++
		}
	}

	r.Success = len(r.Errors) == 0
	metrics.RecordMigrationValidationErrors(len(r.Errors))
	return r
}

func unitRawEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func strOrNull(s *string) string {
	if s == nil {
		return "NULL"
	}
	return fmt.Sprintf("%q", *s)
}
