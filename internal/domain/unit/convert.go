package unit

import (
	"context"
	"fmt"
	"math"

	"github.com/okian/uom/pkg/logger"
	"github.com/okian/uom/pkg/metrics"
)

// Conversion constants.
const (
	// DefaultTolerance bounds acceptable round-trip drift.
	DefaultTolerance = 1e-10

	// DefaultPrecision is the decimal precision used for display formatting.
	DefaultPrecision = 2

	// placeholder is rendered in place of a missing or non-finite value.
	placeholder = "—"
)

// ToBase converts a display-unit value to its family's base unit.
func ToBase(value float64, u Unit) (float64, error) {
	d, err := Factor(u)
	if err != nil {
		return 0, err
	}
	return value * d.Factor, nil
}

// FromBase converts a base-unit value to the given display unit.
func FromBase(base float64, u Unit) (float64, error) {
	d, err := Factor(u)
	if err != nil {
		return 0, err
	}
	return base / d.Factor, nil
}

// BaseOf returns the base unit u converts through.
func BaseOf(u Unit) (Unit, error) {
	d, err := Factor(u)
	if err != nil {
		return "", err
	}
	return d.Base, nil
}

// Convert moves a value between two units of the same family. Cross-family
// conversions are rejected by base-unit comparison before any arithmetic.
func Convert(value float64, from, to Unit) (float64, error) {
	fromBase, err := BaseOf(from)
	if err != nil {
		return 0, err
	}
	toBase, err := BaseOf(to)
	if err != nil {
		return 0, err
	}
	if fromBase != toBase {
		return 0, fmt.Errorf("%w: %q (%s) -> %q (%s)", ErrIncompatibleUnits, from, fromBase, to, toBase)
	}
	base, err := ToBase(value, from)
	if err != nil {
		return 0, err
	}
	return FromBase(base, to)
}

// ValidateRoundTrip reports whether value survives a display -> base ->
// display trip within tolerance. A non-positive tolerance selects
// DefaultTolerance. Intended as a property check, not a runtime guard.
func ValidateRoundTrip(value float64, u Unit, tolerance float64) bool {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	base, err := ToBase(value, u)
	if err != nil {
		return false
	}
	back, err := FromBase(base, u)
	if err != nil {
		return false
	}
	return math.Abs(value-back) < tolerance
}

// Format renders a base value in the given display unit with fixed decimal
// precision, e.g. "165.35 lb". Precision is display-only and never feeds back
// into stored values. A NaN or infinite input renders the placeholder glyph
// while still naming the unit, so callers can show "— kg" instead of failing.
func Format(base float64, u Unit, precision int) (string, error) {
	if _, err := Factor(u); err != nil {
		return "", err
	}
	if math.IsNaN(base) || math.IsInf(base, 0) {
		return fmt.Sprintf("%s %s", placeholder, u), nil
	}
	display, err := FromBase(base, u)
	if err != nil {
		return "", err
	}
	if precision < 0 {
		precision = DefaultPrecision
	}
	return fmt.Sprintf("%.*f %s", precision, display, u), nil
}

// SafeToBase is the lenient variant of ToBase: a nil or NaN input
// short-circuits to nil, and an unknown unit is reported as nil plus a
// diagnostic log instead of an error. This and SafeFromBase are the only
// places conversion failures are swallowed.
func SafeToBase(value *float64, u Unit) *float64 {
	return safeConvert(value, u, ToBase, "to_base")
}

// SafeFromBase is the lenient variant of FromBase. See SafeToBase.
func SafeFromBase(base *float64, u Unit) *float64 {
	return safeConvert(base, u, FromBase, "from_base")
}

// SafeFormat renders like Format but never fails: nil and NaN values, and
// unknown units, all degrade to the placeholder glyph plus the unit string.
func SafeFormat(base *float64, u Unit, precision int) string {
	if base == nil {
		return fmt.Sprintf("%s %s", placeholder, u)
	}
	s, err := Format(*base, u, precision)
	if err != nil {
		logger.Get().Named("unit").Warn(context.Background(), "format failed; rendering placeholder",
			logger.String("unit", string(u)), logger.Error(err))
		return fmt.Sprintf("%s %s", placeholder, u)
	}
	return s
}

func safeConvert(value *float64, u Unit, fn func(float64, Unit) (float64, error), direction string) *float64 {
	if value == nil || math.IsNaN(*value) {
		metrics.RecordSafeConversionNull()
		return nil
	}
	out, err := fn(*value, u)
	if err != nil {
		metrics.RecordSafeConversionNull()
		logger.Get().Named("unit").Warn(context.Background(), "safe conversion failed",
			logger.String("direction", direction),
			logger.String("unit", string(u)),
			logger.Float64("value", *value),
			logger.Error(err))
		return nil
	}
	return &out
}
