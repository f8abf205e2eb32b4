// Package normalize maps free-text unit strings from legacy data onto
// canonical display units.
package normalize

import (
	"strings"

	"github.com/okian/uom/internal/domain/unit"
)

// aliases maps lowercased, trimmed unit spellings to canonical units.
// Canonical spellings are included so already-clean input passes through the
// same path. The table is fixed; this is not natural-language inference.
var aliases = map[string]unit.Unit{
	// mass
	"kg":        unit.Kilogram,
	"kgs":       unit.Kilogram,
	"kilogram":  unit.Kilogram,
	"kilograms": unit.Kilogram,
	"lb":        unit.Pound,
	"lbs":       unit.Pound,
	"pound":     unit.Pound,
	"pounds":    unit.Pound,

	// distance and length
	"m":           unit.Meter,
	"meter":       unit.Meter,
	"meters":      unit.Meter,
	"metre":       unit.Meter,
	"metres":      unit.Meter,
	"cm":          unit.Centimeter,
	"cms":         unit.Centimeter,
	"centimeter":  unit.Centimeter,
	"centimeters": unit.Centimeter,
	"in":          unit.Inch,
	"inch":        unit.Inch,
	"inches":      unit.Inch,
	`"`:           unit.Inch,
	"ft":          unit.Foot,
	"foot":        unit.Foot,
	"feet":        unit.Foot,
	"'":           unit.Foot,

	// time
	"s":       unit.Second,
	"sec":     unit.Second,
	"secs":    unit.Second,
	"second":  unit.Second,
	"seconds": unit.Second,
	"min":     unit.Minute,
	"mins":    unit.Minute,
	"minute":  unit.Minute,
	"minutes": unit.Minute,

	// speed
	"m/s":               unit.MeterPerSecond,
	"mps":               unit.MeterPerSecond,
	"meters per second": unit.MeterPerSecond,
	"km/h":              unit.KilometerPerHour,
	"kph":               unit.KilometerPerHour,
	"kmh":               unit.KilometerPerHour,
	"km per hour":       unit.KilometerPerHour,
	"mph":               unit.MilePerHour,
	"miles per hour":    unit.MilePerHour,

	// pass-through scalar families
	"count":       unit.Count,
	"percent":     unit.Percent,
	"%":           unit.PercentSign,
	"score":       unit.Score,
	"rep":         unit.Reps,
	"reps":        unit.Reps,
	"repetitions": unit.Reps,
}

// Normalize lower-cases and trims the input and resolves it through the
// alias table. Unmatched input is returned unchanged, not as an error: the
// caller decides whether an unnormalized unit is a failure when it is later
// handed to the conversion engine.
func Normalize(raw string) unit.Unit {
	key := strings.ToLower(strings.TrimSpace(raw))
	if u, ok := aliases[key]; ok {
		return u
	}
	return unit.Unit(raw)
}
