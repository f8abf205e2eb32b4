// Package unit holds the fixed display-unit registry and the conversion
// engine built on top of it. All persisted and derived values in the system
// are expressed in a family's base unit; this package is the only place
// allowed to move values between base and display units.
package unit

import "fmt"

// Unit identifies a display unit, e.g. "kg", "lb", "cm", "mph".
type Unit string

// Family groups units that convert through a shared base unit, plus the
// pass-through scalar families that have a single identity member.
type Family string

// Unit families.
const (
	FamilyMass     Family = "mass"
	FamilyDistance Family = "distance"
	FamilyLength   Family = "length"
	FamilyTime     Family = "time"
	FamilySpeed    Family = "speed"
	FamilyCount    Family = "count"
	FamilyPercent  Family = "percent"
	FamilyScore    Family = "score"
	FamilyReps     Family = "reps"
)

// Registered units.
const (
	Kilogram Unit = "kg"
	Pound    Unit = "lb"

	Meter      Unit = "m"
	Centimeter Unit = "cm"
	Inch       Unit = "in"
	Foot       Unit = "ft"

	Second Unit = "s"
	Minute Unit = "min"

	MeterPerSecond   Unit = "m/s"
	KilometerPerHour Unit = "km/h"
	MilePerHour      Unit = "mph"

	Count       Unit = "count"
	Percent     Unit = "percent"
	PercentSign Unit = "%"
	Score       Unit = "score"
	Reps        Unit = "reps"
)

// Def describes a registered unit: the multiplicative factor to its family's
// base unit, and that base unit.
type Def struct {
	Factor float64
	Base   Unit
}

// table is the exhaustive, immutable unit registry. Factors that are exact
// ratios (km/h) are computed rather than written as decimal approximations
// to keep round-trip error at the float64 noise floor.
var table = map[Unit]Def{
	// mass, base kg
	Kilogram: {Factor: 1, Base: Kilogram},
	Pound:    {Factor: 0.45359237, Base: Kilogram},

	// distance and length, base m
	Meter:      {Factor: 1, Base: Meter},
	Centimeter: {Factor: 0.01, Base: Meter},
	Inch:       {Factor: 0.0254, Base: Meter},
	Foot:       {Factor: 0.3048, Base: Meter},

	// time, base s
	Second: {Factor: 1, Base: Second},
	Minute: {Factor: 60, Base: Second},

	// speed, base m/s
	MeterPerSecond:   {Factor: 1, Base: MeterPerSecond},
	KilometerPerHour: {Factor: 1.0 / 3.6, Base: MeterPerSecond},
	MilePerHour:      {Factor: 0.44704, Base: MeterPerSecond},

	// pass-through scalar families, identity factor, base = self
	Count:       {Factor: 1, Base: Count},
	Percent:     {Factor: 1, Base: Percent},
	PercentSign: {Factor: 1, Base: PercentSign},
	Score:       {Factor: 1, Base: Score},
	Reps:        {Factor: 1, Base: Reps},
}

// members lists the units belonging to each family. Length and distance share
// the same convertible units; they are kept as separate families because
// user preferences treat body measurements and movement distances
// independently.
var members = map[Family][]Unit{
	FamilyMass:     {Kilogram, Pound},
	FamilyDistance: {Meter, Centimeter, Inch, Foot},
	FamilyLength:   {Meter, Centimeter, Inch, Foot},
	FamilyTime:     {Second, Minute},
	FamilySpeed:    {MeterPerSecond, KilometerPerHour, MilePerHour},
	FamilyCount:    {Count},
	FamilyPercent:  {Percent, PercentSign},
	FamilyScore:    {Score},
	FamilyReps:     {Reps},
}

// bases maps each family to its canonical base unit.
var bases = map[Family]Unit{
	FamilyMass:     Kilogram,
	FamilyDistance: Meter,
	FamilyLength:   Meter,
	FamilyTime:     Second,
	FamilySpeed:    MeterPerSecond,
	FamilyCount:    Count,
	FamilyPercent:  Percent,
	FamilyScore:    Score,
	FamilyReps:     Reps,
}

// Factor looks up the registry entry for u.
func Factor(u Unit) (Def, error) {
	d, ok := table[u]
	if !ok {
		return Def{}, fmt.Errorf("%w: %q", ErrUnknownUnit, u)
	}
	return d, nil
}

// IsRegistered reports whether u appears in the registry.
func IsRegistered(u Unit) bool {
	_, ok := table[u]
	return ok
}

// passThrough is the set of identity units for the non-convertible families.
var passThrough = map[Unit]struct{}{
	Count: {}, Percent: {}, PercentSign: {}, Score: {}, Reps: {},
}

// IsPassThrough reports whether u belongs to a non-convertible scalar family
// (factor 1, base = self).
func IsPassThrough(u Unit) bool {
	_, ok := passThrough[u]
	return ok
}

// Members returns the units of a family in registry order.
func Members(f Family) []Unit {
	out := make([]Unit, len(members[f]))
	copy(out, members[f])
	return out
}

// BaseUnit returns the canonical base unit of a family.
func BaseUnit(f Family) (Unit, error) {
	b, ok := bases[f]
	if !ok {
		return "", fmt.Errorf("%w: no base for family %q", ErrUnknownUnit, f)
	}
	return b, nil
}

// Families returns every known family. The order is fixed: convertible
// families first, then the pass-through scalar families.
func Families() []Family {
	return []Family{
		FamilyMass, FamilyDistance, FamilyLength, FamilyTime, FamilySpeed,
		FamilyCount, FamilyPercent, FamilyScore, FamilyReps,
	}
}
