// Package prefs resolves the display unit for a family from a versioned
// preference set.
//
// Preferences replace a host UI framework's reactive subscription mechanism
// with an explicit version counter: every mutation bumps the version, and
// consumers compare versions to decide whether cached display strings need
// recomputing.
package prefs

import (
	"fmt"
	"sync"

	"github.com/okian/uom/internal/domain/classify"
	"github.com/okian/uom/internal/domain/unit"
	"github.com/okian/uom/pkg/metrics"
)

// UnitRef is the explicit unit descriptor carried by legacy API payloads.
type UnitRef struct {
	Key    unit.Unit `json:"key"`
	Family string    `json:"family"`
}

// Preferences maps every unit family to the display unit chosen for it.
// Zero value is not usable; construct with New or Default.
type Preferences struct {
	mu      sync.RWMutex
	units   map[unit.Family]unit.Unit
	version uint64
}

// Default returns metric-system preferences covering every family.
func Default() *Preferences {
	return &Preferences{
		units: map[unit.Family]unit.Unit{
			unit.FamilyMass:     unit.Kilogram,
			unit.FamilyDistance: unit.Meter,
			unit.FamilyLength:   unit.Centimeter,
			unit.FamilyTime:     unit.Second,
			unit.FamilySpeed:    unit.MeterPerSecond,
			unit.FamilyCount:    unit.Count,
			unit.FamilyPercent:  unit.Percent,
			unit.FamilyScore:    unit.Score,
			unit.FamilyReps:     unit.Reps,
		},
	}
}

// New builds a preference set from an explicit family -> unit mapping.
// Every entry must name a registered unit belonging to that family;
// violating this is a programming error surfaced at construction, never at
// resolution time.
func New(units map[unit.Family]unit.Unit) (*Preferences, error) {
	p := &Preferences{units: make(map[unit.Family]unit.Unit, len(units))}
	for f, u := range units {
		if err := checkMembership(f, u); err != nil {
			return nil, err
		}
		p.units[f] = u
	}
	return p, nil
}

// DisplayUnit returns the preferred display unit for a family. A missing
// entry is a hard ErrNoPreference failure rather than a silent zero value.
func (p *Preferences) DisplayUnit(f unit.Family) (unit.Unit, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	u, ok := p.units[f]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNoPreference, f)
	}
	return u, nil
}

// Set updates the display unit for a family and bumps the version counter.
func (p *Preferences) Set(f unit.Family, u unit.Unit) error {
	if err := checkMembership(f, u); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.units[f] = u
	p.version++
	metrics.RecordPreferenceUpdate()
	metrics.UpdatePreferenceVersion(p.version)
	return nil
}

// Version returns the current mutation counter.
func (p *Preferences) Version() uint64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.version
}

// Snapshot returns a copy of the current family -> unit mapping together
// with the version it was taken at.
func (p *Preferences) Snapshot() (map[unit.Family]unit.Unit, uint64) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[unit.Family]unit.Unit, len(p.units))
	for f, u := range p.units {
		out[f] = u
	}
	return out, p.version
}

// ResolveForKey classifies a metric key and resolves its display unit.
func ResolveForKey(metricKey string, p *Preferences) (unit.Unit, error) {
	return p.DisplayUnit(classify.Classify(metricKey))
}

// ResolveFromUnitRef resolves the display unit for a legacy payload carrying
// an explicit unit descriptor.
//
// A non-convertible descriptor key is returned verbatim. Otherwise the
// descriptor family dispatches to the matching preference; count and percent
// families return the raw unit verbatim when present; a raw unit that is
// itself registered is returned as-is; anything else falls back to the base
// distance unit.
func ResolveFromUnitRef(rawUnit string, ref UnitRef, p *Preferences) (unit.Unit, error) {
	if ref.Key != "" && unit.IsPassThrough(ref.Key) {
		return ref.Key, nil
	}

	switch ref.Family {
	case "length":
		return p.DisplayUnit(unit.FamilyLength)
	case "distance":
		return p.DisplayUnit(unit.FamilyDistance)
	case "mass", "weight":
		return p.DisplayUnit(unit.FamilyMass)
	case "time":
		return p.DisplayUnit(unit.FamilyTime)
	case "speed":
		return p.DisplayUnit(unit.FamilySpeed)
	case "count", "percent":
		if rawUnit != "" {
			return unit.Unit(rawUnit), nil
		}
	}

	if rawUnit != "" && unit.IsRegistered(unit.Unit(rawUnit)) {
		return unit.Unit(rawUnit), nil
	}

	base, err := unit.BaseUnit(unit.FamilyDistance)
	if err != nil {
		return "", err
	}
	return base, nil
}

// checkMembership verifies that u is a registered member of family f.
func checkMembership(f unit.Family, u unit.Unit) error {
	ms := unit.Members(f)
	if len(ms) == 0 {
		return fmt.Errorf("%w: %q", ErrUnknownFamily, f)
	}
	for _, m := range ms {
		if m == u {
			return nil
		}
	}
	return fmt.Errorf("%w: %q not in %q", ErrWrongFamily, u, f)
}
