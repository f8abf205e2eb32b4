package prefs_test

import (
	"errors"
	"testing"

	"github.com/okian/uom/internal/domain/prefs"
	"github.com/okian/uom/internal/domain/unit"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPreferences(t *testing.T) {
	Convey("Given the default preferences", t, func() {
		p := prefs.Default()

		Convey("Then every family should resolve to a display unit", func() {
			for _, f := range unit.Families() {
				u, err := p.DisplayUnit(f)
				So(err, ShouldBeNil)
				So(unit.IsRegistered(u), ShouldBeTrue)
			}
		})

		Convey("Then length and distance should be independent", func() {
			length, err := p.DisplayUnit(unit.FamilyLength)
			So(err, ShouldBeNil)
			distance, err := p.DisplayUnit(unit.FamilyDistance)
			So(err, ShouldBeNil)
			So(length, ShouldEqual, unit.Centimeter)
			So(distance, ShouldEqual, unit.Meter)
		})

		Convey("When updating a preference", func() {
			before := p.Version()
			err := p.Set(unit.FamilyMass, unit.Pound)

			Convey("Then the version counter should move", func() {
				So(err, ShouldBeNil)
				So(p.Version(), ShouldEqual, before+1)

				u, err := p.DisplayUnit(unit.FamilyMass)
				So(err, ShouldBeNil)
				So(u, ShouldEqual, unit.Pound)
			})
		})

		Convey("When setting a unit from the wrong family", func() {
			err := p.Set(unit.FamilyMass, unit.Meter)

			Convey("Then it should fail without changing the version", func() {
				So(errors.Is(err, prefs.ErrWrongFamily), ShouldBeTrue)
			})
		})

		Convey("When setting an unknown family", func() {
			err := p.Set("temperature", unit.Kilogram)
			So(errors.Is(err, prefs.ErrUnknownFamily), ShouldBeTrue)
		})

		Convey("When taking a snapshot", func() {
			units, version := p.Snapshot()

			Convey("Then mutating the snapshot should not affect the preferences", func() {
				units[unit.FamilyMass] = unit.Pound
				u, err := p.DisplayUnit(unit.FamilyMass)
				So(err, ShouldBeNil)
				So(u, ShouldEqual, unit.Kilogram)
				So(version, ShouldEqual, p.Version())
			})
		})
	})

	Convey("Given an explicit preference set", t, func() {
		Convey("When it covers only some families", func() {
			p, err := prefs.New(map[unit.Family]unit.Unit{
				unit.FamilyMass: unit.Pound,
			})
			So(err, ShouldBeNil)

			Convey("Then a missing family is a hard failure, not a silent zero value", func() {
				_, err := p.DisplayUnit(unit.FamilyTime)
				So(errors.Is(err, prefs.ErrNoPreference), ShouldBeTrue)
			})
		})

		Convey("When it contains a wrong-family entry", func() {
			_, err := prefs.New(map[unit.Family]unit.Unit{
				unit.FamilySpeed: unit.Foot,
			})
			So(errors.Is(err, prefs.ErrWrongFamily), ShouldBeTrue)
		})
	})
}

func TestResolveForKey(t *testing.T) {
	Convey("Given default preferences", t, func() {
		p := prefs.Default()

		Convey("Then a metric key resolves through its classified family", func() {
			u, err := prefs.ResolveForKey("body_weight", p)
			So(err, ShouldBeNil)
			So(u, ShouldEqual, unit.Kilogram)

			u, err = prefs.ResolveForKey("height", p)
			So(err, ShouldBeNil)
			So(u, ShouldEqual, unit.Centimeter)
		})
	})
}

func TestResolveFromUnitRef(t *testing.T) {
	Convey("Given default preferences and a legacy unit descriptor", t, func() {
		p := prefs.Default()

		Convey("When the descriptor key is non-convertible", func() {
			u, err := prefs.ResolveFromUnitRef("anything", prefs.UnitRef{Key: unit.Score, Family: "score"}, p)
			So(err, ShouldBeNil)
			So(u, ShouldEqual, unit.Score)
		})

		Convey("When the descriptor family dispatches to a preference", func() {
			for family, want := range map[string]unit.Unit{
				"length":   unit.Centimeter,
				"distance": unit.Meter,
				"mass":     unit.Kilogram,
				"weight":   unit.Kilogram,
				"time":     unit.Second,
				"speed":    unit.MeterPerSecond,
			} {
				u, err := prefs.ResolveFromUnitRef("", prefs.UnitRef{Family: family}, p)
				So(err, ShouldBeNil)
				So(u, ShouldEqual, want)
			}
		})

		Convey("When the family is count or percent with a raw unit", func() {
			u, err := prefs.ResolveFromUnitRef("%", prefs.UnitRef{Family: "percent"}, p)
			So(err, ShouldBeNil)
			So(u, ShouldEqual, unit.PercentSign)
		})

		Convey("When the raw unit is itself registered", func() {
			u, err := prefs.ResolveFromUnitRef("mph", prefs.UnitRef{Family: "unknown"}, p)
			So(err, ShouldBeNil)
			So(u, ShouldEqual, unit.MilePerHour)
		})

		Convey("When nothing resolves", func() {
			u, err := prefs.ResolveFromUnitRef("", prefs.UnitRef{Family: "mystery"}, p)

			Convey("Then it falls back to the base distance unit", func() {
				So(err, ShouldBeNil)
				So(u, ShouldEqual, unit.Meter)
			})
		})
	})
}
