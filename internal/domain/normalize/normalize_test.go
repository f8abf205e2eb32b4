package normalize_test

import (
	"testing"

	"github.com/okian/uom/internal/domain/normalize"
	"github.com/okian/uom/internal/domain/unit"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalize(t *testing.T) {
	Convey("Given the unit-string normalizer", t, func() {
		Convey("When normalizing mass spellings", func() {
			So(normalize.Normalize("kilograms"), ShouldEqual, unit.Kilogram)
			So(normalize.Normalize("lbs"), ShouldEqual, unit.Pound)
			So(normalize.Normalize("pounds"), ShouldEqual, unit.Pound)
		})

		Convey("When normalizing length symbols", func() {
			So(normalize.Normalize(`"`), ShouldEqual, unit.Inch)
			So(normalize.Normalize("'"), ShouldEqual, unit.Foot)
			So(normalize.Normalize("inches"), ShouldEqual, unit.Inch)
			So(normalize.Normalize("feet"), ShouldEqual, unit.Foot)
		})

		Convey("When normalizing speed spellings", func() {
			So(normalize.Normalize("mps"), ShouldEqual, unit.MeterPerSecond)
			So(normalize.Normalize("kph"), ShouldEqual, unit.KilometerPerHour)
			So(normalize.Normalize("kmh"), ShouldEqual, unit.KilometerPerHour)
			So(normalize.Normalize("miles per hour"), ShouldEqual, unit.MilePerHour)
		})

		Convey("When input carries case and whitespace", func() {
			So(normalize.Normalize("  KG  "), ShouldEqual, unit.Kilogram)
			So(normalize.Normalize("Pounds"), ShouldEqual, unit.Pound)
		})

		Convey("When input is already canonical", func() {
			So(normalize.Normalize("kg"), ShouldEqual, unit.Kilogram)
			So(normalize.Normalize("m/s"), ShouldEqual, unit.MeterPerSecond)
		})

		Convey("When input matches nothing", func() {
			Convey("Then it is returned unchanged, not as an error", func() {
				So(normalize.Normalize("stone"), ShouldEqual, unit.Unit("stone"))
				So(unit.IsRegistered(normalize.Normalize("stone")), ShouldBeFalse)
			})
		})
	})
}
