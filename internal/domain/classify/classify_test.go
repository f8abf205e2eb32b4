package classify_test

import (
	"testing"

	"github.com/okian/uom/internal/domain/classify"
	"github.com/okian/uom/internal/domain/unit"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClassify(t *testing.T) {
	Convey("Given the metric-key classifier", t, func() {
		Convey("When classifying domain-keyword keys", func() {
			So(classify.Classify("body_weight"), ShouldEqual, unit.FamilyMass)
			So(classify.Classify("height"), ShouldEqual, unit.FamilyLength)
			So(classify.Classify("standing_reach"), ShouldEqual, unit.FamilyLength)
			So(classify.Classify("arm_span"), ShouldEqual, unit.FamilyLength)
			So(classify.Classify("vertical_jump"), ShouldEqual, unit.FamilyDistance)
			So(classify.Classify("reaction_time"), ShouldEqual, unit.FamilyTime)
			So(classify.Classify("sprint_speed"), ShouldEqual, unit.FamilySpeed)
			So(classify.Classify("exit_velocity"), ShouldEqual, unit.FamilySpeed)
		})

		Convey("When classifying exact-family keyword keys", func() {
			So(classify.Classify("fms_total"), ShouldEqual, unit.FamilyScore)
			So(classify.Classify("coach_rating"), ShouldEqual, unit.FamilyScore)
			So(classify.Classify("touch_count"), ShouldEqual, unit.FamilyCount)
			So(classify.Classify("body_fat_percent"), ShouldEqual, unit.FamilyPercent)
			So(classify.Classify("max_reps"), ShouldEqual, unit.FamilyReps)
		})

		Convey("When classifying exemplar-list keys", func() {
			So(classify.Classify("deep_squat"), ShouldEqual, unit.FamilyScore)
			So(classify.Classify("hurdle_step"), ShouldEqual, unit.FamilyScore)
			So(classify.Classify("push_ups"), ShouldEqual, unit.FamilyCount)
			So(classify.Classify("pull_ups"), ShouldEqual, unit.FamilyCount)
			So(classify.Classify("body_fat"), ShouldEqual, unit.FamilyPercent)
			So(classify.Classify("broad_jump"), ShouldEqual, unit.FamilyDistance)
		})

		Convey("When a key matches multiple heuristics", func() {
			Convey("Then the first rule in declared order wins", func() {
				// "score" (step 1) beats "weight" (step 2)
				So(classify.Classify("weight_score"), ShouldEqual, unit.FamilyScore)
				// "time" (step 2) beats the sprint exemplar (step 3)
				So(classify.Classify("sprint_time"), ShouldEqual, unit.FamilyTime)
				// length keyword beats any distance resolution
				So(classify.Classify("jump_reach"), ShouldEqual, unit.FamilyLength)
			})
		})

		Convey("When classifying with mixed case and surrounding space", func() {
			So(classify.Classify("  Body_Weight  "), ShouldEqual, unit.FamilyMass)
		})

		Convey("When no rule matches", func() {
			Convey("Then the fallback family is distance", func() {
				So(classify.Classify("unknown_metric"), ShouldEqual, unit.FamilyDistance)
				So(classify.Classify(""), ShouldEqual, unit.FamilyDistance)
			})
		})

		Convey("When classifying the same key repeatedly", func() {
			Convey("Then the result is deterministic", func() {
				first := classify.Classify("vertical_jump")
				for i := 0; i < 100; i++ {
					So(classify.Classify("vertical_jump"), ShouldEqual, first)
				}
			})
		})
	})
}
