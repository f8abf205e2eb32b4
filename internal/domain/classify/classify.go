// Package classify derives a unit family from an opaque metric key.
//
// Classification is a pure function of the key string, recomputed on every
// call and never cached persistently: a key's family is not guaranteed stable
// if its substrings change meaning.
package classify

import (
	"strings"

	"github.com/okian/uom/internal/domain/unit"
	"github.com/okian/uom/pkg/metrics"
)

// FallbackFamily is the family assigned to keys no rule matches.
const FallbackFamily = unit.FamilyDistance

// rule pairs a predicate with the family it resolves to. Rules are evaluated
// in declared order and the first match wins; keys containing several trigger
// words are resolved only by this order, so the sequence below is
// load-bearing and must not be reshuffled.
type rule struct {
	match  func(key string) bool
	family unit.Family
}

// rules is the fixed, ordered classification sequence:
//
//  1. exact-family keywords (score, count, percent, reps)
//  2. domain keywords (mass, length, distance, time, speed)
//  3. known metric-key exemplars, families in the same order as above
//
// Step 2's length branch runs before any distance exemplar, which is what
// keeps body-measurement keys like "height" resolving to length rather than
// distance.
var rules = []rule{
	// step 1: exact-family keywords
	{containsAny("score", "fms", "rating"), unit.FamilyScore},
	{containsAny("count", "number"), unit.FamilyCount},
	{containsAny("percent", "%"), unit.FamilyPercent},
	{containsAny("reps", "repetitions"), unit.FamilyReps},

	// step 2: domain keywords
	{containsAny("weight", "mass"), unit.FamilyMass},
	{containsAny("height", "reach", "span"), unit.FamilyLength},
	{containsAny("distance", "jump"), unit.FamilyDistance},
	{containsAny("time", "duration"), unit.FamilyTime},
	{containsAny("speed", "velocity"), unit.FamilySpeed},

	// step 3: known metric-key exemplars
	{containsAny("deep_squat", "hurdle_step", "inline_lunge", "shoulder_mobility",
		"leg_raise", "rotary_stability", "trunk_stability"), unit.FamilyScore},
	{containsAny("push_up", "pull_up", "sit_up", "chin_up"), unit.FamilyCount},
	{containsAny("body_fat"), unit.FamilyPercent},
	{containsAny("amrap"), unit.FamilyReps},
	{containsAny("body_weight", "bodyweight"), unit.FamilyMass},
	{containsAny("arm_span", "wingspan", "sit_and_reach"), unit.FamilyLength},
	{containsAny("vertical_jump", "broad_jump", "long_jump", "sprint", "shuttle", "throw"), unit.FamilyDistance},
	{containsAny("forty", "dash", "split"), unit.FamilyTime},
	{containsAny("exit_velo", "pitch_velo", "pace"), unit.FamilySpeed},
}

// Classify maps a metric key to its unit family. It is total: unmatched keys
// resolve to the fallback family and no input ever fails.
func Classify(metricKey string) unit.Family {
	key := strings.ToLower(strings.TrimSpace(metricKey))
	for _, r := range rules {
		if r.match(key) {
			metrics.RecordClassification(string(r.family))
			return r.family
		}
	}
	metrics.RecordClassification(string(FallbackFamily))
	metrics.RecordClassificationFallback()
	return FallbackFamily
}

// containsAny builds a predicate matching any of the given substrings.
func containsAny(subs ...string) func(string) bool {
	return func(key string) bool {
		for _, s := range subs {
			if strings.Contains(key, s) {
				return true
			}
		}
		return false
	}
}
