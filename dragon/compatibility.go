package dragon

import (
	"math"

	"dragon-clan/element"
)

// Traits compared field-to-field for similarity, in scoring order.
var similarityTraits = []Trait{TraitFriendliness, TraitSociability, TraitPlayfulness, TraitPatience}

// Compatibility scores how well b's traits and element suit a, as perceived
// by a. The result is in [-100,100] and is not symmetric: only a's
// preferences apply.
func Compatibility(a, b Traits, otherElement element.Element, prefs Preferences) float64 {
	score := 0.0

	for _, t := range similarityTraits {
		diff := math.Abs(float64(a.Get(t) - b.Get(t)))
		score += (100 - diff) / 10
	}

	// Similar dominance cooperates; strongly complementary dominance also works.
	dominanceDiff := absInt(a.Dominance - b.Dominance)
	if dominanceDiff < 30 {
		score += 10
	} else if dominanceDiff > 70 {
		score += 15
	}

	if a.Aggression < 30 && b.Aggression < 30 {
		score += 20
	} else if a.Aggression > 70 && b.Aggression > 70 {
		score -= 30
	}

	if element.Contains(prefs.PreferredElements, otherElement) {
		score += 25
	}
	if element.Contains(prefs.DislikedElements, otherElement) {
		score -= 30
	}

	for _, t := range prefs.PreferredTraits {
		if b.Get(t) > 60 {
			score += 10
		}
	}
	for _, t := range prefs.DislikedTraits {
		if b.Get(t) > 60 {
			score -= 15
		}
	}

	return clampScore(score)
}

type valuePair struct {
	self, other Value
}

// Opposed values. A large gap between a's first and b's second lowers alignment.
var conflictPairs = []valuePair{
	{ValueFreedom, ValueCommunity},
	{ValueTradition, ValueGrowth},
	{ValuePower, ValueHarmony},
	{ValueAchievement, ValueProtection},
}

// Values both sides holding above 70 earn a bonus.
var sharedHighValues = []Value{ValueHonor, ValueCommunity, ValueHarmony}

// Fixed penalties when a holds the first above 70 and b the second.
var clashingHighValues = []valuePair{
	{ValueFreedom, ValueCommunity},
	{ValueTradition, ValueGrowth},
	{ValuePower, ValueHarmony},
}

// ValueAlignment scores how well two value systems mesh, in [-100,100].
// The cross comparisons read a's side of each pair against b's, so callers
// pass (self, other) consistently.
func ValueAlignment(a, b Values) float64 {
	alignment := 0.0

	for _, v := range AllValues {
		diff := math.Abs(float64(a.Get(v) - b.Get(v)))
		alignment += (100 - diff) / 10
	}

	for _, p := range conflictPairs {
		diff := math.Abs(float64(a.Get(p.self) - b.Get(p.other)))
		if diff > 50 {
			alignment -= diff / 10
		}
	}

	for _, v := range sharedHighValues {
		if a.Get(v) > 70 && b.Get(v) > 70 {
			alignment += 15
		}
	}

	for _, p := range clashingHighValues {
		if a.Get(p.self) > 70 && b.Get(p.other) > 70 {
			alignment -= 20
		}
	}

	return clampScore(alignment)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
