package dragon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dragon-clan/element"
)

var peacefulPlayful = Traits{
	Friendliness: 80, Aggression: 10, Sociability: 80, Curiosity: 50,
	Playfulness: 80, Dominance: 50, Patience: 70,
}

func TestCompatibilityIdenticalPeacefulTraits(t *testing.T) {
	score := Compatibility(peacefulPlayful, peacefulPlayful, element.Fire, Preferences{})
	assert.Equal(t, 70.0, score)
	assert.Greater(t, score, 50.0)

	withFirePrefs := Compatibility(peacefulPlayful, peacefulPlayful, element.Fire, PreferencesFor(element.Fire))
	assert.Equal(t, 95.0, withFirePrefs)
}

func TestCompatibilityMutualAggressionPenalty(t *testing.T) {
	calm := uniformTraits(50)
	hostile := calm
	hostile.Aggression = 90

	calmScore := Compatibility(calm, calm, element.Earth, Preferences{})
	hostileScore := Compatibility(hostile, hostile, element.Earth, Preferences{})

	assert.Equal(t, 50.0, calmScore)
	assert.Equal(t, 20.0, hostileScore)
	assert.Equal(t, 30.0, calmScore-hostileScore)
	assert.LessOrEqual(t, hostileScore, 50.0, "must stay below the warm band")
}

func TestCompatibilityDominance(t *testing.T) {
	a := uniformTraits(50)
	b := uniformTraits(50)

	b.Dominance = 79 // diff 29
	assert.Equal(t, 50.0, Compatibility(a, b, element.Earth, Preferences{}))
	b.Dominance = 80 // diff 30: neither bonus
	assert.Equal(t, 40.0, Compatibility(a, b, element.Earth, Preferences{}))

	a.Dominance = 0
	b.Dominance = 71 // diff 71: complementary
	assert.Equal(t, 55.0, Compatibility(a, b, element.Earth, Preferences{}))
}

func TestCompatibilityPreferences(t *testing.T) {
	a := uniformTraits(50)
	b := uniformTraits(50)

	disliked := Compatibility(a, b, element.Fire, PreferencesFor(element.Water))
	assert.Equal(t, 20.0, disliked)

	b.Curiosity = 61
	b.Aggression = 61
	prefs := Preferences{
		PreferredTraits: []Trait{TraitCuriosity},
		DislikedTraits:  []Trait{TraitAggression},
	}
	// curiosity is not a similarity trait, so only the modifiers move
	assert.Equal(t, 45.0, Compatibility(a, b, element.Earth, prefs))

	b.Curiosity = 60
	b.Aggression = 60
	assert.Equal(t, 50.0, Compatibility(a, b, element.Earth, prefs), "60 is not above 60")
}

func TestCompatibilityIsDirectional(t *testing.T) {
	a := uniformTraits(50)
	b := uniformTraits(50)
	fromFire := Compatibility(a, b, element.Water, PreferencesFor(element.Fire))
	fromEarth := Compatibility(b, a, element.Fire, PreferencesFor(element.Earth))
	assert.NotEqual(t, fromFire, fromEarth)
}

func TestCompatibilityClampsHigh(t *testing.T) {
	a := uniformTraits(100)
	a.Aggression = 0
	prefs := Preferences{
		PreferredElements: []element.Element{element.Ice},
		PreferredTraits:   AllTraits,
	}
	assert.Equal(t, 100.0, Compatibility(a, a, element.Ice, prefs))
}

func TestCompatibilityRange(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 2000; i++ {
		ea := pick(r, element.All())
		eb := pick(r, element.All())
		a := RandomTraitsFor(r, ea)
		b := RandomTraitsFor(r, eb)
		score := Compatibility(a, b, eb, PreferencesFor(ea))
		require.GreaterOrEqual(t, score, -100.0)
		require.LessOrEqual(t, score, 100.0)
	}
}

func TestValueAlignmentIdentical(t *testing.T) {
	assert.Equal(t, 100.0, ValueAlignment(uniformValues(50), uniformValues(50)))
}

func TestValueAlignmentSharedHonorClamps(t *testing.T) {
	a := withValue(uniformValues(50), ValueHonor, 85)
	b := withValue(uniformValues(50), ValueHonor, 80)
	assert.Equal(t, 100.0, ValueAlignment(a, b))
}

func TestValueAlignmentConflictPairs(t *testing.T) {
	a := withValue(uniformValues(0), ValueHonor, 85)
	b := withValue(uniformValues(100), ValueHonor, 80)
	// 9.5 similarity, four conflict pairs at -10, shared honor +15
	assert.InDelta(t, -15.5, ValueAlignment(a, b), 1e-9)
}

func TestValueAlignmentClashPenalty(t *testing.T) {
	a := withValue(uniformValues(0), ValueFreedom, 90)
	b := withValue(uniformValues(100), ValueCommunity, 90)
	// 10 similarity, three conflict pairs at -10, freedom/community clash -20
	assert.InDelta(t, -40.0, ValueAlignment(a, b), 1e-9)

	// reversed, the clash no longer applies: a's freedom is read against b's community only
	assert.InDelta(t, -30.0, ValueAlignment(b, a), 1e-9)
}

func TestValueAlignmentRange(t *testing.T) {
	r := NewRand(11)
	for i := 0; i < 2000; i++ {
		a := RandomValuesFor(r, pick(r, element.All()))
		b := RandomValuesFor(r, pick(r, element.All()))
		score := ValueAlignment(a, b)
		require.GreaterOrEqual(t, score, -100.0)
		require.LessOrEqual(t, score, 100.0)
	}
}

func TestInteractionStylePriority(t *testing.T) {
	tests := []struct {
		name   string
		traits Traits
		want   Style
	}{
		{"aggression wins", Traits{Aggression: 71, Friendliness: 90, Playfulness: 90}, StyleAggressive},
		{"playful", Traits{Friendliness: 71, Playfulness: 61, Sociability: 10}, StylePlayful},
		{"friendly", Traits{Friendliness: 71, Playfulness: 60}, StyleFriendly},
		{"shy", Traits{Sociability: 29, Curiosity: 90}, StyleShy},
		{"curious", Traits{Sociability: 30, Curiosity: 71}, StyleCurious},
		{"serious", uniformTraits(50), StyleSerious},
		{"boundaries are strict", Traits{Aggression: 70, Friendliness: 70, Sociability: 30, Curiosity: 70}, StyleSerious},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InteractionStyle(tt.traits))
		})
	}
}
