package dragon

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dragon-clan/element"
)

var (
	lowSimilarity = Traits{
		Friendliness: 0, Aggression: 50, Sociability: 0, Curiosity: 50,
		Playfulness: 0, Dominance: 50, Patience: 0,
	}
	highSimilarity = Traits{
		Friendliness: 100, Aggression: 50, Sociability: 100, Curiosity: 50,
		Playfulness: 100, Dominance: 50, Patience: 100,
	}
)

func TestInteractWithWarmScenario(t *testing.T) {
	r := NewRand(1)
	ember := newTestDragon(t, r, "Ember", element.Fire, peacefulPlayful, uniformValues(50))
	blaze := newTestDragon(t, r, "Blaze", element.Fire, peacefulPlayful, uniformValues(50))

	out, err := ember.InteractWith(blaze, r)
	require.NoError(t, err)

	assert.Equal(t, KindWarm, out.Kind)
	assert.Equal(t, 70.0, out.Compatibility)
	assert.Equal(t, 76.3, roundTenth(out.AdjustedCompatibility))
	assert.Equal(t, 100.0, out.ValueAlignment)
	// both playful 12, +1 for a starting opinion of 21
	assert.Equal(t, 13, out.OpinionChange)
	assert.GreaterOrEqual(t, out.OpinionChange, 7)
	assert.Equal(t, "Ember and Blaze chase each other through the clouds, laughing", out.Description)

	rel, err := ember.Relationship(blaze)
	require.NoError(t, err)
	assert.Equal(t, 30.3, rel.Opinion)
	assert.Equal(t, 49.0, rel.TargetOpinion)
	assert.Equal(t, 1, rel.InteractionCount)
	assert.Equal(t, out.Description, rel.LastInteraction)

	_, err = blaze.Relationship(ember)
	assert.ErrorIs(t, err, ErrNoRelationship, "the other side is untouched")

	back, err := blaze.InteractWith(ember, r)
	require.NoError(t, err)
	assert.Equal(t, KindWarm, back.Kind)
	assert.GreaterOrEqual(t, back.OpinionChange, 7)
}

func TestInteractWithHonorPreemptsWarm(t *testing.T) {
	r := NewRand(2)
	a := newTestDragon(t, r, "Ash", element.Earth, uniformTraits(50), withValue(uniformValues(50), ValueHonor, 85))
	b := newTestDragon(t, r, "Basalt", element.Earth, uniformTraits(50), withValue(uniformValues(50), ValueHonor, 80))

	out, err := a.InteractWith(b, r)
	require.NoError(t, err)
	assert.Equal(t, KindHonorBond, out.Kind)
	assert.Equal(t, 15, out.OpinionChange, "strong alignment adds the bonus")
	assert.Contains(t, []string{
		"Ash and Basalt swear an oath of mutual honor",
		"Ash and Basalt bond over their shared sense of honor",
	}, out.Description)
}

func TestInteractWithHonorWithoutAlignmentBonus(t *testing.T) {
	r := NewRand(3)
	a := newTestDragon(t, r, "Ash", element.Earth, uniformTraits(50), withValue(uniformValues(0), ValueHonor, 85))
	b := newTestDragon(t, r, "Basalt", element.Earth, uniformTraits(50), withValue(uniformValues(100), ValueHonor, 80))

	out, err := a.Evaluate(b, r)
	require.NoError(t, err)
	assert.InDelta(t, -15.5, out.ValueAlignment, 1e-9)
	assert.InDelta(t, 51.4, out.FinalCompatibility, 1e-9)
	assert.Equal(t, KindHonorBond, out.Kind, "value rules come before the warm band")
	assert.Equal(t, 10, out.OpinionChange)
}

func TestInteractWithSharedValueRules(t *testing.T) {
	tests := []struct {
		value Value
		kind  Kind
		delta int
	}{
		{ValueCommunity, KindCommunityCooperation, 12},
		{ValueHarmony, KindHarmonyPeacemaking, 9},
		{ValueWisdom, KindWisdomDiscussion, 10},
	}
	for _, tt := range tests {
		t.Run(tt.value.String(), func(t *testing.T) {
			r := NewRand(4)
			vs := withValue(uniformValues(50), tt.value, 80)
			a := newTestDragon(t, r, "Mist", element.Water, uniformTraits(50), vs)
			b := newTestDragon(t, r, "Rill", element.Water, uniformTraits(50), vs)

			out, err := a.Evaluate(b, r)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, out.Kind)
			assert.Equal(t, tt.delta, out.OpinionChange)
		})
	}
}

func TestInteractWithValueConflict(t *testing.T) {
	r := NewRand(5)
	a := newTestDragon(t, r, "Gale", element.Wind, lowSimilarity, withValue(uniformValues(0), ValueFreedom, 90))
	b := newTestDragon(t, r, "Cairn", element.Earth, highSimilarity, withValue(uniformValues(100), ValueCommunity, 90))

	out, err := a.InteractWith(b, r)
	require.NoError(t, err)
	assert.InDelta(t, -40.0, out.ValueAlignment, 1e-9)
	assert.Less(t, out.FinalCompatibility, 20.0)
	assert.Equal(t, KindValueConflict, out.Kind)
	assert.Equal(t, -5, out.OpinionChange)
	assert.Equal(t, "Gale chafes at Cairn's insistence on putting the clan first", out.Description)
}

func TestInteractWithHostile(t *testing.T) {
	r := NewRand(6)
	selfTraits := lowSimilarity
	selfTraits.Aggression = 90
	otherTraits := highSimilarity
	otherTraits.Aggression = 90

	a, err := New(Options{
		Name: "Tide", Element: element.Water, Age: 40,
		Traits: &selfTraits, Values: ptr(uniformValues(0)),
		Preferences: ptr(PreferencesFor(element.Water)),
	}, r)
	require.NoError(t, err)
	b := newTestDragon(t, r, "Cinder", element.Fire, otherTraits, uniformValues(100))

	for i := 0; i < 50; i++ {
		out, err := a.Evaluate(b, r)
		require.NoError(t, err)
		require.InDelta(t, -62.5, out.FinalCompatibility, 1e-9)
		require.Equal(t, KindHostile, out.Kind)
		require.GreaterOrEqual(t, out.OpinionChange, -20)
		require.LessOrEqual(t, out.OpinionChange, -15)
	}
}

func TestInteractWithCool(t *testing.T) {
	r := NewRand(7)
	a := newTestDragon(t, r, "Frost", element.Ice, lowSimilarity, uniformValues(0))
	b := newTestDragon(t, r, "Rime", element.Ice, highSimilarity, uniformValues(100))
	a.Preferences.DislikedElements = append(a.Preferences.DislikedElements, element.Ice)

	seen := map[int]bool{}
	for i := 0; i < 400; i++ {
		out, err := a.Evaluate(b, r)
		require.NoError(t, err)
		require.Equal(t, KindCool, out.Kind, "final %.1f", out.FinalCompatibility)
		require.GreaterOrEqual(t, out.OpinionChange, -2)
		require.LessOrEqual(t, out.OpinionChange, 1)
		seen[out.OpinionChange] = true
	}
	assert.Len(t, seen, 4)
}

func TestInteractWithModerateBranches(t *testing.T) {
	shy := uniformTraits(50)
	shy.Sociability = 20
	aggressive := uniformTraits(50)
	aggressive.Aggression = 80

	tests := []struct {
		name       string
		self       Traits
		selfEl     element.Element
		otherEl    element.Element
		min, max   int
		wantPrefix string
	}{
		{"shy", shy, element.Earth, element.Earth, 2, 3, "Self exchanges a few quiet words"},
		{"aggressive", aggressive, element.Earth, element.Earth, 3, 4, "Self challenges Other"},
		{"fire and water", uniformTraits(50), element.Fire, element.Water, 5, 6, "Self and Other have a friendly elemental discussion"},
		{"wind and earth", uniformTraits(50), element.Wind, element.Earth, 5, 6, "Self and Other collaborate on a project"},
		{"generic", uniformTraits(50), element.Earth, element.Earth, 2, 6, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRand(8)
			other := tt.self
			if tt.name == "aggressive" {
				other = uniformTraits(50)
			}
			a := newTestDragon(t, r, "Self", tt.selfEl, tt.self, uniformValues(0))
			b := newTestDragon(t, r, "Other", tt.otherEl, other, uniformValues(100))

			for i := 0; i < 100; i++ {
				out, err := a.Evaluate(b, r)
				require.NoError(t, err)
				require.Equal(t, KindModerate, out.Kind, "final %.1f", out.FinalCompatibility)
				require.GreaterOrEqual(t, out.OpinionChange, tt.min)
				require.LessOrEqual(t, out.OpinionChange, tt.max)
				if tt.wantPrefix != "" {
					require.Contains(t, out.Description, tt.wantPrefix)
				}
			}
		})
	}
}

func TestModerateTemplatesChosenUniformly(t *testing.T) {
	r := NewRand(9)
	a := newTestDragon(t, r, "Self", element.Earth, uniformTraits(50), uniformValues(0))
	b := newTestDragon(t, r, "Other", element.Earth, uniformTraits(50), uniformValues(100))

	const rounds = 4000
	counts := map[string]int{}
	for i := 0; i < rounds; i++ {
		out, err := a.Evaluate(b, r)
		require.NoError(t, err)
		counts[out.Description]++
	}
	require.Len(t, counts, len(moderateTemplates))
	for _, tmpl := range moderateTemplates {
		rate := float64(counts[fmt.Sprintf(tmpl, "Self", "Other")]) / rounds
		if rate < 0.20 || rate > 0.30 {
			t.Fatalf("template %q rate %.3f, want about 0.25", tmpl, rate)
		}
	}
}

func TestEvaluateDoesNotRecord(t *testing.T) {
	r := NewRand(10)
	a := newTestDragon(t, r, "A", element.Fire, peacefulPlayful, uniformValues(50))
	b := newTestDragon(t, r, "B", element.Fire, peacefulPlayful, uniformValues(50))

	_, err := a.Evaluate(b, r)
	require.NoError(t, err)
	_, err = a.Relationship(b)
	assert.ErrorIs(t, err, ErrNoRelationship)
	assert.Equal(t, 0.0, a.Opinion(b))
}

func TestSelfInteractionRejected(t *testing.T) {
	r := NewRand(11)
	a := newTestDragon(t, r, "Solo", element.Ice, uniformTraits(50), uniformValues(50))

	_, err := a.InteractWith(a, r)
	assert.ErrorIs(t, err, ErrSelfInteraction)
	_, err = a.Evaluate(a, r)
	assert.ErrorIs(t, err, ErrSelfInteraction)
	_, err = a.ApplyReciprocal(a, "x", 5, r)
	assert.ErrorIs(t, err, ErrSelfInteraction)
}

func TestInteractWithDeterministic(t *testing.T) {
	run := func() []Outcome {
		r := NewRand(2024)
		var dragons []*Dragon
		for i, e := range element.All() {
			d, err := New(Options{Name: fmt.Sprintf("D%d", i), Element: e, Age: 50 + i}, r)
			require.NoError(t, err)
			dragons = append(dragons, d)
		}
		var outcomes []Outcome
		for i := 0; i < 200; i++ {
			a := dragons[r.Intn(len(dragons))]
			b := dragons[r.Intn(len(dragons))]
			if a == b {
				continue
			}
			out, err := a.InteractWith(b, r)
			require.NoError(t, err)
			outcomes = append(outcomes, out)
		}
		return outcomes
	}

	first := run()
	second := run()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same seed produced different outcomes")
	}
}

func TestApplyReciprocal(t *testing.T) {
	r := NewRand(12)
	a := newTestDragon(t, r, "A", element.Fire, peacefulPlayful, uniformValues(50))
	b := newTestDragon(t, r, "B", element.Fire, peacefulPlayful, uniformValues(50))

	// 10 scaled by exactly 1.0, undamped on first contact
	applied, err := b.ApplyReciprocal(a, "played tag", 10, fixedRand{0.5})
	require.NoError(t, err)
	assert.Equal(t, 10.0, applied)

	rel, err := b.Relationship(a)
	require.NoError(t, err)
	assert.Equal(t, 1, rel.InteractionCount)
	assert.Equal(t, "played tag", rel.LastInteraction)
	// start 21, then 21*0.4 + 31*0.5 + 4.9
	assert.Equal(t, 28.8, rel.Opinion)

	assert.Equal(t, 0.0, a.Opinion(b), "initiator is untouched")
}

func TestApplyReciprocalScalingRange(t *testing.T) {
	r := NewRand(13)
	a := newTestDragon(t, r, "A", element.Earth, uniformTraits(50), uniformValues(50))
	b := newTestDragon(t, r, "B", element.Earth, uniformTraits(50), uniformValues(50))

	for i := 0; i < 40; i++ {
		rel, _ := b.Relationship(a)
		damp := ReciprocalDecay(rel.InteractionCount)
		applied, err := b.ApplyReciprocal(a, "x", 10, r)
		require.NoError(t, err)
		require.GreaterOrEqual(t, applied, 8*damp-1e-9)
		require.LessOrEqual(t, applied, 12*damp+1e-9)
	}
	rel, err := b.Relationship(a)
	require.NoError(t, err)
	assert.Equal(t, 40, rel.InteractionCount)
}

func ptr[T any](v T) *T { return &v }
