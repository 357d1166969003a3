package dragon

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dragon-clan/element"
)

func TestNewDrawsMissingProfile(t *testing.T) {
	d, err := New(Options{Name: "Pyra", Element: element.Fire, Age: 120}, NewRand(5))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, d.ID)
	assert.Equal(t, 100, d.Energy)
	assert.Equal(t, MoodContent, d.Mood)
	assert.NoError(t, d.Traits.Validate())
	assert.NoError(t, d.Values.Validate())
	assert.Equal(t, PreferencesFor(element.Fire), d.Preferences)
	assert.Empty(t, d.Known())
}

func TestNewClampsSuppliedProfile(t *testing.T) {
	traits := Traits{Friendliness: 150, Aggression: -5}
	values := Values{Honor: 101}
	d, err := New(Options{Name: "Odd", Element: element.Wind, Traits: &traits, Values: &values, Age: -3}, NewRand(1))
	require.NoError(t, err)

	assert.Equal(t, 100, d.Traits.Friendliness)
	assert.Equal(t, 0, d.Traits.Aggression)
	assert.Equal(t, 100, d.Values.Honor)
	assert.Equal(t, 0, d.Age)
	assert.Equal(t, 150, traits.Friendliness, "caller's copy is not modified")
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(Options{Name: "Nobody"}, NewRand(1))
	assert.Error(t, err)

	_, err = New(Options{
		Name:        "Picky",
		Element:     element.Ice,
		Preferences: &Preferences{PreferredTraits: []Trait{Trait(99)}},
	}, NewRand(1))
	var invalid *InvalidProfileError
	assert.ErrorAs(t, err, &invalid)
}

func TestNewSameSeedSameDragon(t *testing.T) {
	a, err := New(Options{Name: "Twin", Element: element.Lightning, Age: 30}, NewRand(77))
	require.NoError(t, err)
	b, err := New(Options{Name: "Twin", Element: element.Lightning, Age: 30}, NewRand(77))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	fixed := uuid.MustParse("6f1c28a4-1c1b-4d3d-bc3c-8f3fd1f0a001")
	c, err := New(Options{ID: fixed, Name: "Fixed", Element: element.Earth}, NewRand(1))
	require.NoError(t, err)
	assert.Equal(t, fixed, c.ID)
}

func TestOpinionSummaryAndForget(t *testing.T) {
	r := NewRand(3)
	a := newTestDragon(t, r, "Ember", element.Fire, peacefulPlayful, uniformValues(50))
	b := newTestDragon(t, r, "Blaze", element.Fire, peacefulPlayful, uniformValues(50))

	assert.Equal(t, 0.0, a.Opinion(b))
	assert.Equal(t, "😐 neutral (0/100, 0 interactions)", a.RelationshipInfo(b))

	_, err := a.InteractWith(b, r)
	require.NoError(t, err)

	assert.Equal(t, 30.3, a.Opinion(b))
	s := a.Summary(b)
	assert.Equal(t, "friendly", s.Status)
	assert.Equal(t, "🙂", s.Symbol)
	assert.Equal(t, 1, s.InteractionCount)
	assert.Equal(t, "🙂 friendly (30.3/100, 1 interactions)", a.RelationshipInfo(b))
	assert.Equal(t, []uuid.UUID{b.ID}, a.Known())

	a.Forget(b.ID)
	assert.Equal(t, 0.0, a.Opinion(b))
	assert.Empty(t, a.Known())
}

func TestRest(t *testing.T) {
	d, err := New(Options{Name: "Sleepy", Element: element.Earth}, NewRand(1))
	require.NoError(t, err)

	d.Energy = 50
	d.Mood = MoodTired
	d.Rest()
	assert.Equal(t, 70, d.Energy)
	assert.Equal(t, MoodTired, d.Mood)

	d.Rest()
	assert.Equal(t, 90, d.Energy)
	assert.Equal(t, MoodHappy, d.Mood)

	d.Rest()
	assert.Equal(t, 100, d.Energy)
}

func TestInfo(t *testing.T) {
	r := NewRand(1)
	d := newTestDragon(t, r, "Ember", element.Fire, peacefulPlayful, uniformValues(50))
	assert.Equal(t, "Ember - Fire Dragon, Age: 100, Energy: 100%, Mood: content, Style: playful", d.Info())
}

func TestCharacterSheet(t *testing.T) {
	r := NewRand(1)
	vs := uniformValues(40)
	vs.Wisdom = 95
	vs.Honor = 70
	d := newTestDragon(t, r, "Frost", element.Ice, peacefulPlayful, vs)

	sheet := d.CharacterSheet()
	assert.True(t, strings.HasPrefix(sheet, "Frost's Details:\n  Element: Ice\n  Age: 100\n"))
	assert.Contains(t, sheet, "  Style: playful\n")

	traitsBlock := sheet[strings.Index(sheet, "Traits:"):strings.Index(sheet, "Values:")]
	assert.Less(t, strings.Index(traitsBlock, "Friendliness: 80/100"), strings.Index(traitsBlock, "Patience: 70/100"))
	assert.Less(t, strings.Index(traitsBlock, "Patience: 70/100"), strings.Index(traitsBlock, "Aggression: 10/100"))

	valuesBlock := sheet[strings.Index(sheet, "Values:"):]
	lines := strings.Split(valuesBlock, "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "  Wisdom: 95/100", lines[1])
	assert.Equal(t, "  Honor: 70/100", lines[2])
	assert.Equal(t, "  Freedom: 40/100", lines[3])

	top := d.TopValues(1)
	assert.Equal(t, []ValueScore{{ValueWisdom, 95}}, top)
}
