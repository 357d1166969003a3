package dragon

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"dragon-clan/element"
)

// fixedRand returns the same fraction on every draw.
type fixedRand struct{ f float64 }

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(n int) int   { return int(r.f * float64(n)) }

func uniformTraits(v int) Traits {
	return Traits{
		Friendliness: v, Aggression: v, Sociability: v, Curiosity: v,
		Playfulness: v, Dominance: v, Patience: v,
	}
}

func uniformValues(v int) Values {
	var vs Values
	for _, val := range AllValues {
		vs.Set(val, v)
	}
	return vs
}

func withValue(vs Values, v Value, score int) Values {
	vs.Set(v, score)
	return vs
}

// newTestDragon builds a dragon with a fully specified profile and no
// preferences.
func newTestDragon(t *testing.T, r *rand.Rand, name string, e element.Element, traits Traits, values Values) *Dragon {
	t.Helper()
	d, err := New(Options{
		Name:        name,
		Element:     e,
		Age:         100,
		Traits:      &traits,
		Values:      &values,
		Preferences: &Preferences{},
	}, r)
	require.NoError(t, err)
	return d
}
