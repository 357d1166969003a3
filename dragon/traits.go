package dragon

import (
	"fmt"
	"strings"

	"dragon-clan/element"
)

// Trait names one of the seven personality fields.
type Trait byte

const (
	TraitFriendliness Trait = iota + 1
	TraitAggression
	TraitSociability
	TraitCuriosity
	TraitPlayfulness
	TraitDominance
	TraitPatience
)

var TraitDictionary = map[Trait]string{
	TraitFriendliness: "friendliness",
	TraitAggression:   "aggression",
	TraitSociability:  "sociability",
	TraitCuriosity:    "curiosity",
	TraitPlayfulness:  "playfulness",
	TraitDominance:    "dominance",
	TraitPatience:     "patience",
}

// AllTraits lists traits in declaration order.
var AllTraits = []Trait{
	TraitFriendliness, TraitAggression, TraitSociability, TraitCuriosity,
	TraitPlayfulness, TraitDominance, TraitPatience,
}

func (t Trait) String() string {
	if name, ok := TraitDictionary[t]; ok {
		return name
	}
	return fmt.Sprintf("trait(%d)", byte(t))
}

// ParseTrait resolves a trait by name (case-insensitive).
func ParseTrait(raw string) (Trait, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	for _, t := range AllTraits {
		if TraitDictionary[t] == s {
			return t, nil
		}
	}
	return 0, &InvalidProfileError{Kind: "trait", Field: raw, Unknown: true}
}

func (t Trait) MarshalText() ([]byte, error) {
	if _, ok := TraitDictionary[t]; !ok {
		return nil, fmt.Errorf("cannot marshal unknown trait %d", byte(t))
	}
	return []byte(t.String()), nil
}

func (t *Trait) UnmarshalText(text []byte) error {
	parsed, err := ParseTrait(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Traits is a dragon's personality. Every field is in [0,100].
type Traits struct {
	Friendliness int `json:"friendliness" yaml:"friendliness"`
	Aggression   int `json:"aggression" yaml:"aggression"`
	Sociability  int `json:"sociability" yaml:"sociability"`
	Curiosity    int `json:"curiosity" yaml:"curiosity"`
	Playfulness  int `json:"playfulness" yaml:"playfulness"`
	Dominance    int `json:"dominance" yaml:"dominance"`
	Patience     int `json:"patience" yaml:"patience"`
}

func (t *Traits) field(trait Trait) *int {
	switch trait {
	case TraitFriendliness:
		return &t.Friendliness
	case TraitAggression:
		return &t.Aggression
	case TraitSociability:
		return &t.Sociability
	case TraitCuriosity:
		return &t.Curiosity
	case TraitPlayfulness:
		return &t.Playfulness
	case TraitDominance:
		return &t.Dominance
	case TraitPatience:
		return &t.Patience
	}
	return nil
}

// Get returns the score for trait, or 0 for an unknown trait.
func (t Traits) Get(trait Trait) int {
	if p := t.field(trait); p != nil {
		return *p
	}
	return 0
}

// Set stores a clamped score for trait. Unknown traits are ignored.
func (t *Traits) Set(trait Trait, v int) {
	if p := t.field(trait); p != nil {
		*p = clampInt(v, 0, 100)
	}
}

func (t *Traits) add(trait Trait, delta int) {
	t.Set(trait, t.Get(trait)+delta)
}

// Clamp returns a copy with every field forced into [0,100].
func (t Traits) Clamp() Traits {
	out := t
	for _, trait := range AllTraits {
		out.Set(trait, t.Get(trait))
	}
	return out
}

// Validate reports the first field outside [0,100].
func (t Traits) Validate() error {
	for _, trait := range AllTraits {
		if v := t.Get(trait); v < 0 || v > 100 {
			return &InvalidProfileError{Kind: "trait", Field: trait.String(), Value: v}
		}
	}
	return nil
}

// RandomTraits draws every trait from the midpoint-biased distribution.
func RandomTraits(r Rand) Traits {
	var t Traits
	for _, trait := range AllTraits {
		t.Set(trait, randomScore(r))
	}
	return t
}

type adjustment[K comparable] struct {
	field K
	delta int
}

var traitAdjustments = map[element.Element][]adjustment[Trait]{
	element.Fire:      {{TraitAggression, 20}, {TraitDominance, 15}},
	element.Water:     {{TraitPatience, 20}, {TraitFriendliness, 15}},
	element.Earth:     {{TraitPatience, 25}, {TraitCuriosity, -15}},
	element.Wind:      {{TraitCuriosity, 20}, {TraitPlayfulness, 15}},
	element.Lightning: {{TraitAggression, 15}, {TraitCuriosity, 20}},
	element.Ice:       {{TraitSociability, -20}, {TraitPatience, 25}},
}

// ForElement applies the element's fixed directional adjustments.
func (t Traits) ForElement(e element.Element) Traits {
	out := t
	for _, adj := range traitAdjustments[e] {
		out.add(adj.field, adj.delta)
	}
	return out
}

// RandomTraitsFor draws random traits biased by element.
func RandomTraitsFor(r Rand, e element.Element) Traits {
	return RandomTraits(r).ForElement(e)
}
