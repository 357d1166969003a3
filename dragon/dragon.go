package dragon

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"dragon-clan/element"
)

// Mood is a dragon's current disposition.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodContent Mood = "content"
	MoodTired   Mood = "tired"
	MoodHungry  Mood = "hungry"
	MoodExcited Mood = "excited"
)

const (
	maxEnergy   = 100
	restEnergy  = 20
	happyEnergy = 80
)

// Dragon is one simulated agent. It owns its view of every other dragon it
// has met; that view is never shared or synchronized with the other side.
type Dragon struct {
	ID          uuid.UUID
	Name        string
	Element     element.Element
	Age         int
	Energy      int
	Mood        Mood
	Traits      Traits
	Values      Values
	Preferences Preferences

	relationships map[uuid.UUID]*Relationship
}

// Options describes a dragon to create. Nil profile fields are drawn at
// random with element bias; supplied ones are clamped into [0,100].
type Options struct {
	ID          uuid.UUID
	Name        string
	Element     element.Element
	Age         int
	Traits      *Traits
	Values      *Values
	Preferences *Preferences
}

// New builds a dragon. Identifiers are drawn from r when opts.ID is zero so
// seeded runs assign the same ids.
func New(opts Options, r Rand) (*Dragon, error) {
	if !opts.Element.Valid() {
		return nil, fmt.Errorf("dragon %q: invalid element %d", opts.Name, byte(opts.Element))
	}
	if opts.Age < 0 {
		opts.Age = 0
	}
	id := opts.ID
	if id == uuid.Nil {
		var err error
		id, err = uuid.NewRandomFromReader(randReader{r})
		if err != nil {
			return nil, fmt.Errorf("dragon %q: generate id: %w", opts.Name, err)
		}
	}

	d := &Dragon{
		ID:            id,
		Name:          opts.Name,
		Element:       opts.Element,
		Age:           opts.Age,
		Energy:        maxEnergy,
		Mood:          MoodContent,
		relationships: make(map[uuid.UUID]*Relationship),
	}
	if opts.Traits != nil {
		d.Traits = opts.Traits.Clamp()
	} else {
		d.Traits = RandomTraitsFor(r, opts.Element)
	}
	if opts.Values != nil {
		d.Values = opts.Values.Clamp()
	} else {
		d.Values = RandomValuesFor(r, opts.Element)
	}
	if opts.Preferences != nil {
		if err := opts.Preferences.Validate(); err != nil {
			return nil, fmt.Errorf("dragon %q: %w", opts.Name, err)
		}
		d.Preferences = opts.Preferences.clone()
	} else {
		d.Preferences = PreferencesFor(opts.Element)
	}
	return d, nil
}

// Style is the dragon's interaction style derived from its traits.
func (d *Dragon) Style() Style { return InteractionStyle(d.Traits) }

// CompatibilityWith is raw trait compatibility as perceived by d.
func (d *Dragon) CompatibilityWith(other *Dragon) float64 {
	return Compatibility(d.Traits, other.Traits, other.Element, d.Preferences)
}

// ValueAlignmentWith compares d's values against other's, in that order.
func (d *Dragon) ValueAlignmentWith(other *Dragon) float64 {
	return ValueAlignment(d.Values, other.Values)
}

// Relationship returns d's view of other, or ErrNoRelationship if they have
// never met. The returned value is a copy.
func (d *Dragon) Relationship(other *Dragon) (Relationship, error) {
	rel, ok := d.relationships[other.ID]
	if !ok {
		return Relationship{}, ErrNoRelationship
	}
	return *rel, nil
}

// Opinion is d's current opinion of other, 0 before first contact.
func (d *Dragon) Opinion(other *Dragon) float64 {
	if rel, ok := d.relationships[other.ID]; ok {
		return rel.Opinion
	}
	return 0
}

// Summary describes d's view of other using the fixed opinion bands.
func (d *Dragon) Summary(other *Dragon) Summary {
	return summarize(d.relationships[other.ID])
}

// RelationshipInfo is Summary rendered for display.
func (d *Dragon) RelationshipInfo(other *Dragon) string {
	return d.Summary(other).String()
}

// Known returns the ids of every dragon d holds a relationship with, sorted.
func (d *Dragon) Known() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(d.relationships))
	for id := range d.relationships {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

// Forget drops d's relationship with the dragon identified by id.
func (d *Dragon) Forget(id uuid.UUID) {
	delete(d.relationships, id)
}

func (d *Dragon) relationshipWith(other *Dragon) *Relationship {
	rel, ok := d.relationships[other.ID]
	if !ok {
		rel = newRelationshipFromCompatibility(d.CompatibilityWith(other))
		d.relationships[other.ID] = rel
	}
	return rel
}

// Rest restores energy. A well-rested dragon becomes happy.
func (d *Dragon) Rest() {
	d.Energy = min(maxEnergy, d.Energy+restEnergy)
	if d.Energy > happyEnergy {
		d.Mood = MoodHappy
	}
}

// Info is a one-line description of the dragon.
func (d *Dragon) Info() string {
	return fmt.Sprintf("%s - %s Dragon, Age: %d, Energy: %d%%, Mood: %s, Style: %s",
		d.Name, d.Element, d.Age, d.Energy, d.Mood, d.Style())
}

func (d *Dragon) String() string { return d.Name }
