package dragon

import "dragon-clan/element"

// Preferences modify how a dragon perceives others. All lists may be empty.
type Preferences struct {
	PreferredElements []element.Element `json:"preferredElements,omitempty" yaml:"preferredElements,omitempty"`
	DislikedElements  []element.Element `json:"dislikedElements,omitempty" yaml:"dislikedElements,omitempty"`
	PreferredTraits   []Trait           `json:"preferredTraits,omitempty" yaml:"preferredTraits,omitempty"`
	DislikedTraits    []Trait           `json:"dislikedTraits,omitempty" yaml:"dislikedTraits,omitempty"`
}

var elementPreferences = map[element.Element]Preferences{
	element.Fire: {
		PreferredElements: []element.Element{element.Fire, element.Lightning},
		DislikedElements:  []element.Element{element.Water, element.Ice},
	},
	element.Water: {
		PreferredElements: []element.Element{element.Water, element.Ice},
		DislikedElements:  []element.Element{element.Fire, element.Lightning},
	},
	element.Earth: {
		PreferredElements: []element.Element{element.Earth, element.Wind},
	},
	element.Wind: {
		PreferredElements: []element.Element{element.Wind, element.Lightning},
	},
	element.Lightning: {
		PreferredElements: []element.Element{element.Lightning, element.Fire},
		DislikedElements:  []element.Element{element.Earth},
	},
	element.Ice: {
		PreferredElements: []element.Element{element.Ice, element.Water},
		DislikedElements:  []element.Element{element.Fire},
	},
}

// PreferencesFor returns the hard-coded element preferences seeded into
// randomly generated dragons.
func PreferencesFor(e element.Element) Preferences {
	return elementPreferences[e].clone()
}

func (p Preferences) clone() Preferences {
	return Preferences{
		PreferredElements: append([]element.Element(nil), p.PreferredElements...),
		DislikedElements:  append([]element.Element(nil), p.DislikedElements...),
		PreferredTraits:   append([]Trait(nil), p.PreferredTraits...),
		DislikedTraits:    append([]Trait(nil), p.DislikedTraits...),
	}
}

// Validate rejects trait entries that do not name a real trait.
func (p Preferences) Validate() error {
	for _, list := range [][]Trait{p.PreferredTraits, p.DislikedTraits} {
		for _, t := range list {
			if _, ok := TraitDictionary[t]; !ok {
				return &InvalidProfileError{Kind: "trait", Field: t.String(), Unknown: true}
			}
		}
	}
	return nil
}
