package clan

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"dragon-clan/dragon"
	"dragon-clan/element"
)

// Roster is a predefined set of dragons, loaded from YAML or JSON.
type Roster struct {
	Name    string         `yaml:"name,omitempty" json:"name,omitempty"`
	Dragons []RosterDragon `yaml:"dragons" json:"dragons"`
}

// RosterDragon describes one dragon. Traits and values are partial maps
// keyed by name; missing fields are drawn at random with element bias.
// A nil Age draws from the clan's age range.
type RosterDragon struct {
	Name        string              `yaml:"name" json:"name"`
	Element     element.Element     `yaml:"element" json:"element"`
	Age         *int                `yaml:"age,omitempty" json:"age,omitempty"`
	Traits      map[string]int      `yaml:"traits,omitempty" json:"traits,omitempty"`
	Values      map[string]int      `yaml:"values,omitempty" json:"values,omitempty"`
	Preferences *dragon.Preferences `yaml:"preferences,omitempty" json:"preferences,omitempty"`
}

// LoadRosterFile reads a roster file. JSON is accepted as YAML.
func LoadRosterFile(path string) (Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Roster{}, fmt.Errorf("read roster file: %w", err)
	}
	return ParseRoster(data)
}

func ParseRoster(data []byte) (Roster, error) {
	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Roster{}, fmt.Errorf("parse roster: %w", err)
	}
	return r, nil
}

func checkScore(kind, field string, v int, strict bool) error {
	if strict && (v < 0 || v > 100) {
		return &dragon.InvalidProfileError{Kind: kind, Field: field, Value: v}
	}
	return nil
}

// options resolves rd into dragon options, drawing unspecified fields from r.
// Out-of-range scores are clamped unless strict is set.
func (rd RosterDragon) options(r dragon.Rand, strict bool) (dragon.Options, error) {
	traits := dragon.RandomTraitsFor(r, rd.Element)
	for _, name := range slices.Sorted(maps.Keys(rd.Traits)) {
		v := rd.Traits[name]
		t, err := dragon.ParseTrait(name)
		if err != nil {
			return dragon.Options{}, err
		}
		if err := checkScore("trait", t.String(), v, strict); err != nil {
			return dragon.Options{}, err
		}
		traits.Set(t, v)
	}
	values := dragon.RandomValuesFor(r, rd.Element)
	for _, name := range slices.Sorted(maps.Keys(rd.Values)) {
		v := rd.Values[name]
		val, err := dragon.ParseValue(name)
		if err != nil {
			return dragon.Options{}, err
		}
		if err := checkScore("value", val.String(), v, strict); err != nil {
			return dragon.Options{}, err
		}
		values.Set(val, v)
	}
	return dragon.Options{
		Name:        rd.Name,
		Element:     rd.Element,
		Traits:      &traits,
		Values:      &values,
		Preferences: rd.Preferences,
	}, nil
}

// LoadRoster adds every roster dragon to the clan, in order. A non-empty
// roster name renames the clan. Nothing is added if any entry is invalid.
func (c *Clan) LoadRoster(r Roster, strict bool) ([]DragonInfo, error) {
	c.mu.Lock()
	defer c.unlockAndDispatch()

	built := make([]*dragon.Dragon, 0, len(r.Dragons))
	for i, rd := range r.Dragons {
		if rd.Name == "" {
			return nil, fmt.Errorf("roster dragon %d: name is required", i)
		}
		opts, err := rd.options(c.rng, strict)
		if err != nil {
			return nil, fmt.Errorf("roster dragon %q: %w", rd.Name, err)
		}
		if rd.Age != nil {
			opts.Age = *rd.Age
		} else {
			opts.Age = c.randomAge()
		}
		d, err := dragon.New(opts, c.rng)
		if err != nil {
			return nil, fmt.Errorf("roster dragon %d: %w", i, err)
		}
		built = append(built, d)
	}

	if r.Name != "" && r.Name != c.name {
		c.metrics.dropClan(c.name)
		c.name = r.Name
	}
	out := make([]DragonInfo, 0, len(built))
	for _, d := range built {
		info, err := c.addLocked(d, true)
		if err != nil {
			return out, err
		}
		out = append(out, info)
	}
	c.logger.Info("roster loaded", slog.String("clan", c.name), slog.Int("dragons", len(out)))
	return out, nil
}
