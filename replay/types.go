package replay

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"dragon-clan/clan"
)

const (
	SpecVersion = 1
	TapeVersion = 1
)

// Spec scripts a reproducible clan history. Scripted steps run first, then
// RandomSteps random interactions.
type Spec struct {
	Version       int                 `json:"version" yaml:"version"`
	Seed          int64               `json:"seed" yaml:"seed"`
	ClanName      string              `json:"clan_name,omitempty" yaml:"clan_name,omitempty"`
	Roster        []clan.RosterDragon `json:"roster,omitempty" yaml:"roster,omitempty"`
	RandomDragons int                 `json:"random_dragons,omitempty" yaml:"random_dragons,omitempty"`
	Strict        bool                `json:"strict,omitempty" yaml:"strict,omitempty"`
	Steps         []StepSpec          `json:"steps,omitempty" yaml:"steps,omitempty"`
	RandomSteps   int                 `json:"random_steps,omitempty" yaml:"random_steps,omitempty"`
}

// StepSpec names the initiating dragon and the one it approaches. Both must
// come from the roster.
type StepSpec struct {
	Dragon string `json:"dragon" yaml:"dragon"`
	Other  string `json:"other" yaml:"other"`
}

// LoadSpecFile reads a YAML or JSON spec.
func LoadSpecFile(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("read spec file: %w", err)
	}
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Spec{}, fmt.Errorf("parse spec: %w", err)
	}
	return spec, nil
}

type Tape struct {
	TapeVersion int               `json:"tape_version"`
	ClanName    string            `json:"clan_name"`
	Seed        int64             `json:"seed"`
	Dragons     []clan.DragonInfo `json:"dragons"`
	Events      []Event           `json:"events"`
	Final       [][]float64       `json:"final"`
}

// Event types on a tape.
const (
	EventDragonAdded   = "dragonAdded"
	EventInteraction   = "interaction"
	EventRelationships = "relationships"
)

type Event struct {
	Type          string                 `json:"type"`
	Seq           uint64                 `json:"seq"`
	Dragon        *clan.DragonInfo       `json:"dragon,omitempty"`
	Interaction   *clan.InteractionEvent `json:"interaction,omitempty"`
	Relationships [][]float64            `json:"relationships,omitempty"`
	EnvelopeB64   string                 `json:"envelope_b64,omitempty"`
}
