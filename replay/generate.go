package replay

import (
	"encoding/base64"
	"errors"
	"fmt"

	"google.golang.org/protobuf/proto"

	"dragon-clan/clan"
	"dragon-clan/dragon"
)

// GenerateTape replays spec on a fresh clan. The same spec always yields a
// deeply equal tape.
func GenerateTape(spec Spec, opts ...clan.Option) (*Tape, error) {
	ns, err := normalizeSpec(spec)
	if err != nil {
		return nil, err
	}

	cfg := clan.DefaultConfig()
	cfg.Name = ns.clanName
	cfg.Seed = ns.seed
	cfg.InitialDragons = 0

	b := newTapeBuilder(ns.seed)
	opts = append(append([]clan.Option(nil), opts...),
		clan.WithListener(clan.EventDragonAdded, func(ev clan.Event) { b.addDragon(ev.Dragon) }),
		clan.WithListener(clan.EventInteractionSimulated, func(ev clan.Event) { b.addInteraction(ev.Interaction) }),
	)
	c, err := clan.New(cfg, opts...)
	if err != nil {
		return nil, specError(ReasonSimulationFailed, "create clan: %v", err)
	}

	if len(ns.roster.Dragons) > 0 {
		if _, err := c.LoadRoster(ns.roster, ns.strict); err != nil {
			return nil, rosterError(err)
		}
	}
	if ns.randomDragons > 0 {
		if _, err := c.Populate(ns.randomDragons); err != nil {
			return nil, specError(ReasonInvalidRoster, "add random dragons: %v", err)
		}
	}

	for i, step := range ns.steps {
		from, err := c.IndexOf(step.dragon)
		if err != nil {
			return nil, stepError(i, ReasonUnknownDragon, "%v", err)
		}
		to, err := c.IndexOf(step.other)
		if err != nil {
			return nil, stepError(i, ReasonUnknownDragon, "%v", err)
		}
		if _, err := c.InteractBetween(from, to); err != nil {
			return nil, stepError(i, ReasonSimulationFailed, "%v", err)
		}
	}
	if ns.randomSteps > 0 {
		if _, err := c.SimulateInteractions(ns.randomSteps); err != nil {
			if errors.Is(err, clan.ErrNotEnoughDragons) {
				return nil, specError(ReasonNotEnoughDragons, "%v", err)
			}
			return nil, specError(ReasonSimulationFailed, "%v", err)
		}
	}

	matrix := c.Matrix()
	b.addRelationships(matrix)
	if b.err != nil {
		return nil, specError(ReasonSimulationFailed, "encode tape: %v", b.err)
	}
	return &Tape{
		TapeVersion: TapeVersion,
		ClanName:    c.Name(),
		Seed:        ns.seed,
		Dragons:     c.Dragons(),
		Events:      b.events,
		Final:       matrix,
	}, nil
}

func rosterError(err error) *ReplayError {
	var invalid *dragon.InvalidProfileError
	if errors.As(err, &invalid) {
		return specError(ReasonInvalidDragon, "%v", err)
	}
	return specError(ReasonInvalidRoster, "%v", err)
}

type tapeBuilder struct {
	seed   int64
	seq    uint64
	events []Event
	err    error
}

func newTapeBuilder(seed int64) *tapeBuilder {
	return &tapeBuilder{seed: seed, events: make([]Event, 0, 64)}
}

func (b *tapeBuilder) addDragon(info *clan.DragonInfo) {
	b.push(Event{Type: EventDragonAdded, Dragon: info})
}

func (b *tapeBuilder) addInteraction(ev *clan.InteractionEvent) {
	b.push(Event{Type: EventInteraction, Interaction: ev})
}

func (b *tapeBuilder) addRelationships(matrix [][]float64) {
	b.push(Event{Type: EventRelationships, Relationships: matrix})
}

func (b *tapeBuilder) push(ev Event) {
	b.seq++
	ev.Seq = b.seq
	env, err := envelopeFor(ev, b.seed)
	if err == nil {
		var bin []byte
		// struct fields are a proto map; keep bytes stable across runs
		bin, err = proto.MarshalOptions{Deterministic: true}.Marshal(env)
		ev.EnvelopeB64 = base64.StdEncoding.EncodeToString(bin)
	}
	if err != nil && b.err == nil {
		b.err = fmt.Errorf("event %d: %w", ev.Seq, err)
	}
	b.events = append(b.events, ev)
}
