package replay

import "fmt"

type WireTape struct {
	TapeVersion int         `json:"tapeVersion"`
	ClanName    string      `json:"clanName"`
	Seed        int64       `json:"seed"`
	Dragons     int         `json:"dragons"`
	Events      []WireEvent `json:"events"`
}

type WireEvent struct {
	Type        string `json:"type"`
	Seq         uint64 `json:"seq"`
	EnvelopeB64 string `json:"envelopeB64"`
}

func ToWireTape(tape *Tape) *WireTape {
	if tape == nil {
		return nil
	}
	out := &WireTape{
		TapeVersion: tape.TapeVersion,
		ClanName:    tape.ClanName,
		Seed:        tape.Seed,
		Dragons:     len(tape.Dragons),
		Events:      make([]WireEvent, 0, len(tape.Events)),
	}
	for _, e := range tape.Events {
		out.Events = append(out.Events, WireEvent{
			Type:        e.Type,
			Seq:         e.Seq,
			EnvelopeB64: e.EnvelopeB64,
		})
	}
	return out
}

// DecodeWireEvent returns the event's envelope as plain Go values. It fails
// if the envelope disagrees with the event header.
func DecodeWireEvent(e WireEvent) (map[string]any, error) {
	env, err := DecodeEnvelope(e.EnvelopeB64)
	if err != nil {
		return nil, err
	}
	out := env.AsMap()
	if t, _ := out["type"].(string); t != e.Type {
		return nil, fmt.Errorf("event %d: envelope type %q does not match %q", e.Seq, t, e.Type)
	}
	if seq, _ := out["seq"].(float64); uint64(seq) != e.Seq {
		return nil, fmt.Errorf("event %d: envelope seq %v does not match", e.Seq, out["seq"])
	}
	return out, nil
}
