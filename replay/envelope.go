package replay

import (
	"encoding/base64"
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"dragon-clan/clan"
)

func dragonPayload(d *clan.DragonInfo) map[string]any {
	return map[string]any{
		"index":   d.Index,
		"id":      d.ID.String(),
		"name":    d.Name,
		"element": d.Element.String(),
		"age":     d.Age,
		"energy":  d.Energy,
		"mood":    string(d.Mood),
		"style":   d.Style,
	}
}

func interactionPayload(ev *clan.InteractionEvent) map[string]any {
	return map[string]any{
		"seq":              ev.Seq,
		"dragonIndex":      ev.DragonIndex,
		"otherIndex":       ev.OtherIndex,
		"dragon":           ev.Dragon,
		"other":            ev.Other,
		"description":      ev.Description,
		"opinionChange":    ev.OpinionChange,
		"reciprocalChange": ev.ReciprocalChange,
		"kind":             ev.Kind.String(),
	}
}

func matrixPayload(matrix [][]float64) []any {
	rows := make([]any, len(matrix))
	for i, row := range matrix {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		rows[i] = cells
	}
	return rows
}

// envelopeFor wraps one tape event in a protobuf Struct:
// {type, seq, seed, payload}.
func envelopeFor(ev Event, seed int64) (*structpb.Struct, error) {
	var payload any
	switch {
	case ev.Dragon != nil:
		payload = dragonPayload(ev.Dragon)
	case ev.Interaction != nil:
		payload = interactionPayload(ev.Interaction)
	case ev.Relationships != nil:
		payload = map[string]any{"matrix": matrixPayload(ev.Relationships)}
	default:
		payload = map[string]any{}
	}
	return structpb.NewStruct(map[string]any{
		"type":    ev.Type,
		"seq":     ev.Seq,
		"seed":    fmt.Sprint(seed),
		"payload": payload,
	})
}

// DecodeEnvelope reverses the base64 protobuf encoding of a tape event.
func DecodeEnvelope(b64 string) (*structpb.Struct, error) {
	bin, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("decode envelope base64: %w", err)
	}
	env := &structpb.Struct{}
	if err := proto.Unmarshal(bin, env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	return env, nil
}
