package main

import (
	"encoding/json"
	"errors"

	"dragon-clan/replay"
)

type replayRequest struct {
	Spec replay.Spec `json:"spec"`
}

type replayResponse struct {
	OK    bool                `json:"ok"`
	Tape  *replay.WireTape    `json:"tape,omitempty"`
	Error *replay.ReplayError `json:"error,omitempty"`
}

func requestError(reason, message string) replayResponse {
	return replayResponse{
		OK:    false,
		Error: &replay.ReplayError{StepIndex: -1, Reason: reason, Message: message},
	}
}

func handleReplay(raw string) replayResponse {
	var req replayRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		return requestError("invalid_json", err.Error())
	}

	tape, err := replay.GenerateTape(req.Spec)
	if err != nil {
		var replayErr *replay.ReplayError
		if errors.As(err, &replayErr) {
			return replayResponse{OK: false, Error: replayErr}
		}
		return requestError("replay_generation_failed", err.Error())
	}
	return replayResponse{
		OK:   true,
		Tape: replay.ToWireTape(tape),
	}
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		b2, _ := json.Marshal(requestError("marshal_failed", err.Error()))
		return string(b2)
	}
	return string(b)
}
