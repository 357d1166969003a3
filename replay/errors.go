package replay

import "fmt"

// Stable reason codes carried by ReplayError.
const (
	ReasonInvalidVersion   = "invalid_version"
	ReasonInvalidRoster    = "invalid_roster"
	ReasonInvalidDragon    = "invalid_dragon"
	ReasonDuplicateName    = "duplicate_name"
	ReasonUnknownDragon    = "unknown_dragon"
	ReasonSelfInteraction  = "self_interaction"
	ReasonNotEnoughDragons = "not_enough_dragons"
	ReasonInvalidSteps     = "invalid_steps"
	ReasonSimulationFailed = "simulation_failed"
)

// ReplayError reports why a spec could not be replayed. StepIndex is -1 for
// problems outside the scripted steps.
type ReplayError struct {
	StepIndex int32  `json:"step_index"`
	Reason    string `json:"reason"`
	Message   string `json:"message"`
}

func (e *ReplayError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("replay error(step=%d reason=%s): %s", e.StepIndex, e.Reason, e.Message)
}

func specError(reason, format string, args ...any) *ReplayError {
	return &ReplayError{StepIndex: -1, Reason: reason, Message: fmt.Sprintf(format, args...)}
}

func stepError(step int, reason, format string, args ...any) *ReplayError {
	return &ReplayError{StepIndex: int32(step), Reason: reason, Message: fmt.Sprintf(format, args...)}
}
