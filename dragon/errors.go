package dragon

import (
	"errors"
	"fmt"
)

var (
	ErrSelfInteraction = errors.New("a dragon cannot interact with itself")
	ErrNoRelationship  = errors.New("no relationship exists yet")
)

// InvalidProfileError reports a trait or value field outside [0,100], or a
// field name that does not exist.
type InvalidProfileError struct {
	Kind  string // "trait" or "value"
	Field string
	Value int
	// Unknown is set when Field is not a known name.
	Unknown bool
}

func (e *InvalidProfileError) Error() string {
	if e.Unknown {
		return fmt.Sprintf("invalid profile: unknown %s %q", e.Kind, e.Field)
	}
	return fmt.Sprintf("invalid profile: %s %s=%d outside [0,100]", e.Kind, e.Field, e.Value)
}
