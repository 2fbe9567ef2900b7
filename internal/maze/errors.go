package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyGenerated indicates Generate was called again without Reset.
	ErrAlreadyGenerated = errors.New("maze: generator already used (call Reset)")

	// ErrInvalidBias indicates a bias outside [0, 1].
	ErrInvalidBias = errors.New("maze: bias must be within [0, 1]")

	// ErrNotAdjacent indicates an event joining cells that do not share a side.
	ErrNotAdjacent = errors.New("maze: event cells are not adjacent")

	// ErrCausality indicates an event whose From cell was not yet explored.
	ErrCausality = errors.New("maze: event source not yet explored")

	// ErrRediscovered indicates a cell connected twice, which closes a cycle.
	ErrRediscovered = errors.New("maze: cell connected more than once")

	// ErrInvalidRuns indicates an ensemble with a negative run count.
	ErrInvalidRuns = errors.New("maze: ensemble run count must not be negative")

	// ErrNotSpanning indicates a sequence that leaves cells unconnected.
	ErrNotSpanning = errors.New("maze: events do not span the grid")
)

// EventError reports the position of the offending event in a sequence.
type EventError struct {
	Index   int
	Event   Event
	Wrapped error
}

func (e *EventError) Error() string {
	return fmt.Sprintf("event %d %v: %v", e.Index, e.Event, e.Wrapped)
}

func (e *EventError) Unwrap() error {
	return e.Wrapped
}
