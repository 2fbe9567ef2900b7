package maze

import (
	"fmt"

	"github.com/san-kum/mazegen/internal/grid"
)

// ValidatePrefix checks that events could have been emitted, in order, by a
// walk from start: every cell is in range, each event joins adjacent cells,
// its From is already explored and its To is not. Together these make every
// prefix a single tree rooted at start.
func ValidatePrefix(g *grid.Graph, start grid.Cell, events []Event) error {
	_, err := replayExplored(g, start, events)
	return err
}

// Validate checks a complete generation: ValidatePrefix plus exactly W*H-1
// events reaching every cell.
func Validate(g *grid.Graph, start grid.Cell, events []Event) error {
	explored, err := replayExplored(g, start, events)
	if err != nil {
		return err
	}
	if len(events) != g.Len()-1 {
		return fmt.Errorf("%w: %d events for %d cells", ErrNotSpanning, len(events), g.Len())
	}
	for i, ok := range explored {
		if !ok {
			return fmt.Errorf("%w: %v never reached", ErrNotSpanning, g.Coordinate(i))
		}
	}
	return nil
}

func replayExplored(g *grid.Graph, start grid.Cell, events []Event) ([]bool, error) {
	if err := g.Check(start); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	explored := make([]bool, g.Len())
	explored[g.Index(start)] = true

	for i, ev := range events {
		if err := g.Check(ev.From); err != nil {
			return nil, &EventError{Index: i, Event: ev, Wrapped: err}
		}
		if err := g.Check(ev.To); err != nil {
			return nil, &EventError{Index: i, Event: ev, Wrapped: err}
		}
		if !g.Adjacent(ev.From, ev.To) {
			return nil, &EventError{Index: i, Event: ev, Wrapped: ErrNotAdjacent}
		}
		if !explored[g.Index(ev.From)] {
			return nil, &EventError{Index: i, Event: ev, Wrapped: ErrCausality}
		}
		if explored[g.Index(ev.To)] {
			return nil, &EventError{Index: i, Event: ev, Wrapped: ErrRediscovered}
		}
		explored[g.Index(ev.To)] = true
	}
	return explored, nil
}
