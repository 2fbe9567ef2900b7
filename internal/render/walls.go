package render

import (
	"fmt"

	"github.com/san-kum/mazegen/internal/grid"
	"github.com/san-kum/mazegen/internal/maze"
)

// Walls holds, per cell, whether each side (indexed by grid.Direction) is
// closed, plus which cells have been reached so far.
type Walls struct {
	g       *grid.Graph
	closed  [][4]bool
	visited []bool
	opened  int
}

// NewWalls returns a fully walled grid with only start marked visited.
func NewWalls(g *grid.Graph, start grid.Cell) *Walls {
	w := &Walls{
		g:       g,
		closed:  make([][4]bool, g.Len()),
		visited: make([]bool, g.Len()),
	}
	for i := range w.closed {
		w.closed[i] = [4]bool{true, true, true, true}
	}
	if g.InBounds(start) {
		w.visited[g.Index(start)] = true
	}
	return w
}

// FromEvents builds the walls left after applying events in order.
func FromEvents(g *grid.Graph, start grid.Cell, events []maze.Event) (*Walls, error) {
	w := NewWalls(g, start)
	if err := w.Apply(events); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Walls) Graph() *grid.Graph { return w.g }

// Opened returns the number of events applied.
func (w *Walls) Opened() int { return w.opened }

// Open removes the wall shared by ev.From and ev.To on both cells.
func (w *Walls) Open(ev maze.Event) error {
	if err := w.g.Check(ev.From); err != nil {
		return err
	}
	if err := w.g.Check(ev.To); err != nil {
		return err
	}
	d, ok := grid.DirectionBetween(ev.From, ev.To)
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotAdjacent, ev)
	}
	from, to := w.g.Index(ev.From), w.g.Index(ev.To)
	if !w.closed[from][d] {
		return fmt.Errorf("%w: %v %s", ErrWallAlreadyOpen, ev.From, d)
	}
	w.closed[from][d] = false
	w.closed[to][d.Opposite()] = false
	w.visited[from] = true
	w.visited[to] = true
	w.opened++
	return nil
}

// Apply opens the walls of events in order and stops at the first error.
func (w *Walls) Apply(events []maze.Event) error {
	for i, ev := range events {
		if err := w.Open(ev); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
	}
	return nil
}

// OpenBorder removes an outer wall, used for the entrance and exit. Inner
// sides are left alone and reported as ErrNotAdjacent.
func (w *Walls) OpenBorder(c grid.Cell, d grid.Direction) error {
	if err := w.g.Check(c); err != nil {
		return err
	}
	if w.g.InBounds(step(c, d)) {
		return fmt.Errorf("%w: %v %s is not a border", ErrNotAdjacent, c, d)
	}
	w.closed[w.g.Index(c)][d] = false
	return nil
}

// OpenEntrances opens the top of the top-left cell and the bottom of the
// bottom-right cell.
func (w *Walls) OpenEntrances() {
	_ = w.OpenBorder(grid.Cell{}, grid.Up)
	_ = w.OpenBorder(grid.Cell{X: w.g.Width() - 1, Y: w.g.Height() - 1}, grid.Down)
}

// Closed reports whether side d of c is walled. Cells outside the grid are
// always closed.
func (w *Walls) Closed(c grid.Cell, d grid.Direction) bool {
	if !w.g.InBounds(c) {
		return true
	}
	return w.closed[w.g.Index(c)][d]
}

func (w *Walls) Visited(c grid.Cell) bool {
	return w.g.InBounds(c) && w.visited[w.g.Index(c)]
}

// Clone returns an independent copy.
func (w *Walls) Clone() *Walls {
	c := &Walls{
		g:       w.g,
		closed:  make([][4]bool, len(w.closed)),
		visited: make([]bool, len(w.visited)),
		opened:  w.opened,
	}
	copy(c.closed, w.closed)
	copy(c.visited, w.visited)
	return c
}

func step(c grid.Cell, d grid.Direction) grid.Cell {
	switch d {
	case grid.Up:
		c.Y--
	case grid.Down:
		c.Y++
	case grid.Left:
		c.X--
	case grid.Right:
		c.X++
	}
	return c
}
