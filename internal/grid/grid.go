package grid

import "fmt"

// Cell is a grid coordinate. Two cells are the same cell when their
// coordinates are equal.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction names the side of a cell shared with an adjacent cell.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Opposite returns the direction seen from the other cell.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// neighbour order: left, right, up, down
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Graph is the full 4-connected adjacency of a Width x Height grid.
// It is immutable once built.
type Graph struct {
	width, height int
	adj           [][]Cell // indexed row-major
}

// New builds the adjacency for all width*height cells in O(W*H).
// Returns ErrInvalidDimensions if either dimension is not positive.
func New(width, height int) (*Graph, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	g := &Graph{
		width:  width,
		height: height,
		adj:    make([][]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ns := make([]Cell, 0, 4)
			for _, d := range offsets {
				n := Cell{X: x + d[0], Y: y + d[1]}
				if g.InBounds(n) {
					ns = append(ns, n)
				}
			}
			g.adj[g.index(x, y)] = ns
		}
	}
	return g, nil
}

func (g *Graph) Width() int  { return g.width }
func (g *Graph) Height() int { return g.height }

// Len returns the number of cells.
func (g *Graph) Len() int { return g.width * g.height }

// InBounds reports whether c lies within [0,W) x [0,H).
func (g *Graph) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Check returns a wrapped ErrOutOfRange when c is not in the grid.
func (g *Graph) Check(c Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v not in %dx%d", ErrOutOfRange, c, g.width, g.height)
	}
	return nil
}

// Neighbors returns the cells adjacent to c in left, right, up, down order.
// The slice is a copy and may be reordered by the caller.
func (g *Graph) Neighbors(c Cell) ([]Cell, error) {
	if err := g.Check(c); err != nil {
		return nil, err
	}
	src := g.adj[g.index(c.X, c.Y)]
	out := make([]Cell, len(src))
	copy(out, src)
	return out, nil
}

// Degree returns the number of neighbours of an in-bounds cell, or 0.
func (g *Graph) Degree(c Cell) int {
	if !g.InBounds(c) {
		return 0
	}
	return len(g.adj[g.index(c.X, c.Y)])
}

// Adjacent reports whether a and b share a side.
func (g *Graph) Adjacent(a, b Cell) bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	_, ok := DirectionBetween(a, b)
	return ok
}

// Cells returns every cell in row-major order.
func (g *Graph) Cells() []Cell {
	cells := make([]Cell, 0, g.Len())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}

// Index maps c to its row-major index y*W + x. c must be in bounds.
func (g *Graph) Index(c Cell) int {
	return g.index(c.X, c.Y)
}

// Coordinate converts a row-major index back to a cell.
func (g *Graph) Coordinate(idx int) Cell {
	return Cell{X: idx % g.width, Y: idx / g.width}
}

func (g *Graph) index(x, y int) int {
	return y*g.width + x
}

// DirectionBetween returns the side of a that faces b. ok is false when the
// cells are not orthogonally adjacent.
func DirectionBetween(a, b Cell) (d Direction, ok bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	switch {
	case dx == 0 && dy == -1:
		return Up, true
	case dx == 0 && dy == 1:
		return Down, true
	case dx == -1 && dy == 0:
		return Left, true
	case dx == 1 && dy == 0:
		return Right, true
	}
	return 0, false
}
