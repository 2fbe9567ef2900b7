package maze

import (
	"github.com/san-kum/mazegen/internal/grid"
)

// Tree is the spanning adjacency of a maze: for every cell, the neighbours
// it is connected to, in connection order.
type Tree struct {
	g     *grid.Graph
	adj   [][]grid.Cell
	edges int
}

// NewTree returns a tree with no connections over g.
func NewTree(g *grid.Graph) *Tree {
	return &Tree{g: g, adj: make([][]grid.Cell, g.Len())}
}

// Replay builds the tree described by events after checking them with
// ValidatePrefix. A prefix of a generation replays to a partial tree.
func Replay(g *grid.Graph, start grid.Cell, events []Event) (*Tree, error) {
	if err := ValidatePrefix(g, start, events); err != nil {
		return nil, err
	}
	t := NewTree(g)
	for _, ev := range events {
		t.connect(ev.From, ev.To)
	}
	return t, nil
}

func (t *Tree) connect(a, b grid.Cell) {
	ia, ib := t.g.Index(a), t.g.Index(b)
	t.adj[ia] = append(t.adj[ia], b)
	t.adj[ib] = append(t.adj[ib], a)
	t.edges++
}

func (t *Tree) Graph() *grid.Graph { return t.g }

// Edges returns the number of accepted connections.
func (t *Tree) Edges() int { return t.edges }

// Neighbors returns a copy of the cells connected to c, or nil when c is
// outside the grid.
func (t *Tree) Neighbors(c grid.Cell) []grid.Cell {
	if !t.g.InBounds(c) {
		return nil
	}
	src := t.adj[t.g.Index(c)]
	out := make([]grid.Cell, len(src))
	copy(out, src)
	return out
}

func (t *Tree) Degree(c grid.Cell) int {
	if !t.g.InBounds(c) {
		return 0
	}
	return len(t.adj[t.g.Index(c)])
}

// Connected reports whether a and b are joined directly.
func (t *Tree) Connected(a, b grid.Cell) bool {
	if !t.g.InBounds(a) {
		return false
	}
	for _, n := range t.adj[t.g.Index(a)] {
		if n == b {
			return true
		}
	}
	return false
}

// Distances returns the number of tree edges between root and every cell,
// indexed row-major; unreachable cells hold -1.
func (t *Tree) Distances(root grid.Cell) []int {
	dist := make([]int, t.g.Len())
	for i := range dist {
		dist[i] = -1
	}
	if !t.g.InBounds(root) {
		return dist
	}
	queue := []grid.Cell{root}
	dist[t.g.Index(root)] = 0
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		d := dist[t.g.Index(c)]
		for _, n := range t.adj[t.g.Index(c)] {
			if i := t.g.Index(n); dist[i] < 0 {
				dist[i] = d + 1
				queue = append(queue, n)
			}
		}
	}
	return dist
}

// Path returns the unique tree path from a to b, both included, or nil when
// they are not connected.
func (t *Tree) Path(a, b grid.Cell) []grid.Cell {
	if !t.g.InBounds(a) || !t.g.InBounds(b) {
		return nil
	}
	parent := make([]int, t.g.Len())
	for i := range parent {
		parent[i] = -1
	}
	ia := t.g.Index(a)
	parent[ia] = ia
	queue := []grid.Cell{a}
	for len(queue) > 0 && parent[t.g.Index(b)] < 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range t.adj[t.g.Index(c)] {
			if i := t.g.Index(n); parent[i] < 0 {
				parent[i] = t.g.Index(c)
				queue = append(queue, n)
			}
		}
	}
	ib := t.g.Index(b)
	if parent[ib] < 0 {
		return nil
	}
	var rev []grid.Cell
	for i := ib; ; i = parent[i] {
		rev = append(rev, t.g.Coordinate(i))
		if i == ia {
			break
		}
	}
	path := make([]grid.Cell, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return path
}
