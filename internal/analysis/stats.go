package analysis

import (
	"github.com/san-kum/mazegen/internal/grid"
	"github.com/san-kum/mazegen/internal/maze"
	"gonum.org/v1/gonum/stat"
)

// Stats describes one maze.
type Stats struct {
	Width, Height int
	Start         grid.Cell
	Edges         int

	// cells by number of open sides
	DeadEnds   int
	Straights  int
	Turns      int
	Junctions  int
	Crossroads int

	// Depths holds the tree distance from Start, indexed row-major.
	Depths    []int
	MaxDepth  int
	Deepest   grid.Cell
	MeanDepth float64
	StdDepth  float64

	LongestPath int
	PathEnds    [2]grid.Cell

	CorridorLengths []int
	MeanCorridor    float64
}

// Analyze replays events over g and measures the resulting tree. Events
// must form a valid prefix; a partial maze is measured over the cells
// reached so far.
func Analyze(g *grid.Graph, start grid.Cell, events []maze.Event) (Stats, error) {
	tree, err := maze.Replay(g, start, events)
	if err != nil {
		return Stats{}, err
	}
	return FromTree(tree, start), nil
}

// FromTree measures tree, with depths taken from start.
func FromTree(tree *maze.Tree, start grid.Cell) Stats {
	g := tree.Graph()
	st := Stats{
		Width:  g.Width(),
		Height: g.Height(),
		Start:  start,
		Edges:  tree.Edges(),
	}
	st.countShapes(tree)

	st.Depths = tree.Distances(start)
	reached := make([]float64, 0, len(st.Depths))
	for i, d := range st.Depths {
		if d < 0 {
			continue
		}
		reached = append(reached, float64(d))
		if d > st.MaxDepth {
			st.MaxDepth, st.Deepest = d, g.Coordinate(i)
		}
	}
	st.MeanDepth, st.StdDepth = meanStd(reached)

	st.LongestPath, st.PathEnds = diameter(tree, start)

	st.CorridorLengths = corridors(tree)
	lengths := make([]float64, len(st.CorridorLengths))
	for i, n := range st.CorridorLengths {
		lengths[i] = float64(n)
	}
	st.MeanCorridor, _ = meanStd(lengths)
	return st
}

func (st *Stats) countShapes(tree *maze.Tree) {
	g := tree.Graph()
	for _, c := range g.Cells() {
		switch tree.Degree(c) {
		case 1:
			st.DeadEnds++
		case 2:
			ns := tree.Neighbors(c)
			if ns[0].X == ns[1].X || ns[0].Y == ns[1].Y {
				st.Straights++
			} else {
				st.Turns++
			}
		case 3:
			st.Junctions++
		case 4:
			st.Crossroads++
		}
	}
}

// DeadEndRatio returns dead ends per cell.
func (st Stats) DeadEndRatio() float64 {
	n := st.Width * st.Height
	if n == 0 {
		return 0
	}
	return float64(st.DeadEnds) / float64(n)
}

// DepthHistogram counts reached cells by depth in bins equal-width bins
// over [0, MaxDepth].
func (st Stats) DepthHistogram(bins int) []int {
	if bins < 1 {
		bins = 1
	}
	hist := make([]int, bins)
	for _, d := range st.Depths {
		if d < 0 {
			continue
		}
		hist[d*bins/(st.MaxDepth+1)]++
	}
	return hist
}

// meanStd returns the mean and sample standard deviation; the deviation of
// fewer than two values is 0.
func meanStd(xs []float64) (float64, float64) {
	switch len(xs) {
	case 0:
		return 0, 0
	case 1:
		return xs[0], 0
	}
	return stat.MeanStdDev(xs, nil)
}

// diameter finds the longest tree path with two breadth-first passes.
func diameter(tree *maze.Tree, from grid.Cell) (int, [2]grid.Cell) {
	g := tree.Graph()
	a := farthest(g, tree.Distances(from), from)
	distA := tree.Distances(a)
	b := farthest(g, distA, a)
	return distA[g.Index(b)], [2]grid.Cell{a, b}
}

func farthest(g *grid.Graph, dist []int, fallback grid.Cell) grid.Cell {
	best, at := -1, fallback
	for i, d := range dist {
		if d > best {
			best, at = d, g.Coordinate(i)
		}
	}
	return at
}

// corridors returns the edge length of every maximal run of cells with two
// open sides, measured between the cells of other degrees at its ends.
func corridors(tree *maze.Tree) []int {
	g := tree.Graph()
	var out []int
	for _, c := range g.Cells() {
		if d := tree.Degree(c); d == 0 || d == 2 {
			continue
		}
		for _, next := range tree.Neighbors(c) {
			prev, cur, length := c, next, 1
			for tree.Degree(cur) == 2 {
				ns := tree.Neighbors(cur)
				step := ns[0]
				if step == prev {
					step = ns[1]
				}
				prev, cur = cur, step
				length++
			}
			// each corridor is walked from both ends
			if g.Index(c) < g.Index(cur) {
				out = append(out, length)
			}
		}
	}
	return out
}
