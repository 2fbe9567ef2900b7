// Package maze generates perfect mazes over a [grid.Graph].
//
// A [Generator] runs a randomized frontier walk from a start cell and emits
// an ordered sequence of [Event] values, one per newly connected cell. The
// events form a spanning tree of the grid: exactly one path between any two
// cells and no cycles. Every prefix of the sequence is itself a valid partial
// tree rooted at the start cell, which is what makes incremental replay safe.
//
//   - [Generator]: single-use, NotStarted -> Running -> Done
//   - [Tree]: spanning adjacency built from accepted edges
//   - [Validate]: checks an event sequence against the grid
//   - [Ensemble]: many independent generations in parallel
//
// # Example
//
//	g, _ := grid.New(40, 40)
//	gen := maze.New(g, rand.New(rand.NewSource(seed)))
//	events, err := gen.Generate(grid.Cell{})
//
// # Frontier policy
//
// Each time a cell becomes current its neighbours are shuffled and pushed to
// the back of a double-ended frontier, explored or not. Every iteration draws
// r in [0,1): r > Bias pops the newest edge, otherwise the oldest. Edges whose
// target is already explored are discarded when popped, never filtered on
// push; the position of stale entries decides which edge is oldest.
//
// # Thread Safety
//
// A Generator is NOT thread-safe. [Ensemble] gives every run its own
// generator and random source.
package maze
