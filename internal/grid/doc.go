// Package grid models a rectangular grid of cells as an undirected graph.
//
// Every cell is connected to its orthogonal neighbours (left, right, up,
// down), clipped at the grid boundary. The adjacency is built once by [New]
// and is read-only afterwards, so a [Graph] can be shared freely between
// goroutines.
//
// # Errors
//
//   - [ErrInvalidDimensions]: width or height is not positive.
//   - [ErrOutOfRange]: a cell lies outside [0,W) x [0,H).
package grid
