package render

import (
	"strings"

	"github.com/san-kum/mazegen/internal/grid"
)

// TextOptions controls Text output.
type TextOptions struct {
	// Cursor marks one cell, usually the most recently connected.
	Cursor *grid.Cell
	// ShadeUnvisited fills cells not reached yet.
	ShadeUnvisited bool
}

// Text draws w with +, -, | characters, three columns per cell.
func Text(w *Walls, opts TextOptions) string {
	g := w.Graph()
	var b strings.Builder
	b.Grow((g.Width()*4 + 2) * (g.Height()*2 + 1))

	for y := 0; y < g.Height(); y++ {
		b.WriteByte('+')
		for x := 0; x < g.Width(); x++ {
			if w.Closed(grid.Cell{X: x, Y: y}, grid.Up) {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteByte('\n')

		for x := 0; x < g.Width(); x++ {
			c := grid.Cell{X: x, Y: y}
			if w.Closed(c, grid.Left) {
				b.WriteByte('|')
			} else {
				b.WriteByte(' ')
			}
			switch {
			case opts.Cursor != nil && *opts.Cursor == c:
				b.WriteString(" @ ")
			case opts.ShadeUnvisited && !w.Visited(c):
				b.WriteString(":::")
			default:
				b.WriteString("   ")
			}
		}
		if w.Closed(grid.Cell{X: g.Width() - 1, Y: y}, grid.Right) {
			b.WriteByte('|')
		} else {
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}

	b.WriteByte('+')
	for x := 0; x < g.Width(); x++ {
		if w.Closed(grid.Cell{X: x, Y: g.Height() - 1}, grid.Down) {
			b.WriteString("---+")
		} else {
			b.WriteString("   +")
		}
	}
	b.WriteByte('\n')
	return b.String()
}
