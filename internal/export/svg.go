package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/mazegen/internal/grid"
	"github.com/san-kum/mazegen/internal/render"
)

// SVG draws walls as line segments. Cells not visited yet are filled with
// the unvisited colour and highlight, when in the grid, with the highlight
// colour.
func SVG(w *render.Walls, cfg render.Config, highlight *grid.Cell) string {
	g := w.Graph()
	width, height := cfg.Size(g.Width(), g.Height())
	cs, m := float64(cfg.CellSize), float64(cfg.Margin)
	pal := cfg.Palette

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, render.Hex(pal.Background)))

	for _, c := range g.Cells() {
		x, y := m+float64(c.X)*cs, m+float64(c.Y)*cs
		switch {
		case highlight != nil && *highlight == c:
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x, y, cs, cs, render.Hex(pal.Highlight)))
		case !w.Visited(c):
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x, y, cs, cs, render.Hex(pal.Unvisited)))
		}
	}

	sb.WriteString(fmt.Sprintf(`<g stroke="%s" stroke-width="%d" stroke-linecap="square">
`, render.Hex(pal.Wall), cfg.WallThickness))
	for _, c := range g.Cells() {
		x, y := m+float64(c.X)*cs, m+float64(c.Y)*cs
		// each cell owns its top and left side; the last row and column
		// also own the outer bottom and right
		if w.Closed(c, grid.Up) {
			writeLine(&sb, x, y, x+cs, y)
		}
		if w.Closed(c, grid.Left) {
			writeLine(&sb, x, y, x, y+cs)
		}
		if c.Y == g.Height()-1 && w.Closed(c, grid.Down) {
			writeLine(&sb, x, y+cs, x+cs, y+cs)
		}
		if c.X == g.Width()-1 && w.Closed(c, grid.Right) {
			writeLine(&sb, x+cs, y, x+cs, y+cs)
		}
	}
	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

func writeLine(sb *strings.Builder, x1, y1, x2, y2 float64) {
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, x1, y1, x2, y2))
}
