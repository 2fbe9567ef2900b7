package viz

import (
	"strings"

	"github.com/san-kum/mazegen/internal/grid"
	"github.com/san-kum/mazegen/internal/render"
)

// Braille dots per character, 2 wide by 4 tall:
//
//	1 4
//	2 5
//	3 6
//	7 8
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a grid of Braille characters addressed in dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

// NewCanvas returns a blank canvas of w x h characters.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, Grid: make([][]rune, h)}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Set turns on the dot at (x, y); dots outside the canvas are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= pixelMap[y%4][x%2]
}

// IsSet reports whether the dot at (x, y) is on.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&pixelMap[y%4][x%2] != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

func (c *Canvas) HLine(x0, x1, y int) {
	for x := x0; x <= x1; x++ {
		c.Set(x, y)
	}
}

func (c *Canvas) VLine(x, y0, y1 int) {
	for y := y0; y <= y1; y++ {
		c.Set(x, y)
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// MazeCanvas returns a canvas sized for w with scale dots per cell side.
func MazeCanvas(w *render.Walls, scale int) *Canvas {
	g := w.Graph()
	dotsW, dotsH := g.Width()*scale+1, g.Height()*scale+1
	return NewCanvas((dotsW+1)/2, (dotsH+3)/4)
}

// PlotWalls draws the closed walls of w, scale dots per cell side, and
// marks the centre of the cursor cell with a single dot.
func (c *Canvas) PlotWalls(w *render.Walls, scale int, cursor *grid.Cell) {
	g := w.Graph()
	for _, cell := range g.Cells() {
		x0, y0 := cell.X*scale, cell.Y*scale
		x1, y1 := x0+scale, y0+scale
		if w.Closed(cell, grid.Up) {
			c.HLine(x0, x1, y0)
		}
		if w.Closed(cell, grid.Left) {
			c.VLine(x0, y0, y1)
		}
		if cell.Y == g.Height()-1 && w.Closed(cell, grid.Down) {
			c.HLine(x0, x1, y1)
		}
		if cell.X == g.Width()-1 && w.Closed(cell, grid.Right) {
			c.VLine(x1, y0, y1)
		}
	}
	if cursor != nil && g.InBounds(*cursor) && scale >= 2 {
		c.Set(cursor.X*scale+scale/2, cursor.Y*scale+scale/2)
	}
}
