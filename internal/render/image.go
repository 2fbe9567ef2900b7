package render

import (
	"image"
	"image/color"

	"github.com/san-kum/mazegen/internal/grid"
)

const (
	idxBackground uint8 = iota
	idxWall
	idxHighlight
	idxUnvisited
)

// ColorPalette returns the indexed palette every frame is drawn with, so
// frames of one animation can share it.
func (c Config) ColorPalette() color.Palette {
	p := c.Palette
	return color.Palette{p.Background, p.Wall, p.Highlight, p.Unvisited}
}

// Image rasterizes w. When highlight is in the grid that cell is filled
// with the highlight colour.
func Image(w *Walls, cfg Config, highlight *grid.Cell) *image.Paletted {
	g := w.Graph()
	iw, ih := cfg.Size(g.Width(), g.Height())
	img := image.NewPaletted(image.Rect(0, 0, iw, ih), cfg.ColorPalette())

	cs, t := cfg.CellSize, cfg.WallThickness
	for _, c := range g.Cells() {
		x0, y0 := cfg.Margin+c.X*cs, cfg.Margin+c.Y*cs

		switch {
		case highlight != nil && *highlight == c:
			fill(img, x0, y0, cs, cs, idxHighlight)
		case !w.Visited(c):
			fill(img, x0, y0, cs, cs, idxUnvisited)
		}

		if w.Closed(c, grid.Up) {
			fill(img, x0, y0, cs, t, idxWall)
		}
		if w.Closed(c, grid.Down) {
			fill(img, x0, y0+cs-t, cs, t, idxWall)
		}
		if w.Closed(c, grid.Left) {
			fill(img, x0, y0, t, cs, idxWall)
		}
		if w.Closed(c, grid.Right) {
			fill(img, x0+cs-t, y0, t, cs, idxWall)
		}
	}
	return img
}

func fill(img *image.Paletted, x, y, w, h int, idx uint8) {
	r := image.Rect(x, y, x+w, y+h).Intersect(img.Rect)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			img.SetColorIndex(px, py, idx)
		}
	}
}
