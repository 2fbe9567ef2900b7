package export

import (
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/mazegen/internal/grid"
	"github.com/san-kum/mazegen/internal/render"
)

func PNG(out io.Writer, w *render.Walls, cfg render.Config, highlight *grid.Cell) error {
	return png.Encode(out, render.Image(w, cfg, highlight))
}

// JPEG encodes at the given quality, 1 to 100.
func JPEG(out io.Writer, w *render.Walls, cfg render.Config, highlight *grid.Cell, quality int) error {
	return jpeg.Encode(out, render.Image(w, cfg, highlight), &jpeg.Options{Quality: quality})
}

// Save writes a still picked by the extension of path: .svg, .png, .jpg
// or .jpeg.
func Save(path string, w *render.Walls, cfg render.Config, highlight *grid.Cell) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".svg", ".png", ".jpg", ".jpeg":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch ext {
	case ".svg":
		_, err = io.WriteString(f, SVG(w, cfg, highlight))
	case ".png":
		err = PNG(f, w, cfg, highlight)
	default:
		err = JPEG(f, w, cfg, highlight, 90)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
