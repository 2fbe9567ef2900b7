package render

import (
	"fmt"
	"image/color"
)

// Palette colours a rendered maze.
type Palette struct {
	Background color.RGBA
	Wall       color.RGBA
	Highlight  color.RGBA
	Unvisited  color.RGBA
}

// Config sizes a rendered maze in pixels.
type Config struct {
	CellSize      int
	WallThickness int
	Margin        int
	Palette       Palette
}

var (
	White = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Black = color.RGBA{0x00, 0x00, 0x00, 0xff}
	Green = color.RGBA{0x00, 0xff, 0x00, 0xff}
	Grey  = color.RGBA{0xc8, 0xc8, 0xc8, 0xff}
)

func DefaultPalette() Palette {
	return Palette{
		Background: White,
		Wall:       Black,
		Highlight:  Green,
		Unvisited:  Grey,
	}
}

func DefaultConfig() Config {
	return Config{
		CellSize:      20,
		WallThickness: 2,
		Margin:        20,
		Palette:       DefaultPalette(),
	}
}

func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.CellSize)
	}
	if c.WallThickness <= 0 || c.WallThickness > c.CellSize {
		return fmt.Errorf("%w: wall thickness %d for cell size %d", ErrInvalidConfig, c.WallThickness, c.CellSize)
	}
	if c.Margin < 0 {
		return fmt.Errorf("%w: margin %d", ErrInvalidConfig, c.Margin)
	}
	return nil
}

// Size returns the image size for a width x height maze.
func (c Config) Size(width, height int) (int, int) {
	return width*c.CellSize + 2*c.Margin, height*c.CellSize + 2*c.Margin
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (color.RGBA, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	var r, g, b uint8
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: colour %q", ErrInvalidConfig, s)
	}
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("%w: colour %q", ErrInvalidConfig, s)
	}
	return color.RGBA{r, g, b, 0xff}, nil
}

// Hex formats c as "#rrggbb".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
