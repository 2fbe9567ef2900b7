package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/mazegen/internal/grid"
	"github.com/san-kum/mazegen/internal/render"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth    = 40
	DefaultHeight   = 40
	DefaultBias     = 0.99
	DefaultFPS      = 60
	DefaultGIFDelay = 10
	DefaultTheme    = "cyberpunk"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Width    int            `yaml:"width"`
	Height   int            `yaml:"height"`
	Start    StartConfig    `yaml:"start"`
	Bias     float64        `yaml:"bias"`
	Seed     int64          `yaml:"seed"`
	Render   RenderConfig   `yaml:"render"`
	Playback PlaybackConfig `yaml:"playback"`
}

type StartConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// RenderConfig sizes images in pixels; colours are "#rrggbb".
type RenderConfig struct {
	CellSize      int    `yaml:"cell_size"`
	WallThickness int    `yaml:"wall_thickness"`
	Margin        int    `yaml:"margin"`
	Background    string `yaml:"background"`
	Wall          string `yaml:"wall"`
	Highlight     string `yaml:"highlight"`
	Unvisited     string `yaml:"unvisited"`
}

type PlaybackConfig struct {
	FPS      int    `yaml:"fps"`
	PerTick  int    `yaml:"per_tick"`
	Theme    string `yaml:"theme"`
	GIFDelay int    `yaml:"gif_delay"`
	GIFStep  int    `yaml:"gif_step"`
}

func DefaultConfig() *Config {
	rc := render.DefaultConfig()
	return &Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Bias:   DefaultBias,
		Render: RenderConfig{
			CellSize:      rc.CellSize,
			WallThickness: rc.WallThickness,
			Margin:        rc.Margin,
			Background:    render.Hex(rc.Palette.Background),
			Wall:          render.Hex(rc.Palette.Wall),
			Highlight:     render.Hex(rc.Palette.Highlight),
			Unvisited:     render.Hex(rc.Palette.Unvisited),
		},
		Playback: PlaybackConfig{
			FPS:      DefaultFPS,
			PerTick:  1,
			Theme:    DefaultTheme,
			GIFDelay: DefaultGIFDelay,
			GIFStep:  1,
		},
	}
}

// Load reads path over the defaults, so a file may set only some fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first setting that cannot produce a maze.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.Start.X < 0 || c.Start.X >= c.Width || c.Start.Y < 0 || c.Start.Y >= c.Height {
		return fmt.Errorf("%w: start (%d,%d) outside %dx%d", ErrInvalid, c.Start.X, c.Start.Y, c.Width, c.Height)
	}
	if !(c.Bias >= 0 && c.Bias <= 1) {
		return fmt.Errorf("%w: bias %v not in [0,1]", ErrInvalid, c.Bias)
	}
	if c.Playback.FPS <= 0 {
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.Playback.FPS)
	}
	if c.Playback.GIFDelay <= 0 {
		return fmt.Errorf("%w: gif delay %d", ErrInvalid, c.Playback.GIFDelay)
	}
	if _, err := c.RenderConfig(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func (c *Config) StartCell() grid.Cell {
	return grid.Cell{X: c.Start.X, Y: c.Start.Y}
}

// RenderConfig converts the render section, parsing its colours.
func (c *Config) RenderConfig() (render.Config, error) {
	rc := render.Config{
		CellSize:      c.Render.CellSize,
		WallThickness: c.Render.WallThickness,
		Margin:        c.Render.Margin,
	}
	var err error
	if rc.Palette.Background, err = render.ParseHex(c.Render.Background); err != nil {
		return rc, err
	}
	if rc.Palette.Wall, err = render.ParseHex(c.Render.Wall); err != nil {
		return rc, err
	}
	if rc.Palette.Highlight, err = render.ParseHex(c.Render.Highlight); err != nil {
		return rc, err
	}
	if rc.Palette.Unvisited, err = render.ParseHex(c.Render.Unvisited); err != nil {
		return rc, err
	}
	return rc, rc.Validate()
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
