package export

import (
	"fmt"
	"image"
	"image/gif"
	"io"
	"os"

	"github.com/san-kum/mazegen/internal/grid"
	"github.com/san-kum/mazegen/internal/maze"
	"github.com/san-kum/mazegen/internal/render"
)

// DefaultDelay is the per-frame delay in 1/100 s.
const DefaultDelay = 10

// GIFOptions controls animation output.
type GIFOptions struct {
	// Delay between frames in 1/100 s.
	Delay int
	// Step emits one frame every Step events.
	Step int
	// Hold repeats the final frame this many times before looping.
	Hold int
	// Entrances opens the entrance and exit on the last frame.
	Entrances bool
}

func DefaultGIFOptions() GIFOptions {
	return GIFOptions{Delay: DefaultDelay, Step: 1}
}

// Frames renders the animation: one fully walled frame with start
// highlighted, then one frame per Step events with the newest cell
// highlighted, always ending on the finished maze.
func Frames(g *grid.Graph, start grid.Cell, events []maze.Event, cfg render.Config, opts GIFOptions) ([]*image.Paletted, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	step := opts.Step
	if step < 1 {
		step = 1
	}

	w := render.NewWalls(g, start)
	frames := make([]*image.Paletted, 0, len(events)/step+2+opts.Hold)
	frames = append(frames, render.Image(w, cfg, &start))

	for i, ev := range events {
		if err := w.Open(ev); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		if (i+1)%step == 0 || i == len(events)-1 {
			to := ev.To
			frames = append(frames, render.Image(w, cfg, &to))
		}
	}

	if opts.Entrances {
		w.OpenEntrances()
	}
	last := render.Image(w, cfg, nil)
	for i := 0; i <= opts.Hold; i++ {
		frames = append(frames, last)
	}
	return frames, nil
}

// EncodeGIF writes frames as a looping animation.
func EncodeGIF(out io.Writer, frames []*image.Paletted, delay int) error {
	if len(frames) == 0 {
		return ErrNoData
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(out, &anim)
}

// GIF renders and encodes the animation of events.
func GIF(out io.Writer, g *grid.Graph, start grid.Cell, events []maze.Event, cfg render.Config, opts GIFOptions) error {
	frames, err := Frames(g, start, events, cfg, opts)
	if err != nil {
		return err
	}
	return EncodeGIF(out, frames, opts.Delay)
}

func SaveGIF(path string, g *grid.Graph, start grid.Cell, events []maze.Event, cfg render.Config, opts GIFOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := GIF(f, g, start, events, cfg, opts); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// SaveFrames encodes frames captured elsewhere, such as a live recording.
func SaveFrames(path string, frames []*image.Paletted, delay int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := EncodeGIF(f, frames, delay); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
