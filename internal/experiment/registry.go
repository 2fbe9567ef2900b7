package experiment

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/san-kum/mazegen/internal/export"
	"github.com/san-kum/mazegen/internal/grid"
	"github.com/san-kum/mazegen/internal/maze"
	"github.com/san-kum/mazegen/internal/render"
	"github.com/san-kum/mazegen/internal/storage"
)

// Output is everything a writer may need about a finished run.
type Output struct {
	Graph  *grid.Graph
	Start  grid.Cell
	Events []maze.Event
	Meta   *storage.RunMetadata
	Render render.Config
	GIF    export.GIFOptions
	// Entrances opens the outer walls of the first and last cell in stills.
	Entrances bool
}

func (o Output) walls() (*render.Walls, error) {
	w, err := render.FromEvents(o.Graph, o.Start, o.Events)
	if err != nil {
		return nil, err
	}
	if o.Entrances {
		w.OpenEntrances()
	}
	return w, nil
}

// Writer encodes an Output in one format.
type Writer func(w io.Writer, out Output) error

// Registry maps format names to writers.
type Registry struct {
	writers map[string]Writer
}

func NewRegistry() *Registry {
	r := &Registry{writers: make(map[string]Writer)}

	r.writers["txt"] = func(w io.Writer, out Output) error {
		walls, err := out.walls()
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, render.Text(walls, render.TextOptions{}))
		return err
	}
	r.writers["svg"] = func(w io.Writer, out Output) error {
		walls, err := out.walls()
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, export.SVG(walls, out.Render, nil))
		return err
	}
	r.writers["png"] = func(w io.Writer, out Output) error {
		walls, err := out.walls()
		if err != nil {
			return err
		}
		return export.PNG(w, walls, out.Render, nil)
	}
	r.writers["jpg"] = func(w io.Writer, out Output) error {
		walls, err := out.walls()
		if err != nil {
			return err
		}
		return export.JPEG(w, walls, out.Render, nil, 90)
	}
	r.writers["jpeg"] = r.writers["jpg"]
	r.writers["gif"] = func(w io.Writer, out Output) error {
		opts := out.GIF
		opts.Entrances = out.Entrances
		return export.GIF(w, out.Graph, out.Start, out.Events, out.Render, opts)
	}
	r.writers["csv"] = func(w io.Writer, out Output) error {
		return storage.WriteEvents(w, out.Events)
	}
	r.writers["json"] = func(w io.Writer, out Output) error {
		meta := out.Meta
		if meta == nil {
			meta = &storage.RunMetadata{
				Width:  out.Graph.Width(),
				Height: out.Graph.Height(),
				StartX: out.Start.X,
				StartY: out.Start.Y,
			}
		}
		return storage.WriteJSON(w, meta, out.Events)
	}

	return r
}

// Register adds or replaces a format.
func (r *Registry) Register(name string, w Writer) {
	r.writers[strings.ToLower(name)] = w
}

func (r *Registry) Get(name string) (Writer, error) {
	w, ok := r.writers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", export.ErrUnknownFormat, name)
	}
	return w, nil
}

func (r *Registry) ListFormats() []string {
	names := make([]string, 0, len(r.writers))
	for name := range r.writers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteFile writes out to path in the format named by its extension.
func (r *Registry) WriteFile(path string, out Output) error {
	w, err := r.Get(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := w(f, out); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
