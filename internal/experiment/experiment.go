package experiment

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/san-kum/mazegen/internal/analysis"
	"github.com/san-kum/mazegen/internal/config"
	"github.com/san-kum/mazegen/internal/grid"
	"github.com/san-kum/mazegen/internal/maze"
	"github.com/san-kum/mazegen/internal/metrics"
	"github.com/san-kum/mazegen/internal/storage"
)

// Config describes one generation run.
type Config struct {
	Name   string
	Width  int
	Height int
	Start  grid.Cell
	Bias   float64
	Seed   int64
}

// FromConfig takes the generation fields of cfg.
func FromConfig(name string, cfg *config.Config) Config {
	return Config{
		Name:   name,
		Width:  cfg.Width,
		Height: cfg.Height,
		Start:  cfg.StartCell(),
		Bias:   cfg.Bias,
		Seed:   cfg.Seed,
	}
}

// Experiment owns the grid and generator of one run.
type Experiment struct {
	cfg       Config
	graph     *grid.Graph
	generator *maze.Generator
	metrics   []metrics.Metric
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Config() Config { return e.cfg }

// Setup builds the grid and a generator seeded from the config, with the
// walk metrics and observers attached.
func (e *Experiment) Setup(observers ...maze.Observer) error {
	g, err := grid.New(e.cfg.Width, e.cfg.Height)
	if err != nil {
		return err
	}
	e.graph = g
	e.generator = maze.New(g, rand.New(rand.NewSource(e.cfg.Seed)), maze.WithBias(e.cfg.Bias))
	e.metrics = metrics.Defaults()
	for _, m := range e.metrics {
		e.generator.AddObserver(m)
	}
	for _, o := range observers {
		e.generator.AddObserver(o)
	}
	return nil
}

// Run generates the maze. Generation itself is not interruptible; ctx is
// checked before it starts.
func (e *Experiment) Run(ctx context.Context) (*maze.Result, error) {
	if e.generator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := e.generator.Generate(e.cfg.Start); err != nil {
		return nil, err
	}
	return e.generator.Result(), nil
}

func (e *Experiment) Graph() *grid.Graph { return e.graph }

// Generator returns the underlying generator for adding observers.
func (e *Experiment) Generator() *maze.Generator { return e.generator }

// Metadata describes res for storage, with the shape measures of the
// finished maze, the generator counters and the walk metrics.
func (e *Experiment) Metadata(res *maze.Result) storage.RunMetadata {
	st := analysis.FromTree(res.Tree, res.Start)
	values := Metrics(st, res.Stats)
	for _, m := range e.metrics {
		values[m.Name()] = m.Value()
	}
	return storage.RunMetadata{
		Name:    e.cfg.Name,
		Width:   e.cfg.Width,
		Height:  e.cfg.Height,
		StartX:  res.Start.X,
		StartY:  res.Start.Y,
		Bias:    res.Bias,
		Seed:    e.cfg.Seed,
		Metrics: values,
	}
}

// Metrics flattens shape and generator statistics into named values.
func Metrics(st analysis.Stats, gen maze.Stats) map[string]float64 {
	return map[string]float64{
		"dead_ends":      float64(st.DeadEnds),
		"dead_end_ratio": st.DeadEndRatio(),
		"junctions":      float64(st.Junctions + st.Crossroads),
		"straights":      float64(st.Straights),
		"turns":          float64(st.Turns),
		"max_depth":      float64(st.MaxDepth),
		"mean_depth":     st.MeanDepth,
		"longest_path":   float64(st.LongestPath),
		"mean_corridor":  st.MeanCorridor,
		"pushes":         float64(gen.Pushes),
		"stale_pops":     float64(gen.StalePops),
		"back_pops":      float64(gen.BackPops),
		"peak_frontier":  float64(gen.PeakFrontier),
	}
}
