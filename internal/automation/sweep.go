package automation

import (
	"context"
	"errors"
	"fmt"

	"github.com/san-kum/mazegen/internal/analysis"
	"github.com/san-kum/mazegen/internal/export"
	"github.com/san-kum/mazegen/internal/grid"
	"github.com/san-kum/mazegen/internal/maze"
)

// ErrInvalidSweep is returned for a sweep that cannot run.
var ErrInvalidSweep = errors.New("automation: invalid sweep")

// BiasSweep generates Runs mazes at each of Steps evenly spaced biases in
// [BiasMin, BiasMax]. Every bias reuses seeds SeedStart..SeedStart+Runs-1.
type BiasSweep struct {
	Width, Height int
	Start         grid.Cell
	BiasMin       float64
	BiasMax       float64
	Steps         int
	Runs          int
	SeedStart     int64
	// Progress, when set, is called after each bias completes.
	Progress func(done, total int, bias float64)
}

// SweepResult summarizes the runs at one bias.
type SweepResult struct {
	Bias    float64
	Summary analysis.Summary
	// Generator counters averaged over runs.
	MeanStalePops    float64
	MeanPeakFrontier float64
}

// Biases returns the evaluated bias values.
func (s *BiasSweep) Biases() []float64 {
	if s.Steps == 1 {
		return []float64{s.BiasMin}
	}
	out := make([]float64, s.Steps)
	step := (s.BiasMax - s.BiasMin) / float64(s.Steps-1)
	for i := range out {
		out[i] = s.BiasMin + float64(i)*step
	}
	out[len(out)-1] = s.BiasMax
	return out
}

func (s *BiasSweep) validate() error {
	switch {
	case s.Steps < 1:
		return fmt.Errorf("%w: %d steps", ErrInvalidSweep, s.Steps)
	case s.Runs < 1:
		return fmt.Errorf("%w: %d runs", ErrInvalidSweep, s.Runs)
	case !(s.BiasMin >= 0 && s.BiasMax <= 1 && s.BiasMin <= s.BiasMax):
		return fmt.Errorf("%w: bias range [%v, %v]", ErrInvalidSweep, s.BiasMin, s.BiasMax)
	}
	return nil
}

// Run evaluates every bias with a maze.Ensemble.
func (s *BiasSweep) Run(ctx context.Context) ([]SweepResult, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	g, err := grid.New(s.Width, s.Height)
	if err != nil {
		return nil, err
	}

	biases := s.Biases()
	results := make([]SweepResult, 0, len(biases))
	for i, bias := range biases {
		runs, err := maze.NewEnsemble(g, s.Runs, s.SeedStart, maze.WithBias(bias)).Run(ctx, s.Start)
		if err != nil {
			return results, fmt.Errorf("bias %v: %w", bias, err)
		}

		stats := make([]analysis.Stats, len(runs))
		var stale, peak float64
		for j, r := range runs {
			stats[j] = analysis.FromTree(r.Tree, r.Start)
			stale += float64(r.Stats.StalePops)
			peak += float64(r.Stats.PeakFrontier)
		}
		results = append(results, SweepResult{
			Bias:             bias,
			Summary:          analysis.Aggregate(stats),
			MeanStalePops:    stale / float64(len(runs)),
			MeanPeakFrontier: peak / float64(len(runs)),
		})

		if s.Progress != nil {
			s.Progress(i+1, len(biases), bias)
		}
	}
	return results, nil
}

// SweepChart plots dead-end ratio and longest path against bias, each
// scaled to its own maximum so both fit one axis.
func SweepChart(path string, results []SweepResult) error {
	xs := make([]float64, len(results))
	dead := make([]float64, len(results))
	longest := make([]float64, len(results))
	for i, r := range results {
		xs[i] = r.Bias
		dead[i] = r.Summary.DeadEndRatio
		longest[i] = r.Summary.LongestPath
	}
	return export.LineChart(path, "Bias sweep", "Bias", "Relative to maximum",
		export.Series{Name: "dead-end ratio", X: xs, Y: normalize(dead)},
		export.Series{Name: "longest path", X: xs, Y: normalize(longest)},
	)
}

func normalize(ys []float64) []float64 {
	max := 0.0
	for _, y := range ys {
		if y > max {
			max = y
		}
	}
	out := make([]float64, len(ys))
	if max == 0 {
		return out
	}
	for i, y := range ys {
		out[i] = y / max
	}
	return out
}
