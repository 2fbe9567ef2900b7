package maze

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/san-kum/mazegen/internal/grid"
)

// Ensemble runs independent generations of the same grid, one seed each.
type Ensemble struct {
	g         *grid.Graph
	opts      []Option
	numRuns   int
	seedStart int64
}

func NewEnsemble(g *grid.Graph, numRuns int, seedStart int64, opts ...Option) *Ensemble {
	return &Ensemble{g: g, opts: opts, numRuns: numRuns, seedStart: seedStart}
}

// Run generates numRuns mazes from start concurrently. Run i uses seed
// seedStart+i, so results[i] is reproducible on its own.
func (e *Ensemble) Run(ctx context.Context, start grid.Cell) ([]*Result, error) {
	if e.numRuns < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRuns, e.numRuns)
	}
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}

			src := rand.New(rand.NewSource(e.seedStart + int64(idx)))
			gen := New(e.g, src, e.opts...)
			if _, err := gen.Generate(start); err != nil {
				errs[idx] = err
				return
			}
			results[idx] = gen.Result()
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
