package maze

import (
	"fmt"

	"github.com/san-kum/mazegen/internal/deque"
	"github.com/san-kum/mazegen/internal/grid"
)

// Generator runs one randomized frontier walk over a grid.
type Generator struct {
	g         *grid.Graph
	src       Source
	opts      Options
	observers []Observer
	state     State
	result    *Result
}

// New creates a generator over g drawing from src.
func New(g *grid.Graph, src Source, opts ...Option) *Generator {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Generator{
		g:         g,
		src:       src,
		opts:      o,
		observers: make([]Observer, 0),
	}
}

func (gen *Generator) AddObserver(o Observer) { gen.observers = append(gen.observers, o) }

func (gen *Generator) State() State { return gen.state }

func (gen *Generator) Options() Options { return gen.opts }

// Result returns the outcome of the last completed Generate, or nil.
func (gen *Generator) Result() *Result {
	if gen.state != Done {
		return nil
	}
	return gen.result
}

// Reset returns the generator to NotStarted so Generate may run again.
// The random source is not rewound.
func (gen *Generator) Reset() {
	gen.state = NotStarted
	gen.result = nil
}

// Generate walks the grid from start and returns the connection events in
// emission order. It fails without side effects when start is outside the
// grid, when the bias is invalid, or when the generator was already used.
func (gen *Generator) Generate(start grid.Cell) ([]Event, error) {
	if gen.state != NotStarted {
		return nil, ErrAlreadyGenerated
	}
	if err := gen.validate(start); err != nil {
		return nil, err
	}

	gen.state = Running
	res := gen.walk(start)
	gen.result = res
	gen.state = Done
	return res.Events, nil
}

func (gen *Generator) validate(start grid.Cell) error {
	if b := gen.opts.Bias; !(b >= 0 && b <= 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidBias, b)
	}
	if err := gen.g.Check(start); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	return nil
}

func (gen *Generator) walk(start grid.Cell) *Result {
	n := gen.g.Len()
	res := &Result{
		Start:  start,
		Bias:   gen.opts.Bias,
		Events: make([]Event, 0, n-1),
		Tree:   NewTree(gen.g),
	}
	res.Stats.FrontierSizes = make([]int, 0, n-1)

	explored := make([]bool, n)
	explored[gen.g.Index(start)] = true
	frontier := deque.New[edge](frontierCapacity(n))

	current := start
	activated := true
	// a freshly accepted cell still expands when its acceptance emptied the
	// frontier
	for activated || !frontier.Empty() {
		// a cell pushes its candidates once, when it becomes current
		if activated {
			gen.expand(frontier, current, &res.Stats)
			activated = false
		}
		if frontier.Empty() {
			break
		}

		var e edge
		if gen.src.Float64() > gen.opts.Bias {
			e, _ = frontier.PopBack()
			res.Stats.BackPops++
		} else {
			e, _ = frontier.PopFront()
			res.Stats.FrontPops++
		}

		idx := gen.g.Index(e.to)
		if explored[idx] {
			res.Stats.StalePops++
			continue
		}

		explored[idx] = true
		res.Tree.connect(e.from, e.to)
		ev := Event{From: e.from, To: e.to}
		res.Events = append(res.Events, ev)
		res.Stats.FrontierSizes = append(res.Stats.FrontierSizes, frontier.Len())
		for _, o := range gen.observers {
			o.OnConnect(ev)
		}
		current = e.to
		activated = true
	}

	return res
}

// expand shuffles the neighbours of c and appends them all to the frontier.
func (gen *Generator) expand(frontier *deque.Deque[edge], c grid.Cell, st *Stats) {
	candidates, _ := gen.g.Neighbors(c)
	gen.src.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, to := range candidates {
		frontier.PushBack(edge{from: c, to: to})
	}
	st.Pushes += len(candidates)
	if frontier.Len() > st.PeakFrontier {
		st.PeakFrontier = frontier.Len()
	}
}

func frontierCapacity(cells int) int {
	const max = 1 << 16
	if c := 4 * cells; c < max {
		return c
	}
	return max
}
