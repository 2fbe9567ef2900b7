package maze

import (
	"fmt"

	"github.com/san-kum/mazegen/internal/grid"
)

// DefaultBias is the draw threshold above which the newest frontier edge is
// popped instead of the oldest.
const DefaultBias = 0.99

// Event records that To was newly connected to From.
type Event struct {
	From grid.Cell `json:"from"`
	To   grid.Cell `json:"to"`
}

func (e Event) String() string {
	return fmt.Sprintf("%v->%v", e.From, e.To)
}

// edge is a frontier candidate; same shape as an Event but not yet accepted.
type edge struct {
	from, to grid.Cell
}

// Source is the randomness a Generator draws from. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// Observer is notified of every event as it is emitted.
type Observer interface {
	OnConnect(ev Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ev Event)

func (f ObserverFunc) OnConnect(ev Event) { f(ev) }

// State is the lifecycle of a Generator.
type State int

const (
	NotStarted State = iota
	Running
	Done
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case Done:
		return "done"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Options tunes the frontier walk.
type Options struct {
	// Bias is the threshold in [0,1]; a draw above it pops from the back.
	// 1 never pops from the back, 0 almost always does.
	Bias float64
}

// Option configures a Generator.
type Option func(*Options)

func DefaultOptions() Options {
	return Options{Bias: DefaultBias}
}

// WithBias sets the back-pop threshold. Values outside [0,1] are reported
// as ErrInvalidBias by Generate.
func WithBias(b float64) Option {
	return func(o *Options) { o.Bias = b }
}

// Stats counts what happened on the frontier during one generation.
type Stats struct {
	Pushes       int
	FrontPops    int
	BackPops     int
	StalePops    int
	PeakFrontier int
	// FrontierSizes holds the frontier length right after each event.
	FrontierSizes []int
}

// Result is everything one generation produced.
type Result struct {
	Start  grid.Cell
	Bias   float64
	Events []Event
	Tree   *Tree
	Stats  Stats
}
