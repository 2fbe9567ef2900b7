// Package metrics holds streaming measures of a generation walk. Each
// metric observes connection events as they are emitted.
package metrics

import (
	"github.com/san-kum/mazegen/internal/grid"
	"github.com/san-kum/mazegen/internal/maze"
)

// Metric is a maze.Observer that reduces the events it sees to one value.
type Metric interface {
	maze.Observer
	Name() string
	Value() float64
	Reset()
}

// Defaults returns a fresh set of the walk metrics.
func Defaults() []Metric {
	return []Metric{NewBranchRate(), NewRunLength(), NewStraightness()}
}

// chain tracks whether an event continues from the cell the previous event
// reached.
type chain struct {
	last grid.Cell
	has  bool
}

func (c *chain) next(ev maze.Event) (chained bool) {
	chained = !c.has || ev.From == c.last
	c.last, c.has = ev.To, true
	return chained
}
