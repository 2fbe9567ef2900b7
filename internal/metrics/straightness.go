package metrics

import (
	"github.com/san-kum/mazegen/internal/grid"
	"github.com/san-kum/mazegen/internal/maze"
)

// Straightness is the fraction of chained steps that keep the direction of
// the step before them.
type Straightness struct {
	name     string
	c        chain
	lastDir  grid.Direction
	hasDir   bool
	straight int
	samples  int
}

func NewStraightness() *Straightness {
	return &Straightness{name: "straightness"}
}

func (s *Straightness) Name() string { return s.name }

func (s *Straightness) OnConnect(ev maze.Event) {
	chained := s.c.next(ev)
	dir, ok := grid.DirectionBetween(ev.From, ev.To)
	if !ok {
		s.hasDir = false
		return
	}
	if chained && s.hasDir {
		s.samples++
		if dir == s.lastDir {
			s.straight++
		}
	}
	s.lastDir, s.hasDir = dir, true
}

func (s *Straightness) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return float64(s.straight) / float64(s.samples)
}

func (s *Straightness) Reset() {
	s.c = chain{}
	s.hasDir = false
	s.straight = 0
	s.samples = 0
}
