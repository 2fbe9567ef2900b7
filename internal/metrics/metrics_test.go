package metrics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/mazegen/internal/grid"
	"github.com/san-kum/mazegen/internal/maze"
)

func ev(fx, fy, tx, ty int) maze.Event {
	return maze.Event{From: grid.Cell{X: fx, Y: fy}, To: grid.Cell{X: tx, Y: ty}}
}

// a straight run east, a turn south, then a jump back to (1,0) going south
var walk = []maze.Event{
	ev(0, 0, 1, 0),
	ev(1, 0, 2, 0),
	ev(2, 0, 2, 1),
	ev(1, 0, 1, 1),
}

func feed(m Metric, events []maze.Event) float64 {
	for _, e := range events {
		m.OnConnect(e)
	}
	return m.Value()
}

func TestWalkMetrics(t *testing.T) {
	tests := []struct {
		metric Metric
		want   float64
	}{
		{NewBranchRate(), 0.25},
		{NewRunLength(), 2},
		{NewStraightness(), 0.5},
	}
	for _, tt := range tests {
		if got := feed(tt.metric, walk); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s = %v, want %v", tt.metric.Name(), got, tt.want)
		}
	}
}

func TestMetricsEmpty(t *testing.T) {
	for _, m := range Defaults() {
		if v := m.Value(); v != 0 {
			t.Errorf("%s on no events = %v", m.Name(), v)
		}
	}
}

func TestMetricsReset(t *testing.T) {
	for _, m := range Defaults() {
		first := feed(m, walk)
		m.Reset()
		if v := m.Value(); v != 0 {
			t.Errorf("%s after reset = %v", m.Name(), v)
		}
		if again := feed(m, walk); again != first {
			t.Errorf("%s after reset and replay = %v, want %v", m.Name(), again, first)
		}
	}
}

// Always popping the newest candidate keeps the walk on one chain until it
// dead-ends, so it branches far less often than always popping the oldest.
func TestBranchRateFollowsBias(t *testing.T) {
	g, err := grid.New(15, 15)
	if err != nil {
		t.Fatal(err)
	}
	rate := func(bias float64) float64 {
		br := NewBranchRate()
		gen := maze.New(g, rand.New(rand.NewSource(3)), maze.WithBias(bias))
		gen.AddObserver(br)
		if _, err := gen.Generate(grid.Cell{}); err != nil {
			t.Fatal(err)
		}
		return br.Value()
	}
	if deep, wide := rate(0), rate(1); deep >= wide {
		t.Errorf("branch rate at bias 0 (%v) not below bias 1 (%v)", deep, wide)
	}
}
