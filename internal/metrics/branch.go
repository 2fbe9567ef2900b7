package metrics

import "github.com/san-kum/mazegen/internal/maze"

// BranchRate is the fraction of events that do not grow from the cell
// reached by the event before, that is, the walk jumped back to an older
// part of the frontier.
type BranchRate struct {
	name    string
	c       chain
	jumps   int
	samples int
}

func NewBranchRate() *BranchRate {
	return &BranchRate{name: "branch_rate"}
}

func (b *BranchRate) Name() string { return b.name }

func (b *BranchRate) OnConnect(ev maze.Event) {
	if !b.c.next(ev) {
		b.jumps++
	}
	b.samples++
}

func (b *BranchRate) Value() float64 {
	if b.samples == 0 {
		return 0
	}
	return float64(b.jumps) / float64(b.samples)
}

func (b *BranchRate) Reset() {
	b.c = chain{}
	b.jumps = 0
	b.samples = 0
}

// RunLength is the mean number of events per unbroken chain.
type RunLength struct {
	name    string
	c       chain
	runs    int
	samples int
}

func NewRunLength() *RunLength {
	return &RunLength{name: "mean_run_length"}
}

func (r *RunLength) Name() string { return r.name }

func (r *RunLength) OnConnect(ev maze.Event) {
	first := !r.c.has
	if !r.c.next(ev) || first {
		r.runs++
	}
	r.samples++
}

func (r *RunLength) Value() float64 {
	if r.runs == 0 {
		return 0
	}
	return float64(r.samples) / float64(r.runs)
}

func (r *RunLength) Reset() {
	r.c = chain{}
	r.runs = 0
	r.samples = 0
}
