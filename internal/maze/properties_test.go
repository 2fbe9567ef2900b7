package maze_test

import (
	"context"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mazegen/internal/grid"
	"github.com/san-kum/mazegen/internal/maze"
)

func generate(w, h int, start grid.Cell, seed int64, opts ...maze.Option) (*grid.Graph, []maze.Event) {
	g, err := grid.New(w, h)
	Expect(err).NotTo(HaveOccurred())
	events, err := maze.New(g, rand.New(rand.NewSource(seed)), opts...).Generate(start)
	Expect(err).NotTo(HaveOccurred())
	return g, events
}

var _ = Describe("Generator", func() {
	DescribeTable("produces a spanning tree",
		func(w, h int, start grid.Cell, bias float64) {
			for seed := int64(0); seed < 5; seed++ {
				g, events := generate(w, h, start, seed, maze.WithBias(bias))

				Expect(events).To(HaveLen(w*h - 1))
				Expect(maze.Validate(g, start, events)).To(Succeed())

				discovered := map[grid.Cell]bool{start: true}
				for _, e := range events {
					Expect(discovered).To(HaveKey(e.From), "from must already be explored")
					Expect(discovered).NotTo(HaveKey(e.To), "each cell is discovered once")
					discovered[e.To] = true
				}
				Expect(discovered).To(HaveLen(w * h))

				tree, err := maze.Replay(g, start, events)
				Expect(err).NotTo(HaveOccurred())
				for _, d := range tree.Distances(start) {
					Expect(d).To(BeNumerically(">=", 0))
				}
			}
		},
		Entry("single cell", 1, 1, grid.Cell{}, maze.DefaultBias),
		Entry("row", 9, 1, grid.Cell{X: 4}, maze.DefaultBias),
		Entry("column", 1, 9, grid.Cell{Y: 8}, maze.DefaultBias),
		Entry("square from corner", 10, 10, grid.Cell{}, maze.DefaultBias),
		Entry("wide from centre", 25, 7, grid.Cell{X: 12, Y: 3}, maze.DefaultBias),
		Entry("always breadth", 12, 12, grid.Cell{X: 5, Y: 5}, 1.0),
		Entry("mostly depth", 12, 12, grid.Cell{X: 5, Y: 5}, 0.0),
		Entry("balanced", 12, 12, grid.Cell{X: 11, Y: 0}, 0.5),
	)

	It("is bit-identical for the same seed", func() {
		_, a := generate(30, 20, grid.Cell{X: 3, Y: 4}, 99)
		_, b := generate(30, 20, grid.Cell{X: 3, Y: 4}, 99)
		Expect(a).To(Equal(b))
	})

	It("rejects a start outside the grid", func() {
		g, err := grid.New(4, 4)
		Expect(err).NotTo(HaveOccurred())
		gen := maze.New(g, rand.New(rand.NewSource(1)))
		events, err := gen.Generate(grid.Cell{X: -1, Y: 2})
		Expect(err).To(MatchError(grid.ErrOutOfRange))
		Expect(events).To(BeEmpty())
		Expect(gen.State()).To(Equal(maze.NotStarted))
	})

	It("keeps every prefix a valid partial tree", func() {
		g, events := generate(8, 8, grid.Cell{}, 5)
		for i := range events {
			Expect(maze.ValidatePrefix(g, grid.Cell{}, events[:i])).To(Succeed())
		}
	})
})

var _ = Describe("Validate", func() {
	var g *grid.Graph
	start := grid.Cell{}

	BeforeEach(func() {
		var err error
		g, err = grid.New(3, 1)
		Expect(err).NotTo(HaveOccurred())
	})

	e := func(fx, tx int) maze.Event {
		return maze.Event{From: grid.Cell{X: fx}, To: grid.Cell{X: tx}}
	}

	It("accepts a complete walk", func() {
		Expect(maze.Validate(g, start, []maze.Event{e(0, 1), e(1, 2)})).To(Succeed())
	})

	It("reports an incomplete walk", func() {
		Expect(maze.Validate(g, start, []maze.Event{e(0, 1)})).To(MatchError(maze.ErrNotSpanning))
		Expect(maze.ValidatePrefix(g, start, []maze.Event{e(0, 1)})).To(Succeed())
	})

	It("reports an unexplored source", func() {
		err := maze.Validate(g, start, []maze.Event{e(1, 2), e(0, 1)})
		Expect(err).To(MatchError(maze.ErrCausality))

		var evErr *maze.EventError
		Expect(err).To(BeAssignableToTypeOf(evErr))
		Expect(err.(*maze.EventError).Index).To(Equal(0))
	})

	It("reports a rediscovered cell", func() {
		err := maze.Validate(g, start, []maze.Event{e(0, 1), e(1, 0)})
		Expect(err).To(MatchError(maze.ErrRediscovered))
	})

	It("reports cells that are not adjacent", func() {
		err := maze.Validate(g, start, []maze.Event{e(0, 2)})
		Expect(err).To(MatchError(maze.ErrNotAdjacent))
	})

	It("reports cells outside the grid", func() {
		err := maze.Validate(g, start, []maze.Event{e(0, 3)})
		Expect(err).To(MatchError(grid.ErrOutOfRange))
	})
})

var _ = Describe("Tree", func() {
	It("finds the unique path between two cells", func() {
		g, events := generate(6, 6, grid.Cell{}, 17)
		tree, err := maze.Replay(g, grid.Cell{}, events)
		Expect(err).NotTo(HaveOccurred())

		path := tree.Path(grid.Cell{}, grid.Cell{X: 5, Y: 5})
		Expect(path).NotTo(BeEmpty())
		Expect(path[0]).To(Equal(grid.Cell{}))
		Expect(path[len(path)-1]).To(Equal(grid.Cell{X: 5, Y: 5}))
		for i := 1; i < len(path); i++ {
			Expect(tree.Connected(path[i-1], path[i])).To(BeTrue())
		}
		Expect(len(path) - 1).To(Equal(tree.Distances(grid.Cell{})[g.Index(grid.Cell{X: 5, Y: 5})]))
	})

	It("has no path across an unfinished prefix", func() {
		g, events := generate(4, 1, grid.Cell{}, 1)
		tree, err := maze.Replay(g, grid.Cell{}, events[:1])
		Expect(err).NotTo(HaveOccurred())
		Expect(tree.Path(grid.Cell{}, grid.Cell{X: 3})).To(BeNil())
	})
})

var _ = Describe("Ensemble", func() {
	It("reproduces individual seeded runs", func() {
		g, err := grid.New(10, 10)
		Expect(err).NotTo(HaveOccurred())

		results, err := maze.NewEnsemble(g, 4, 100).Run(context.Background(), grid.Cell{})
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(4))

		for i, res := range results {
			_, events := generate(10, 10, grid.Cell{}, 100+int64(i))
			Expect(res.Events).To(Equal(events))
		}
	})

	It("rejects a negative run count", func() {
		g, err := grid.New(3, 3)
		Expect(err).NotTo(HaveOccurred())
		results, err := maze.NewEnsemble(g, -1, 0).Run(context.Background(), grid.Cell{})
		Expect(err).To(MatchError(maze.ErrInvalidRuns))
		Expect(results).To(BeNil())
	})

	It("returns no results for zero runs", func() {
		g, err := grid.New(3, 3)
		Expect(err).NotTo(HaveOccurred())
		results, err := maze.NewEnsemble(g, 0, 0).Run(context.Background(), grid.Cell{})
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(BeEmpty())
	})

	It("stops on a cancelled context", func() {
		g, err := grid.New(3, 3)
		Expect(err).NotTo(HaveOccurred())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err = maze.NewEnsemble(g, 2, 0).Run(ctx, grid.Cell{})
		Expect(err).To(MatchError(context.Canceled))
	})
})
