package grid_test

import (
	"testing"

	"github.com/san-kum/mazegen/internal/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidDimensions(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"ZeroWidth", 0, 3},
		{"ZeroHeight", 3, 0},
		{"NegativeWidth", -1, 3},
		{"BothZero", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.w, tc.h)
			require.ErrorIs(t, err, grid.ErrInvalidDimensions)
			assert.Nil(t, g)
		})
	}
}

func TestNeighbors_Order(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	ns, err := g.Neighbors(grid.Cell{X: 1, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, []grid.Cell{{X: 0, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 2}}, ns)

	ns, err = g.Neighbors(grid.Cell{X: 0, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, []grid.Cell{{X: 1, Y: 0}, {X: 0, Y: 1}}, ns)
}

func TestNeighbors_OutOfRange(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	for _, c := range []grid.Cell{{X: -1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}, {X: 0, Y: -1}} {
		_, err := g.Neighbors(c)
		assert.ErrorIs(t, err, grid.ErrOutOfRange, "cell %v", c)
	}
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	g, err := grid.New(2, 1)
	require.NoError(t, err)

	ns, _ := g.Neighbors(grid.Cell{X: 0, Y: 0})
	ns[0] = grid.Cell{X: 9, Y: 9}

	again, _ := g.Neighbors(grid.Cell{X: 0, Y: 0})
	assert.Equal(t, []grid.Cell{{X: 1, Y: 0}}, again)
}

// TestAdjacency_Symmetric checks symmetry, no self loops and bounds on
// several shapes, including degenerate single rows and columns.
func TestAdjacency_Symmetric(t *testing.T) {
	shapes := [][2]int{{1, 1}, {1, 5}, {5, 1}, {4, 3}, {7, 7}}
	for _, s := range shapes {
		g, err := grid.New(s[0], s[1])
		require.NoError(t, err)

		edges := 0
		for _, c := range g.Cells() {
			ns, err := g.Neighbors(c)
			require.NoError(t, err)
			assert.Equal(t, len(ns), g.Degree(c))
			for _, n := range ns {
				assert.NotEqual(t, c, n)
				assert.True(t, g.InBounds(n))
				back, _ := g.Neighbors(n)
				assert.Contains(t, back, c)
				edges++
			}
		}
		want := 2 * ((s[0]-1)*s[1] + (s[1]-1)*s[0])
		assert.Equal(t, want, edges, "shape %v", s)
	}
}

func TestIndexCoordinate(t *testing.T) {
	g, err := grid.New(4, 3)
	require.NoError(t, err)

	for i, c := range g.Cells() {
		assert.Equal(t, i, g.Index(c))
		assert.Equal(t, c, g.Coordinate(i))
	}
	assert.Equal(t, 12, g.Len())
}

func TestDirectionBetween(t *testing.T) {
	origin := grid.Cell{X: 1, Y: 1}
	cases := []struct {
		to   grid.Cell
		want grid.Direction
	}{
		{grid.Cell{X: 1, Y: 0}, grid.Up},
		{grid.Cell{X: 1, Y: 2}, grid.Down},
		{grid.Cell{X: 0, Y: 1}, grid.Left},
		{grid.Cell{X: 2, Y: 1}, grid.Right},
	}
	for _, tc := range cases {
		d, ok := grid.DirectionBetween(origin, tc.to)
		require.True(t, ok)
		assert.Equal(t, tc.want, d)

		back, ok := grid.DirectionBetween(tc.to, origin)
		require.True(t, ok)
		assert.Equal(t, tc.want.Opposite(), back)
	}

	_, ok := grid.DirectionBetween(origin, grid.Cell{X: 2, Y: 2})
	assert.False(t, ok)
	_, ok = grid.DirectionBetween(origin, origin)
	assert.False(t, ok)
}
