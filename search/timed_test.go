package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cespare/aoc2022/grid"
)

func cellSet(cs ...grid.Coord) func(grid.Coord) bool {
	m := make(map[grid.Coord]bool)
	for _, c := range cs {
		m[c] = true
	}
	return func(c grid.Coord) bool { return m[c] }
}

// A one-cell-high corridor S . . G with a single obstacle sweeping west
// through the two interior cells. Entering the first cell at t=1 would
// collide, so the best plan waits once at S.
func TestEarliestForcedWait(t *testing.T) {
	start, goal := grid.C(1, 0), grid.C(1, 3)
	f, err := grid.NewField(grid.C(1, 1), grid.C(1, 2), []grid.Obstacle{{Origin: grid.C(1, 2), Dir: grid.West}})
	require.NoError(t, err)
	require.Equal(t, 2, f.Period())

	open := cellSet(start, grid.C(1, 1), grid.C(1, 2), goal)
	res, err := Earliest(open, f, start, goal, 0)
	require.NoError(t, err)
	assert.Equal(t, 3+1, res.State.T)
	assert.Equal(t, goal, res.State.Pos)

	// Leaving one step later, the obstacle is already out of the way.
	res, err = Earliest(open, f, start, goal, 1)
	require.NoError(t, err)
	assert.Equal(t, 1+3, res.State.T)
}

func TestEarliestNoObstacles(t *testing.T) {
	f, err := grid.NewField(grid.C(1, 1), grid.C(3, 3), nil)
	require.NoError(t, err)
	var cells []grid.Coord
	for r := 1; r <= 3; r++ {
		for c := 1; c <= 3; c++ {
			cells = append(cells, grid.C(r, c))
		}
	}
	res, err := Earliest(cellSet(cells...), f, grid.C(1, 1), grid.C(3, 3), 10)
	require.NoError(t, err)
	assert.Equal(t, 14, res.State.T)
	assert.Equal(t, 4, res.Steps)
}

func TestEarliestUnreachable(t *testing.T) {
	start := grid.C(1, 0)
	f, err := grid.NewField(grid.C(1, 1), grid.C(1, 3), []grid.Obstacle{{Origin: grid.C(1, 1), Dir: grid.East}})
	require.NoError(t, err)
	// The goal is walled off; the search must end instead of waiting forever.
	open := cellSet(start, grid.C(1, 1), grid.C(1, 2), grid.C(1, 3))
	_, err = Earliest(open, f, start, grid.C(1, 5), 0)
	assert.ErrorIs(t, err, ErrUnreachable)
}
