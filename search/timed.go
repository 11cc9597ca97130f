package search

import "github.com/cespare/aoc2022/grid"

// Obstacles reports time-dependent occupancy. Occupancy must repeat
// with the given period.
type Obstacles interface {
	Occupied(c grid.Coord, t int) bool
	Period() int
}

// A Timed state is a position at a point in time.
type Timed struct {
	Pos grid.Coord
	T   int
}

// Earliest finds the earliest time at which to can be reached when
// leaving from at time t0. Each step moves to one of the four neighbors
// or waits in place. A cell may be entered at time t only if open
// reports true for it and obs does not occupy it at t.
//
// States are deduplicated by position and t modulo the obstacle period:
// a position revisited a whole period later has the same future and is
// never better. This bounds the search, so an unreachable goal yields
// ErrUnreachable rather than an endless wait.
func Earliest(open func(grid.Coord) bool, obs Obstacles, from, to grid.Coord, t0 int) (Result[Timed], error) {
	period := obs.Period()
	key := func(s Timed) Timed { return Timed{s.Pos, s.T % period} }
	next := func(s Timed) []Timed {
		t := s.T + 1
		ns := make([]Timed, 0, 5)
		for _, n := range s.Pos.Neighbors4() {
			if open(n) && !obs.Occupied(n, t) {
				ns = append(ns, Timed{n, t})
			}
		}
		if !obs.Occupied(s.Pos, t) {
			ns = append(ns, Timed{s.Pos, t})
		}
		return ns
	}
	goal := func(s Timed) bool { return s.Pos == to }
	return BFS([]Timed{{from, t0}}, key, next, goal)
}
