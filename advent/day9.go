package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/aoc2022/grid"
)

func init() {
	register("9", day9)
}

func day9(e *env) error {
	lines, err := e.lines()
	if err != nil {
		return err
	}
	var moves []ropeMove
	for _, line := range lines {
		m, err := parseRopeMove(line)
		if err != nil {
			return err
		}
		moves = append(moves, m)
	}
	short := newRope(2)
	long := newRope(10)
	for _, m := range moves {
		short.move(m)
		long.move(m)
	}
	e.answer(short.visited.Len(ropeTrail))
	e.answer(long.visited.Len(ropeTrail))
	if e.dump {
		fmt.Fprintln(e.out, long.visited.Render(map[grid.Coord]byte{{}: 's'}))
	}
	return nil
}

type ropeMove struct {
	dir grid.Dir
	n   int
}

func parseRopeMove(s string) (ropeMove, error) {
	var m ropeMove
	parts := strings.Fields(s)
	if len(parts) != 2 || len(parts[0]) != 1 {
		return m, fmt.Errorf("bad move %q", s)
	}
	var ok bool
	m.dir, ok = grid.ParseLetter(parts[0][0])
	if !ok {
		return m, fmt.Errorf("bad direction in move %q", s)
	}
	var err error
	m.n, err = strconv.Atoi(parts[1])
	if err != nil {
		return m, err
	}
	if m.n < 0 {
		return m, fmt.Errorf("negative length in move %q", s)
	}
	return m, nil
}

const ropeTrail grid.Category = '#'

type rope struct {
	knots   []grid.Coord
	visited *grid.Grid // cells the tail has been on
}

func newRope(n int) *rope {
	r := &rope{
		knots:   make([]grid.Coord, n),
		visited: grid.New(),
	}
	r.visited.Set(grid.Coord{}, ropeTrail)
	return r
}

func (r *rope) move(m ropeMove) {
	for i := 0; i < m.n; i++ {
		r.knots[0] = r.knots[0].Step(m.dir)
		for j := 1; j < len(r.knots); j++ {
			lead, k := r.knots[j-1], r.knots[j]
			if lead.Chebyshev(k) <= 1 {
				break
			}
			r.knots[j] = k.Add(lead.Sub(k).Sign())
		}
		r.visited.Set(r.knots[len(r.knots)-1], ropeTrail)
	}
}
