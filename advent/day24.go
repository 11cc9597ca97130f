package main

import (
	"errors"
	"fmt"

	"github.com/cespare/aoc2022/grid"
	"github.com/cespare/aoc2022/search"
)

func init() {
	register("24", day24)
}

const (
	valleyWall  grid.Category = '#'
	valleyFloor grid.Category = '.'
)

func day24(e *env) error {
	lines, err := e.lines()
	if err != nil {
		return err
	}
	v, err := parseValley(lines)
	if err != nil {
		return err
	}

	trip := func(from, to grid.Coord, t int) (int, error) {
		res, err := search.Earliest(v.open, v.blizzards, from, to, t)
		if err != nil {
			return 0, fmt.Errorf("%s -> %s leaving at %d: %w", from, to, t, err)
		}
		e.stat(fmt.Sprintf("states explored leaving at %d", t), res.Explored)
		return res.State.T, nil
	}
	there, err := trip(v.start, v.goal, 0)
	if err != nil {
		return err
	}
	e.answer(there)
	back, err := trip(v.goal, v.start, there)
	if err != nil {
		return err
	}
	again, err := trip(v.start, v.goal, back)
	if err != nil {
		return err
	}
	e.answer(again)

	if e.dump {
		overlay := v.blizzards.Overlay(there)
		overlay[v.goal] = 'E'
		fmt.Fprintln(e.out, v.cells.Render(overlay))
	}
	return nil
}

type valley struct {
	cells       *grid.Grid
	blizzards   *grid.Field
	start, goal grid.Coord
}

func parseValley(lines []string) (*valley, error) {
	v := &valley{cells: grid.Parse(lines, grid.Coord{}, valleyWall, valleyFloor)}
	var obstacles []grid.Obstacle
	for row, line := range lines {
		for col := 0; col < len(line); col++ {
			b := line[col]
			if b == byte(valleyWall) || b == byte(valleyFloor) {
				continue
			}
			d, ok := grid.ParseArrow(b)
			if !ok {
				return nil, fmt.Errorf("unexpected %q at %s", b, grid.C(row, col))
			}
			c := grid.C(row, col)
			v.cells.Set(c, valleyFloor)
			obstacles = append(obstacles, grid.Obstacle{Origin: c, Dir: d})
		}
	}
	lo, hi, err := v.cells.Bounds()
	if err != nil {
		return nil, err
	}
	var foundStart, foundGoal bool
	for _, c := range v.cells.Cells(valleyFloor) {
		if c.Row == lo.Row && !foundStart {
			v.start, foundStart = c, true
		}
		if c.Row == hi.Row && !foundGoal {
			v.goal, foundGoal = c, true
		}
	}
	if !foundStart || !foundGoal {
		return nil, errors.New("valley needs an opening in the top and bottom walls")
	}
	// The interior is everything inside the one-cell-thick wall.
	inset := grid.C(1, 1)
	v.blizzards, err = grid.NewField(lo.Add(inset), hi.Sub(inset), obstacles)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (v *valley) open(c grid.Coord) bool {
	return v.cells.Has(c, valleyFloor)
}
