package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/aoc2022/grid"
	"github.com/cespare/aoc2022/search"
)

func init() {
	register("18", day18)
}

func day18(e *env) error {
	lines, err := e.lines()
	if err != nil {
		return err
	}
	var cubes []grid.Coord3
	for _, line := range lines {
		c, err := parseCube(line)
		if err != nil {
			return err
		}
		cubes = append(cubes, c)
	}
	lava := make(map[grid.Coord3]bool, len(cubes))
	for _, c := range cubes {
		lava[c] = true
	}

	var surface int
	for c := range lava {
		for _, n := range c.Neighbors6() {
			if !lava[n] {
				surface++
			}
		}
	}
	e.answer(surface)

	// Flood the air around the droplet inside a box one cell larger than
	// it on every side; every lava face touched by that air is exterior.
	lo, hi, err := grid.Bounds3(cubes)
	if err != nil {
		return err
	}
	one := grid.Coord3{X: 1, Y: 1, Z: 1}
	lo, hi = lo.Sub(one), hi.Add(one)
	air := search.Flood([]grid.Coord3{lo}, func(c grid.Coord3) []grid.Coord3 {
		var next []grid.Coord3
		for _, n := range c.Neighbors6() {
			if n.In(lo, hi) && !lava[n] {
				next = append(next, n)
			}
		}
		return next
	})
	e.stat("exterior air cells", len(air))
	var exterior int
	for c := range air {
		for _, n := range c.Neighbors6() {
			if lava[n] {
				exterior++
			}
		}
	}
	e.answer(exterior)
	return nil
}

func parseCube(s string) (grid.Coord3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return grid.Coord3{}, fmt.Errorf("bad cube %q", s)
	}
	var v [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return grid.Coord3{}, fmt.Errorf("bad cube %q: %s", s, err)
		}
		v[i] = n
	}
	return grid.Coord3{X: v[0], Y: v[1], Z: v[2]}, nil
}
