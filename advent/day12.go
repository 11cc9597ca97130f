package main

import (
	"errors"
	"fmt"

	"github.com/cespare/aoc2022/grid"
	"github.com/cespare/aoc2022/search"
)

func init() {
	register("12", day12)
}

func day12(e *env) error {
	lines, err := e.lines()
	if err != nil {
		return err
	}
	hm, err := parseHeightmap(lines)
	if err != nil {
		return err
	}

	// Climbing: A* from S to E; each step is one cell, so the
	// Manhattan distance never overestimates.
	up, err := search.AStar(hm.start, hm.climb, func(c grid.Coord) bool { return c == hm.end }, hm.end.Manhattan)
	if err != nil {
		return err
	}
	e.stat("climb states explored", up.Explored)
	e.answer(up.Steps)

	// Fewest steps from any lowest square: search backward from E.
	down, err := search.BFS([]grid.Coord{hm.end}, search.Identity[grid.Coord], hm.descend, func(c grid.Coord) bool {
		return hm.height(c) == 0
	})
	if err != nil {
		return err
	}
	e.stat("descent states explored", down.Explored)
	e.answer(down.Steps)

	if e.dump {
		route, err := search.ShortestPath(hm.start, hm.climb, func(c grid.Coord) bool { return c == hm.end })
		if err != nil {
			return err
		}
		overlay := make(map[grid.Coord]byte)
		for _, c := range route {
			overlay[c] = '*'
		}
		overlay[down.State] = 'a'
		fmt.Fprintln(e.out, hm.cells.Render(overlay))
	}
	return nil
}

type heightmap struct {
	cells      *grid.Grid
	start, end grid.Coord
}

func parseHeightmap(lines []string) (*heightmap, error) {
	cats := []grid.Category{'S', 'E'}
	for c := 'a'; c <= 'z'; c++ {
		cats = append(cats, grid.Category(c))
	}
	hm := &heightmap{cells: grid.Parse(lines, grid.Coord{}, cats...)}
	var n int
	for _, line := range lines {
		n += len(line)
	}
	if hm.cells.Len('S') != 1 || hm.cells.Len('E') != 1 {
		return nil, errors.New("heightmap needs exactly one S and one E")
	}
	if got := cellCount(hm.cells, cats); got != n {
		return nil, fmt.Errorf("heightmap has %d unrecognized squares", n-got)
	}
	hm.start = hm.cells.Cells('S')[0]
	hm.end = hm.cells.Cells('E')[0]
	return hm, nil
}

func cellCount(g *grid.Grid, cats []grid.Category) int {
	var n int
	for _, cat := range cats {
		n += g.Len(cat)
	}
	return n
}

// height returns the elevation of c from 0 ('a') to 25 ('z'),
// or -1 if c is off the map.
func (hm *heightmap) height(c grid.Coord) int {
	cat, ok := hm.cells.At(c)
	if !ok {
		return -1
	}
	switch cat {
	case 'S':
		return 0
	case 'E':
		return 'z' - 'a'
	}
	return int(cat - 'a')
}

// climb returns the squares reachable in one step from c: at most one
// higher, any amount lower.
func (hm *heightmap) climb(c grid.Coord) []grid.Coord {
	h := hm.height(c)
	var next []grid.Coord
	for _, n := range c.Neighbors4() {
		if nh := hm.height(n); nh >= 0 && nh <= h+1 {
			next = append(next, n)
		}
	}
	return next
}

// descend is climb reversed: the squares from which c is one step away.
func (hm *heightmap) descend(c grid.Coord) []grid.Coord {
	h := hm.height(c)
	var next []grid.Coord
	for _, n := range c.Neighbors4() {
		if nh := hm.height(n); nh >= 0 && h <= nh+1 {
			next = append(next, n)
		}
	}
	return next
}
