package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cespare/aoc2022/grid"
	"github.com/cespare/aoc2022/search"
	"github.com/kr/pretty"
)

func init() {
	register("17", day17)
}

const (
	chamberWidth = 7
	fallen       grid.Category = '#'
)

// Rock shapes as (x, y) offsets from their lower-left corner, y up.
var rockShapes = [][]xy{
	{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
	{{1, 0}, {0, 1}, {1, 1}, {2, 1}, {1, 2}},
	{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
	{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
}

type xy struct{ x, y int }

func day17(e *env) error {
	lines, err := e.lines()
	if err != nil {
		return err
	}
	jets, err := parseJets(strings.Join(lines, ""))
	if err != nil {
		return err
	}

	c := newChamber(jets)
	for i := 0; i < 2022; i++ {
		c.drop()
	}
	e.answer(c.height)

	c = newChamber(jets)
	cycle, err := search.DetectCycle(0, 100_000, func() (chamberState, int) {
		c.drop()
		return c.state(), c.height
	})
	if err != nil {
		return err
	}
	e.stat("rocks dropped before repeating", cycle.Start+cycle.Length)
	e.answer(cycle.At(1_000_000_000_000))
	if e.dump {
		pretty.Fprintf(e.out, "%# v\n", cycle)
		fmt.Fprintln(e.out, c.render(20))
	}
	return nil
}

func parseJets(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("no jets")
	}
	jets := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			jets[i] = -1
		case '>':
			jets[i] = 1
		default:
			return nil, fmt.Errorf("bad jet %q at %d", s[i], i)
		}
	}
	return jets, nil
}

// A chamber stores settled rock with y growing upward from the floor at
// y = 0. In the grid a cell (x, y) is row -y, column x, so a rendering
// shows the top of the tower first.
type chamber struct {
	rocks  *grid.Grid
	jets   []int
	jet    int // next jet
	shape  int // next rock shape
	tops   [chamberWidth]int
	height int
}

// chamberState is enough to determine everything the chamber does next:
// which rock and jet come next and the shape of the tower's surface.
type chamberState struct {
	shape, jet int
	surface    [chamberWidth]int
}

func newChamber(jets []int) *chamber {
	return &chamber{rocks: grid.New(), jets: jets}
}

func (c *chamber) fits(shape []xy, x, y int) bool {
	for _, p := range shape {
		px, py := x+p.x, y+p.y
		if px < 0 || px >= chamberWidth || py <= 0 {
			return false
		}
		if c.rocks.Has(grid.C(-py, px), fallen) {
			return false
		}
	}
	return true
}

func (c *chamber) drop() {
	shape := rockShapes[c.shape]
	c.shape = (c.shape + 1) % len(rockShapes)
	x, y := 2, c.height+4
	for {
		dx := c.jets[c.jet]
		c.jet = (c.jet + 1) % len(c.jets)
		if c.fits(shape, x+dx, y) {
			x += dx
		}
		if !c.fits(shape, x, y-1) {
			break
		}
		y--
	}
	for _, p := range shape {
		px, py := x+p.x, y+p.y
		c.rocks.Set(grid.C(-py, px), fallen)
		c.tops[px] = max(c.tops[px], py)
		c.height = max(c.height, py)
	}
}

func (c *chamber) state() chamberState {
	s := chamberState{shape: c.shape, jet: c.jet}
	for i, top := range c.tops {
		s.surface[i] = c.height - top
	}
	return s
}

// render draws the top rows of the tower between the chamber walls.
func (c *chamber) render(rows int) string {
	top := grid.New()
	walls := make(map[grid.Coord]byte)
	for y := max(1, c.height-rows+1); y <= c.height; y++ {
		walls[grid.C(-y, -1)] = '|'
		walls[grid.C(-y, chamberWidth)] = '|'
		for x := 0; x < chamberWidth; x++ {
			if p := grid.C(-y, x); c.rocks.Has(p, fallen) {
				top.Set(p, fallen)
			}
		}
	}
	return top.Render(walls)
}
