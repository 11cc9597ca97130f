package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/aoc2022/grid"
)

func init() {
	register("14", day14)
}

const (
	rock grid.Category = '#'
	sand grid.Category = 'o'
)

var sandSource = grid.C(0, 500)

func day14(e *env) error {
	lines, err := e.lines()
	if err != nil {
		return err
	}
	c, err := parseCave(lines)
	if err != nil {
		return err
	}

	for !c.cells.Has(sandSource, sand) {
		p, ok := c.drop()
		if !ok {
			break
		}
		c.cells.Set(p, sand)
	}
	e.answer(c.cells.Len(sand))
	if e.dump {
		fmt.Fprintln(e.out, c.render())
	}

	// The sand already at rest stays put when the floor appears.
	c.floor = c.lowest + 2
	for !c.cells.Has(sandSource, sand) {
		p, _ := c.drop()
		c.cells.Set(p, sand)
	}
	e.answer(c.cells.Len(sand))
	if e.dump {
		fmt.Fprintln(e.out, c.render())
	}
	return nil
}

type cave struct {
	cells  *grid.Grid
	lowest int // greatest rock row
	floor  int // 0 means no floor
}

func parseCave(lines []string) (*cave, error) {
	c := &cave{cells: grid.New()}
	for _, line := range lines {
		if line == "" {
			continue
		}
		var path []grid.Coord
		for _, s := range strings.Split(line, " -> ") {
			p, err := parsePoint(s)
			if err != nil {
				return nil, fmt.Errorf("bad rock path %q: %s", line, err)
			}
			path = append(path, p)
		}
		if len(path) == 1 {
			c.cells.Set(path[0], rock)
		}
		for i := 1; i < len(path); i++ {
			a, b := path[i-1], path[i]
			if a.Row != b.Row && a.Col != b.Col {
				return nil, fmt.Errorf("diagonal rock segment %s -> %s", a, b)
			}
			step := b.Sub(a).Sign()
			for p := a; ; p = p.Add(step) {
				c.cells.Set(p, rock)
				if p == b {
					break
				}
			}
		}
	}
	_, hi, err := c.cells.Bounds(rock)
	if err != nil {
		return nil, err
	}
	if hi.Row < sandSource.Row {
		return nil, errors.New("no rock below the sand source")
	}
	c.lowest = hi.Row
	return c, nil
}

// parsePoint parses "x,y" as row y, column x.
func parsePoint(s string) (grid.Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Coord{}, fmt.Errorf("missing comma in %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return grid.Coord{}, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return grid.Coord{}, err
	}
	return grid.C(y, x), nil
}

func (c *cave) blocked(p grid.Coord) bool {
	if c.floor > 0 && p.Row >= c.floor {
		return true
	}
	_, ok := c.cells.At(p)
	return ok
}

// drop follows one unit of sand from the source and returns where it
// comes to rest. Without a floor, sand that falls past the lowest rock
// falls forever and drop reports false.
func (c *cave) drop() (grid.Coord, bool) {
	p := sandSource
	for {
		below := p.Step(grid.South)
		moved := false
		for _, n := range [3]grid.Coord{below, below.Step(grid.West), below.Step(grid.East)} {
			if !c.blocked(n) {
				p = n
				moved = true
				break
			}
		}
		if !moved {
			return p, true
		}
		if c.floor == 0 && p.Row > c.lowest {
			return p, false
		}
	}
}

func (c *cave) render() string {
	return c.cells.Render(map[grid.Coord]byte{sandSource: '+'})
}
