package main

import (
	"errors"
	"fmt"

	"github.com/cespare/aoc2022/grid"
)

func init() {
	register("23", day23)
}

const elf grid.Category = '#'

// Elves consider directions in this order, starting one later each round.
var elfDirs = [4]grid.Dir{grid.North, grid.South, grid.West, grid.East}

func day23(e *env) error {
	lines, err := e.lines()
	if err != nil {
		return err
	}
	elves := grid.Parse(lines, grid.Coord{}, elf)
	if elves.Len(elf) == 0 {
		return errors.New("no elves")
	}

	round := 0
	for ; round < 10; round++ {
		spreadElves(elves, round)
	}
	lo, hi, err := elves.Bounds(elf)
	if err != nil {
		return err
	}
	e.answer(elves.CountMissing(lo, hi, elf))
	if e.dump {
		fmt.Fprintln(e.out, elves.Render(nil))
	}

	for spreadElves(elves, round) > 0 {
		round++
	}
	e.stat("elves", elves.Len(elf))
	e.answer(round + 1)
	return nil
}

// spreadElves runs one round (numbered from 0) and returns how many
// elves moved.
func spreadElves(elves *grid.Grid, round int) int {
	free := func(cs ...grid.Coord) bool {
		for _, c := range cs {
			if elves.Has(c, elf) {
				return false
			}
		}
		return true
	}
	proposals := make(map[grid.Coord][]grid.Coord) // target -> proposers
	for _, c := range elves.Cells(elf) {
		around := c.Neighbors8()
		if free(around[:]...) {
			continue
		}
		for i := range elfDirs {
			d := elfDirs[(round+i)%len(elfDirs)]
			ahead := c.Ahead3(d)
			if free(ahead[:]...) {
				to := c.Step(d)
				proposals[to] = append(proposals[to], c)
				break
			}
		}
	}
	var moved int
	for to, from := range proposals {
		if len(from) == 1 {
			elves.Move(from[0], to, elf)
			moved++
		}
	}
	return moved
}
