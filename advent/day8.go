package main

import "github.com/cespare/aoc2022/grid"

func init() {
	register("8", day8)
}

func day8(e *env) error {
	lines, err := e.lines()
	if err != nil {
		return err
	}
	trees, err := grid.ParseDigits(lines)
	if err != nil {
		return err
	}
	e.answer(trees.CountVisible())
	e.answer(trees.BestScenicScore())
	return nil
}
