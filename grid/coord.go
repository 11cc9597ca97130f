// Package grid holds the coordinate, direction, and terrain types shared by
// the spatial puzzle solvers.
package grid

import "fmt"

// A Coord is a 2D integer point. Row grows downward and Col grows to the
// right, matching the layout of puzzle input text.
type Coord struct {
	Row, Col int
}

// C is shorthand for Coord{row, col}.
func C(row, col int) Coord { return Coord{row, col} }

func (c Coord) Add(d Coord) Coord { return Coord{c.Row + d.Row, c.Col + d.Col} }
func (c Coord) Sub(d Coord) Coord { return Coord{c.Row - d.Row, c.Col - d.Col} }
func (c Coord) Neg() Coord        { return Coord{-c.Row, -c.Col} }
func (c Coord) Scale(n int) Coord { return Coord{c.Row * n, c.Col * n} }

// Sign returns c with each component replaced by its sign (-1, 0, or 1).
func (c Coord) Sign() Coord { return Coord{sign(c.Row), sign(c.Col)} }

func (c Coord) Min(d Coord) Coord { return Coord{min(c.Row, d.Row), min(c.Col, d.Col)} }
func (c Coord) Max(d Coord) Coord { return Coord{max(c.Row, d.Row), max(c.Col, d.Col)} }

// In reports whether c lies in the box [lo, hi], inclusive on both axes.
func (c Coord) In(lo, hi Coord) bool {
	return c.Row >= lo.Row && c.Row <= hi.Row && c.Col >= lo.Col && c.Col <= hi.Col
}

// Manhattan returns the taxicab distance between c and d.
func (c Coord) Manhattan(d Coord) int {
	return abs(c.Row-d.Row) + abs(c.Col-d.Col)
}

// Chebyshev returns the king-move distance between c and d.
func (c Coord) Chebyshev(d Coord) int {
	return max(abs(c.Row-d.Row), abs(c.Col-d.Col))
}

// Step returns the cell one unit from c in direction d.
func (c Coord) Step(d Dir) Coord { return c.Add(d.Offset()) }

// Neighbors4 returns the orthogonal neighbors of c in N, E, S, W order.
func (c Coord) Neighbors4() [4]Coord {
	return [4]Coord{
		{c.Row - 1, c.Col},
		{c.Row, c.Col + 1},
		{c.Row + 1, c.Col},
		{c.Row, c.Col - 1},
	}
}

// Neighbors8 returns all eight surrounding cells, clockwise from N.
func (c Coord) Neighbors8() [8]Coord {
	return [8]Coord{
		{c.Row - 1, c.Col},
		{c.Row - 1, c.Col + 1},
		{c.Row, c.Col + 1},
		{c.Row + 1, c.Col + 1},
		{c.Row + 1, c.Col},
		{c.Row + 1, c.Col - 1},
		{c.Row, c.Col - 1},
		{c.Row - 1, c.Col - 1},
	}
}

// Ahead3 returns the three cells in front of c when facing d:
// ahead-left, ahead, and ahead-right.
func (c Coord) Ahead3(d Dir) [3]Coord {
	ahead := c.Step(d)
	return [3]Coord{
		ahead.Step(d.Turn(Left)),
		ahead,
		ahead.Step(d.Turn(Right)),
	}
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// A Coord3 is a 3D integer point.
type Coord3 struct {
	X, Y, Z int
}

func (c Coord3) Add(d Coord3) Coord3 { return Coord3{c.X + d.X, c.Y + d.Y, c.Z + d.Z} }
func (c Coord3) Sub(d Coord3) Coord3 { return Coord3{c.X - d.X, c.Y - d.Y, c.Z - d.Z} }

func (c Coord3) Min(d Coord3) Coord3 {
	return Coord3{min(c.X, d.X), min(c.Y, d.Y), min(c.Z, d.Z)}
}

func (c Coord3) Max(d Coord3) Coord3 {
	return Coord3{max(c.X, d.X), max(c.Y, d.Y), max(c.Z, d.Z)}
}

// In reports whether c lies in the box [lo, hi], inclusive on all axes.
func (c Coord3) In(lo, hi Coord3) bool {
	return c.X >= lo.X && c.X <= hi.X &&
		c.Y >= lo.Y && c.Y <= hi.Y &&
		c.Z >= lo.Z && c.Z <= hi.Z
}

// Faces3 are the six unit offsets of a cube's faces: ±X, ±Y, ±Z.
var Faces3 = [6]Coord3{
	{-1, 0, 0}, {1, 0, 0},
	{0, -1, 0}, {0, 1, 0},
	{0, 0, -1}, {0, 0, 1},
}

// Neighbors6 returns the face-adjacent cells of c.
func (c Coord3) Neighbors6() [6]Coord3 {
	var ns [6]Coord3
	for i, f := range Faces3 {
		ns[i] = c.Add(f)
	}
	return ns
}

// Bounds3 returns the componentwise min and max of cs.
// It returns ErrEmpty if cs is empty.
func Bounds3(cs []Coord3) (lo, hi Coord3, err error) {
	if len(cs) == 0 {
		return lo, hi, ErrEmpty
	}
	lo, hi = cs[0], cs[0]
	for _, c := range cs[1:] {
		lo = lo.Min(c)
		hi = hi.Max(c)
	}
	return lo, hi, nil
}
