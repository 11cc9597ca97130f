package grid

import "fmt"

// Heights is a dense rectangular map of single-digit heights,
// indexed [row][col].
type Heights [][]int8

// ParseDigits parses a rectangular block of digit lines.
func ParseDigits(lines []string) (Heights, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmpty
	}
	h := make(Heights, len(lines))
	for row, line := range lines {
		if len(line) != len(lines[0]) {
			return nil, fmt.Errorf("row %d has length %d; want %d", row, len(line), len(lines[0]))
		}
		h[row] = make([]int8, len(line))
		for col := 0; col < len(line); col++ {
			c := line[col]
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("bad digit %q at %s", c, Coord{row, col})
			}
			h[row][col] = int8(c - '0')
		}
	}
	return h, nil
}

func (h Heights) Rows() int { return len(h) }
func (h Heights) Cols() int { return len(h[0]) }

func (h Heights) Contains(c Coord) bool {
	return c.In(Coord{}, Coord{h.Rows() - 1, h.Cols() - 1})
}

func (h Heights) At(c Coord) int8 { return h[c.Row][c.Col] }

// ViewDistance walks from c in direction d and returns the number of
// cells seen before the view is blocked by a cell at least as tall as c
// (that cell included) or the edge is reached. The second result
// reports whether the edge was reached unblocked.
func (h Heights) ViewDistance(c Coord, d Dir) (n int, toEdge bool) {
	v := h.At(c)
	for p := c.Step(d); h.Contains(p); p = p.Step(d) {
		n++
		if h.At(p) >= v {
			return n, false
		}
	}
	return n, true
}

// VisibleFromEdge reports whether c can be seen from outside the map
// along at least one row or column. Border cells are always visible.
func (h Heights) VisibleFromEdge(c Coord) bool {
	for _, d := range Dirs {
		if _, ok := h.ViewDistance(c, d); ok {
			return true
		}
	}
	return false
}

// ScenicScore is the product of the four view distances from c.
func (h Heights) ScenicScore(c Coord) int {
	score := 1
	for _, d := range Dirs {
		n, _ := h.ViewDistance(c, d)
		score *= n
	}
	return score
}

// CountVisible returns how many cells are visible from outside the map.
func (h Heights) CountVisible() int {
	var n int
	for row := range h {
		for col := range h[row] {
			if h.VisibleFromEdge(Coord{row, col}) {
				n++
			}
		}
	}
	return n
}

// BestScenicScore returns the highest ScenicScore of any cell.
func (h Heights) BestScenicScore() int {
	var best int
	for row := range h {
		for col := range h[row] {
			best = max(best, h.ScenicScore(Coord{row, col}))
		}
	}
	return best
}
