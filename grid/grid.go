package grid

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrEmpty is returned when a bounding box is requested over no cells.
	ErrEmpty = errors.New("grid: no cells")
	// ErrOutside is returned when an obstacle starts outside its field.
	ErrOutside = errors.New("grid: obstacle outside field interior")
)

// A Category classifies a cell. Its value is the byte that marks the
// category in puzzle input and in rendered output (for instance '#').
type Category byte

// A Grid is a sparse set of cells, each belonging to exactly one Category.
// Cells not present in the grid are in no category.
//
// The zero Grid is not usable; create one with New or Parse.
type Grid struct {
	cells  map[Coord]Category
	counts [256]int

	// Blank is drawn by Render for cells in no category.
	// If zero, '.' is used.
	Blank byte
}

func New() *Grid {
	return &Grid{cells: make(map[Coord]Category)}
}

// Parse builds a grid from text. For every byte of lines[row][col] that
// equals one of cats, the cell origin+(row, col) is stored in that
// category. All other bytes are ignored.
func Parse(lines []string, origin Coord, cats ...Category) *Grid {
	var want [256]bool
	for _, cat := range cats {
		want[cat] = true
	}
	g := New()
	for row, line := range lines {
		for col := 0; col < len(line); col++ {
			if b := line[col]; want[b] {
				g.Set(origin.Add(Coord{row, col}), Category(b))
			}
		}
	}
	return g
}

// Set stores c in category cat, removing it from any other category.
func (g *Grid) Set(c Coord, cat Category) {
	if old, ok := g.cells[c]; ok {
		g.counts[old]--
	}
	g.cells[c] = cat
	g.counts[cat]++
}

// Delete removes c from whatever category it is in.
func (g *Grid) Delete(c Coord) {
	if old, ok := g.cells[c]; ok {
		g.counts[old]--
		delete(g.cells, c)
	}
}

// At returns the category of c, if any.
func (g *Grid) At(c Coord) (Category, bool) {
	cat, ok := g.cells[c]
	return cat, ok
}

func (g *Grid) Has(c Coord, cat Category) bool {
	got, ok := g.cells[c]
	return ok && got == cat
}

// Len returns the number of cells in cat.
func (g *Grid) Len(cat Category) int { return g.counts[cat] }

// Move relocates a cell of category cat from from to to. The caller must
// ensure that from is currently in cat. Whatever was at to is replaced.
func (g *Grid) Move(from, to Coord, cat Category) {
	delete(g.cells, from)
	g.counts[cat]--
	g.Set(to, cat)
}

// Cells returns the cells in cat in row-major order.
func (g *Grid) Cells(cat Category) []Coord {
	cs := make([]Coord, 0, g.counts[cat])
	for c, got := range g.cells {
		if got == cat {
			cs = append(cs, c)
		}
	}
	sortRowMajor(cs)
	return cs
}

// Bounds returns the bounding box of every cell in any of cats, or of
// every cell in the grid if cats is empty.
func (g *Grid) Bounds(cats ...Category) (lo, hi Coord, err error) {
	var want [256]bool
	for _, cat := range cats {
		want[cat] = true
	}
	first := true
	for c, cat := range g.cells {
		if len(cats) > 0 && !want[cat] {
			continue
		}
		if first {
			lo, hi = c, c
			first = false
			continue
		}
		lo = lo.Min(c)
		hi = hi.Max(c)
	}
	if first {
		return lo, hi, ErrEmpty
	}
	return lo, hi, nil
}

// CountMissing returns the number of cells in [lo, hi] that are not in cat.
func (g *Grid) CountMissing(lo, hi Coord, cat Category) int {
	area := (hi.Row - lo.Row + 1) * (hi.Col - lo.Col + 1)
	for c, got := range g.cells {
		if got == cat && c.In(lo, hi) {
			area--
		}
	}
	return area
}

// Render draws the bounding box of all cells and overlay, one line per
// row. Overlay entries take precedence over cell categories.
func (g *Grid) Render(overlay map[Coord]byte) string {
	lo, hi, err := g.Bounds()
	if err != nil {
		if len(overlay) == 0 {
			return ""
		}
		for c := range overlay {
			lo, hi = c, c
			break
		}
	}
	for c := range overlay {
		lo = lo.Min(c)
		hi = hi.Max(c)
	}
	blank := g.Blank
	if blank == 0 {
		blank = '.'
	}
	var b strings.Builder
	for row := lo.Row; row <= hi.Row; row++ {
		if row > lo.Row {
			b.WriteByte('\n')
		}
		for col := lo.Col; col <= hi.Col; col++ {
			c := Coord{row, col}
			if ch, ok := overlay[c]; ok {
				b.WriteByte(ch)
			} else if cat, ok := g.cells[c]; ok {
				b.WriteByte(byte(cat))
			} else {
				b.WriteByte(blank)
			}
		}
	}
	return b.String()
}

func sortRowMajor(cs []Coord) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Row != cs[j].Row {
			return cs[i].Row < cs[j].Row
		}
		return cs[i].Col < cs[j].Col
	})
}
