package grid

// An Obstacle moves one cell per time step in a fixed direction,
// wrapping around the interior of its Field.
type Obstacle struct {
	Origin Coord
	Dir    Dir
}

// A Field is a set of periodically moving obstacles confined to a
// rectangular interior. Positions are computed in closed form for any
// time t; nothing is simulated step by step and nothing is mutated after
// construction.
type Field struct {
	lo, hi     Coord
	rows, cols int
	obstacles  []Obstacle
	// Horizontal movers indexed by row, vertical movers by column.
	byRow map[int][]Obstacle
	byCol map[int][]Obstacle
}

// NewField creates a field whose interior is the inclusive box [lo, hi].
func NewField(lo, hi Coord, obstacles []Obstacle) (*Field, error) {
	f := &Field{
		lo:        lo,
		hi:        hi,
		rows:      hi.Row - lo.Row + 1,
		cols:      hi.Col - lo.Col + 1,
		obstacles: obstacles,
		byRow:     make(map[int][]Obstacle),
		byCol:     make(map[int][]Obstacle),
	}
	if f.rows <= 0 || f.cols <= 0 {
		return nil, ErrEmpty
	}
	for _, o := range obstacles {
		if !o.Origin.In(lo, hi) {
			return nil, ErrOutside
		}
		if o.Dir.Horizontal() {
			f.byRow[o.Origin.Row] = append(f.byRow[o.Origin.Row], o)
		} else {
			f.byCol[o.Origin.Col] = append(f.byCol[o.Origin.Col], o)
		}
	}
	return f, nil
}

// Interior returns the inclusive bounds of the field.
func (f *Field) Interior() (lo, hi Coord) { return f.lo, f.hi }

func (f *Field) Obstacles() []Obstacle { return f.obstacles }

// Period is the number of steps after which every obstacle is back at
// its origin.
func (f *Field) Period() int { return lcm(f.rows, f.cols) }

// Position returns where o is at time t.
func (f *Field) Position(o Obstacle, t int) Coord {
	off := o.Dir.Offset()
	p := o.Origin
	if off.Row != 0 {
		shift := off.Row * (t % f.rows)
		p.Row = f.lo.Row + mod(p.Row-f.lo.Row+shift, f.rows)
	}
	if off.Col != 0 {
		shift := off.Col * (t % f.cols)
		p.Col = f.lo.Col + mod(p.Col-f.lo.Col+shift, f.cols)
	}
	return p
}

// Occupied reports whether any obstacle is on c at time t.
// Only obstacles sharing c's row or column can reach it.
func (f *Field) Occupied(c Coord, t int) bool {
	for _, o := range f.byRow[c.Row] {
		if f.Position(o, t) == c {
			return true
		}
	}
	for _, o := range f.byCol[c.Col] {
		if f.Position(o, t) == c {
			return true
		}
	}
	return false
}

// At returns every occupied cell at time t.
func (f *Field) At(t int) map[Coord]struct{} {
	occ := make(map[Coord]struct{}, len(f.obstacles))
	for _, o := range f.obstacles {
		occ[f.Position(o, t)] = struct{}{}
	}
	return occ
}

// Overlay renders the obstacles at time t for Grid.Render: a single
// obstacle shows its arrow, stacked ones show their count.
func (f *Field) Overlay(t int) map[Coord]byte {
	n := make(map[Coord]int)
	last := make(map[Coord]Dir)
	for _, o := range f.obstacles {
		p := f.Position(o, t)
		n[p]++
		last[p] = o.Dir
	}
	m := make(map[Coord]byte, len(n))
	for p, k := range n {
		switch {
		case k == 1:
			m[p] = last[p].Arrow()
		case k < 10:
			m[p] = byte('0' + k)
		default:
			m[p] = '*'
		}
	}
	return m
}
