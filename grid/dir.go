package grid

// A Dir is one of the four compass directions.
type Dir uint8

const (
	North Dir = iota
	East
	South
	West
)

// Dirs lists the directions in clockwise order.
var Dirs = [4]Dir{North, East, South, West}

var dirOffsets = [4]Coord{
	North: {-1, 0},
	East:  {0, 1},
	South: {1, 0},
	West:  {0, -1},
}

// Offset returns the unit vector for d.
func (d Dir) Offset() Coord { return dirOffsets[d&3] }

// A Rotation is a quarter turn.
type Rotation uint8

const (
	Left Rotation = iota
	Right
)

// Turn rotates d a quarter turn.
func (d Dir) Turn(r Rotation) Dir {
	if r == Right {
		return (d + 1) & 3
	}
	return (d + 3) & 3
}

func (d Dir) Reverse() Dir { return (d + 2) & 3 }

// Horizontal reports whether d is East or West.
func (d Dir) Horizontal() bool { return d == East || d == West }

func (d Dir) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "?"
}

// Arrow returns the ^>v< glyph for d.
func (d Dir) Arrow() byte { return "^>v<"[d&3] }

// ParseArrow parses one of ^ > v <.
func ParseArrow(b byte) (Dir, bool) {
	switch b {
	case '^':
		return North, true
	case '>':
		return East, true
	case 'v':
		return South, true
	case '<':
		return West, true
	}
	return 0, false
}

// ParseLetter parses one of U R D L.
func ParseLetter(b byte) (Dir, bool) {
	switch b {
	case 'U':
		return North, true
	case 'R':
		return East, true
	case 'D':
		return South, true
	case 'L':
		return West, true
	}
	return 0, false
}
