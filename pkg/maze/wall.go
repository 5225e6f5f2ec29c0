package maze

import (
	"strconv"
	"strings"
)

// Direction is one of the four compass directions.
type Direction uint8

// Compass directions. The order matches [Directions].
const (
	North Direction = iota
	East
	South
	West
)

// Directions lists all four directions in North, East, South, West order.
var Directions = [4]Direction{North, East, South, West}

var (
	directionNames = [4]string{"North", "East", "South", "West"}
	rowOffsets     = [4]int{-1, 0, 1, 0}
	colOffsets     = [4]int{0, 1, 0, -1}
)

// String returns the direction's name, e.g. "North".
func (d Direction) String() string {
	if d > West {
		return "Direction(" + strconv.Itoa(int(d)) + ")"
	}
	return directionNames[d]
}

// Offset returns the row and column deltas of one step in direction d.
func (d Direction) Offset() (dr, dc int) { return rowOffsets[d&3], colOffsets[d&3] }

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction { return (d + 2) & 3 }

// Bit returns the mask bit for d. North is the high bit, West the low bit.
func (d Direction) Bit() WallMask { return 1 << (3 - d&3) }

// WallMask is a per-cell flag set with one bit per direction. A set bit means
// a wall is present.
type WallMask uint8

// AllWalls is the mask of a cell with all four walls standing.
const AllWalls WallMask = 0b1111

// Has reports whether the wall on side d is present.
func (m WallMask) Has(d Direction) bool { return m&d.Bit() != 0 }

// Without returns m with the wall on side d removed.
func (m WallMask) Without(d Direction) WallMask { return m &^ d.Bit() }

// With returns m with the wall on side d added.
func (m WallMask) With(d Direction) WallMask { return m | d.Bit() }

func (m WallMask) North() bool { return m.Has(North) }
func (m WallMask) East() bool  { return m.Has(East) }
func (m WallMask) South() bool { return m.Has(South) }
func (m WallMask) West() bool  { return m.Has(West) }

// Open returns the number of sides without a wall.
func (m WallMask) Open() int {
	n := 0
	for _, d := range Directions {
		if !m.Has(d) {
			n++
		}
	}
	return n
}

// String lists the walls present as initials, e.g. "NE-W" or "----".
func (m WallMask) String() string {
	var b strings.Builder
	for _, d := range Directions {
		if m.Has(d) {
			b.WriteByte(directionNames[d][0])
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}
