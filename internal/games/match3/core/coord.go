package core

import "fmt"

// Coord is a position on the board. R grows downward (row 0 is the top),
// C grows to the right.
type Coord struct {
	R int
	C int
}

// At is a convenience constructor for Coord.
func At(r, c int) Coord {
	return Coord{R: r, C: c}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.R, c.C)
}

// Add returns a new Coord offset by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{R: c.R + dr, C: c.C + dc}
}

// Step returns the neighbor one step in the given direction.
func (c Coord) Step(d Dir) Coord {
	dr, dc := d.Delta()
	return c.Add(dr, dc)
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	dr := c.R - other.R
	dc := c.C - other.C
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Adjacent reports whether other is exactly one orthogonal step away.
func (c Coord) Adjacent(other Coord) bool {
	return c.Manhattan(other) == 1
}

// Neighbors returns the four orthogonal neighbors. Some may be off the board.
func (c Coord) Neighbors() [4]Coord {
	return [4]Coord{c.Step(DirUp), c.Step(DirRight), c.Step(DirDown), c.Step(DirLeft)}
}

// Dir is one of the four swap directions.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (dr, dc) offset for one step in this direction.
// Up decreases R, Down increases R.
func (d Dir) Delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirRight:
		return 0, 1
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return d
	}
}
