package core

import "math/bits"

// CoordSet is a set of board coordinates backed by a bit-set indexed by
// r*size + c. Coordinates outside the board are ignored.
type CoordSet struct {
	size  int
	words []uint64
	n     int
}

// NewCoordSet creates an empty set for a size x size board.
func NewCoordSet(size int) *CoordSet {
	if size < 0 {
		size = 0
	}
	return &CoordSet{
		size:  size,
		words: make([]uint64, (size*size+63)/64),
	}
}

func (s *CoordSet) bit(c Coord) (word int, mask uint64, ok bool) {
	if c.R < 0 || c.R >= s.size || c.C < 0 || c.C >= s.size {
		return 0, 0, false
	}
	i := c.R*s.size + c.C
	return i / 64, 1 << (uint(i) % 64), true
}

// Add inserts c and reports whether it was not already present.
func (s *CoordSet) Add(c Coord) bool {
	w, m, ok := s.bit(c)
	if !ok || s.words[w]&m != 0 {
		return false
	}
	s.words[w] |= m
	s.n++
	return true
}

// Remove deletes c and reports whether it was present.
func (s *CoordSet) Remove(c Coord) bool {
	w, m, ok := s.bit(c)
	if !ok || s.words[w]&m == 0 {
		return false
	}
	s.words[w] &^= m
	s.n--
	return true
}

// Has reports whether c is in the set.
func (s *CoordSet) Has(c Coord) bool {
	w, m, ok := s.bit(c)
	return ok && s.words[w]&m != 0
}

// Len returns the number of coordinates in the set.
func (s *CoordSet) Len() int {
	return s.n
}

// Coords returns the members ordered by row then column.
func (s *CoordSet) Coords() []Coord {
	coords := make([]Coord, 0, s.n)
	for w, word := range s.words {
		for word != 0 {
			i := w*64 + bits.TrailingZeros64(word)
			coords = append(coords, At(i/s.size, i%s.size))
			word &= word - 1
		}
	}
	return coords
}
