package core

// swappedView reads through to a grid as if the tiles at a and b had been
// exchanged. It never writes to the grid.
type swappedView struct {
	g    *Grid
	a, b Coord
}

func (v swappedView) Size() int {
	return v.g.Size()
}

func (v swappedView) Cell(c Coord) CellType {
	return v.g.Cell(c)
}

func (v swappedView) Tile(c Coord) Tile {
	switch c {
	case v.a:
		return v.g.Tile(v.b)
	case v.b:
		return v.g.Tile(v.a)
	}
	return v.g.Tile(c)
}

// Swapped returns a read-only view of g with the tiles at a and b exchanged.
func Swapped(g *Grid, a, b Coord) TileReader {
	return swappedView{g: g, a: a, b: b}
}
