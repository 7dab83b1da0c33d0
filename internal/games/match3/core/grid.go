package core

// TileReader is the read side of a board. The match scan and the move
// evaluator run against it, so they see either a real grid or a virtual
// view of one.
type TileReader interface {
	Size() int
	Cell(c Coord) CellType
	Tile(c Coord) Tile
}

// Grid is the authoritative board state: an obstacle layer and a tile layer
// of the same square size. Both are stored in row-major order: index = r*size + c.
type Grid struct {
	size  int
	cells []CellType
	tiles []Tile
}

// NewGrid creates a size x size grid with every cell open and no tiles.
func NewGrid(size int) *Grid {
	if size < 0 {
		size = 0
	}
	return &Grid{
		size:  size,
		cells: make([]CellType, size*size),
		tiles: make([]Tile, size*size),
	}
}

// Size returns the board dimension.
func (g *Grid) Size() int {
	return g.size
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.R*g.size + c.C
}

// InBounds returns true if the coordinate is on the board.
func (g *Grid) InBounds(c Coord) bool {
	return c.R >= 0 && c.R < g.size && c.C >= 0 && c.C < g.size
}

// Cell returns the obstacle state at c.
// Off-board coordinates read as CellBlocked so scans stop at the edge.
func (g *Grid) Cell(c Coord) CellType {
	if !g.InBounds(c) {
		return CellBlocked
	}
	return g.cells[g.index(c)]
}

// SetCell sets the obstacle state at c.
func (g *Grid) SetCell(c Coord, t CellType) {
	if g.InBounds(c) {
		g.cells[g.index(c)] = t
	}
}

// IsOpen reports whether the cell at c is CellEmpty.
func (g *Grid) IsOpen(c Coord) bool {
	return g.InBounds(c) && g.cells[g.index(c)] == CellEmpty
}

// Tile returns the tile at c. Off-board coordinates read as absent.
func (g *Grid) Tile(c Coord) Tile {
	if !g.InBounds(c) {
		return NoTile()
	}
	return g.tiles[g.index(c)]
}

// SetTile sets the tile at c.
func (g *Grid) SetTile(c Coord, t Tile) {
	if g.InBounds(c) {
		g.tiles[g.index(c)] = t
	}
}

// Swap exchanges the tiles at a and b without any legality checks.
func (g *Grid) Swap(a, b Coord) {
	if !g.InBounds(a) || !g.InBounds(b) {
		return
	}
	ia, ib := g.index(a), g.index(b)
	g.tiles[ia], g.tiles[ib] = g.tiles[ib], g.tiles[ia]
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]CellType, len(g.cells))
	copy(cells, g.cells)
	tiles := make([]Tile, len(g.tiles))
	copy(tiles, g.tiles)
	return &Grid{size: g.size, cells: cells, tiles: tiles}
}

// Equal returns true if two grids have the same size, obstacles and tiles.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] || g.tiles[i] != other.tiles[i] {
			return false
		}
	}
	return true
}

// AllCoords returns every coordinate on the board, ordered by row then column.
func (g *Grid) AllCoords() []Coord {
	coords := make([]Coord, 0, g.size*g.size)
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			coords = append(coords, At(r, c))
		}
	}
	return coords
}

// CountCells returns the number of cells with the given obstacle state.
func (g *Grid) CountCells(t CellType) int {
	count := 0
	for _, cell := range g.cells {
		if cell == t {
			count++
		}
	}
	return count
}

// Boosters returns the coordinates of every booster tile, row-major.
func (g *Grid) Boosters() []Coord {
	var coords []Coord
	for i, t := range g.tiles {
		if t.IsBooster() {
			coords = append(coords, At(i/g.size, i%g.size))
		}
	}
	return coords
}
