package core

// Wave records one clear, break, collapse and refill pass.
type Wave struct {
	Cleared []Coord // Tiles removed, row-major
	Broken  []Coord // Crates turned into open cells
	Filled  []Coord // Open cells that received a fresh tile
}

// Resolution is everything a settle did, one Wave per pass.
type Resolution struct {
	Waves []Wave
}

// Changed reports whether the board was modified.
func (r Resolution) Changed() bool {
	return len(r.Waves) > 0
}

// Cleared returns the total number of tiles removed across all waves.
func (r Resolution) Cleared() int {
	total := 0
	for _, w := range r.Waves {
		total += len(w.Cleared)
	}
	return total
}

// Broken returns the total number of crates broken across all waves.
func (r Resolution) Broken() int {
	total := 0
	for _, w := range r.Waves {
		total += len(w.Broken)
	}
	return total
}

// clearTiles removes the tile at every coordinate and returns the ones
// that actually held a tile.
func clearTiles(g *Grid, coords []Coord) []Coord {
	cleared := make([]Coord, 0, len(coords))
	for _, c := range coords {
		if g.Tile(c).Present() {
			g.SetTile(c, NoTile())
			cleared = append(cleared, c)
		}
	}
	return cleared
}

// breakCrates opens every crate orthogonally adjacent to one of coords.
// With overlap set, crates at coords themselves break as well.
func breakCrates(g *Grid, coords []Coord, overlap bool) []Coord {
	var broken []Coord
	open := func(c Coord) {
		if g.Cell(c) == CellCrate {
			g.SetCell(c, CellEmpty)
			broken = append(broken, c)
		}
	}

	for _, c := range coords {
		if overlap {
			open(c)
		}
		for _, n := range c.Neighbors() {
			open(n)
		}
	}
	return broken
}

// collapse lets tiles fall within each column. Any non-open cell splits the
// column into independent segments; tiles never pass it.
func collapse(g *Grid) {
	size := g.Size()
	for c := 0; c < size; c++ {
		write := size - 1
		for r := size - 1; r >= 0; r-- {
			p := At(r, c)
			if g.Cell(p) != CellEmpty {
				// New segment starts above the obstacle
				write = r - 1
				continue
			}
			t := g.Tile(p)
			if !t.Present() {
				continue
			}
			if write != r {
				g.SetTile(At(write, c), t)
				g.SetTile(p, NoTile())
			}
			write--
		}
	}
}

// refill puts a uniformly random color on every open cell without a tile.
func refill(g *Grid, colors int, src Source) []Coord {
	var filled []Coord
	size := g.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			p := At(r, c)
			if g.Cell(p) == CellEmpty && !g.Tile(p).Present() {
				g.SetTile(p, ColorTile(src.Intn(colors)))
				filled = append(filled, p)
			}
		}
	}
	return filled
}

// Settle runs the cascade until the board has no matches.
func (b *Board) Settle() Resolution {
	return b.resolve(FindMatches(b.grid))
}

// resolve runs the cascade starting from an already computed match set.
func (b *Board) resolve(matches *CoordSet) Resolution {
	var res Resolution
	for matches.Len() > 0 {
		coords := matches.Coords()
		w := Wave{
			Cleared: clearTiles(b.grid, coords),
			Broken:  breakCrates(b.grid, coords, false),
		}
		collapse(b.grid)
		w.Filled = refill(b.grid, b.colors, b.src)
		res.Waves = append(res.Waves, w)

		matches = FindMatches(b.grid)
	}
	return res
}
