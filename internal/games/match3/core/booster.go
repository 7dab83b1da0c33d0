package core

// BoosterFor decides which booster a move creates from the horizontal and
// vertical run lengths through its landing cell. The checks run in order:
// a 3x3 cross makes an area booster, any run of four or more makes a line
// booster.
func BoosterFor(hRun, vRun int) BoosterKind {
	switch {
	case hRun == 3 && vRun == 3:
		return BoosterArea
	case hRun >= 4 || vRun >= 4:
		return BoosterLine
	default:
		return BoosterNone
	}
}

// BoosterClears returns the coordinates a booster at pos would clear,
// row-major, without touching the board. It returns nil if pos does not
// hold a booster.
func (b *Board) BoosterClears(pos Coord) []Coord {
	t := b.grid.Tile(pos)
	if !t.IsBooster() {
		return nil
	}
	return b.boosterArea(pos, t.Booster).Coords()
}

// boosterArea computes the clear set for a booster of kind k at pos.
// Blocked cells are skipped; a line keeps going past them.
func (b *Board) boosterArea(pos Coord, k BoosterKind) *CoordSet {
	size := b.grid.Size()
	area := NewCoordSet(size)
	add := func(c Coord) {
		if b.grid.InBounds(c) && b.grid.Cell(c) != CellBlocked {
			area.Add(c)
		}
	}

	switch k {
	case BoosterLine:
		for i := 0; i < size; i++ {
			add(At(pos.R, i))
			add(At(i, pos.C))
		}
	case BoosterArea:
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				add(pos.Add(dr, dc))
			}
		}
	}
	return area
}

// ActivateBooster fires the booster at pos and settles the board.
// It reports false, without changing anything, if pos holds no booster.
func (b *Board) ActivateBooster(pos Coord) (Resolution, bool) {
	t := b.grid.Tile(pos)
	if !t.IsBooster() {
		return Resolution{}, false
	}

	coords := b.boosterArea(pos, t.Booster).Coords()
	w := Wave{
		Cleared: clearTiles(b.grid, coords),
		Broken:  breakCrates(b.grid, coords, true),
	}
	// The booster's own cell is outside its area only when it sits on a
	// blocked cell after a forced swap.
	if b.grid.Tile(pos).Present() {
		b.grid.SetTile(pos, NoTile())
		w.Cleared = append(w.Cleared, pos)
	}
	collapse(b.grid)
	w.Filled = refill(b.grid, b.colors, b.src)

	res := Resolution{Waves: []Wave{w}}
	res.Waves = append(res.Waves, b.Settle().Waves...)
	return res, true
}
