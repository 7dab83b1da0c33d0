package core

// FindMatches scans every row and then every column of r and returns the
// coordinates of all runs of MinRun or more equal colors on open cells.
// A cell may belong to both a row run and a column run.
func FindMatches(r TileReader) *CoordSet {
	size := r.Size()
	matched := NewCoordSet(size)

	for row := 0; row < size; row++ {
		scanLine(r, matched, At(row, 0), 0, 1)
	}
	for col := 0; col < size; col++ {
		scanLine(r, matched, At(0, col), 1, 0)
	}

	return matched
}

// scanLine walks one row or column from start in (dr, dc) steps and adds
// every closed run of MinRun or more to out. Position size is past the edge
// and always closes the open run.
func scanLine(r TileReader, out *CoordSet, start Coord, dr, dc int) {
	size := r.Size()
	runStart := start
	runLen := 0
	var base Tile

	for i := 0; i <= size; i++ {
		cur := start.Add(dr*i, dc*i)
		ok := i < size && matchable(r, cur)

		if ok && runLen > 0 && r.Tile(cur).SameColor(base) {
			runLen++
			continue
		}

		// Run closed by the edge, an obstacle, a gap, a booster or a new color
		if runLen >= MinRun {
			for k := 0; k < runLen; k++ {
				out.Add(runStart.Add(dr*k, dc*k))
			}
		}

		if ok {
			runStart = cur
			runLen = 1
			base = r.Tile(cur)
		} else {
			runLen = 0
		}
	}
}

// matchable reports whether the cell at c can take part in a run.
func matchable(r TileReader, c Coord) bool {
	return r.Cell(c) == CellEmpty && r.Tile(c).IsColor()
}

// HorizontalRun returns the length of the run of equal colors through c
// along its row, counting c itself. It is 0 when c cannot match.
func HorizontalRun(r TileReader, c Coord) int {
	return runThrough(r, c, 0, 1)
}

// VerticalRun returns the length of the run of equal colors through c
// along its column, counting c itself. It is 0 when c cannot match.
func VerticalRun(r TileReader, c Coord) int {
	return runThrough(r, c, 1, 0)
}

func runThrough(r TileReader, c Coord, dr, dc int) int {
	if !matchable(r, c) {
		return 0
	}
	base := r.Tile(c)
	n := 1
	for _, sign := range [2]int{1, -1} {
		p := c.Add(sign*dr, sign*dc)
		// Off-board cells read as blocked, which ends the walk
		for matchable(r, p) && r.Tile(p).SameColor(base) {
			n++
			p = p.Add(sign*dr, sign*dc)
		}
	}
	return n
}
