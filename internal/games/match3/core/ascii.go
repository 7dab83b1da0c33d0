package core

import (
	"fmt"
	"strings"
)

// ASCII symbols used by RenderASCII and ParseASCII.
const (
	SymbolBlocked     = '#'
	SymbolCrate       = 'X'
	SymbolAbsent      = '.'
	SymbolLineBooster = '+'
	SymbolAreaBooster = '@'
)

// RenderASCII draws the board one row per line. Colors 0-9 are digits;
// larger colors wrap to letters from 'a'.
func RenderASCII(r TileReader) string {
	size := r.Size()
	var sb strings.Builder
	sb.Grow(size * (size + 1))
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			sb.WriteByte(asciiSymbol(r.Cell(At(row, col)), r.Tile(At(row, col))))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func asciiSymbol(cell CellType, t Tile) byte {
	switch cell {
	case CellBlocked:
		return SymbolBlocked
	case CellCrate:
		return SymbolCrate
	}
	switch t.Kind {
	case TileColor:
		if t.Color < 10 {
			return byte('0' + t.Color)
		}
		return byte('a' + (t.Color-10)%26)
	case TileBooster:
		if t.Booster == BoosterArea {
			return SymbolAreaBooster
		}
		return SymbolLineBooster
	default:
		return SymbolAbsent
	}
}

// ParseASCII builds a grid from the RenderASCII format. Rows must be the
// same length as the number of rows.
func ParseASCII(rows []string) (*Grid, error) {
	size := len(rows)
	if size == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidSize)
	}
	g := NewGrid(size)
	for r, line := range rows {
		if len(line) != size {
			return nil, fmt.Errorf("%w: row %d has %d symbols, want %d", ErrInvalidSize, r, len(line), size)
		}
		for c := 0; c < size; c++ {
			p := At(r, c)
			switch ch := line[c]; {
			case ch == SymbolBlocked:
				g.SetCell(p, CellBlocked)
			case ch == SymbolCrate:
				g.SetCell(p, CellCrate)
			case ch == SymbolAbsent:
			case ch == SymbolLineBooster:
				g.SetTile(p, BoosterTile(BoosterLine))
			case ch == SymbolAreaBooster:
				g.SetTile(p, BoosterTile(BoosterArea))
			case ch >= '0' && ch <= '9':
				g.SetTile(p, ColorTile(int(ch-'0')))
			case ch >= 'a' && ch <= 'z':
				g.SetTile(p, ColorTile(int(ch-'a')+10))
			default:
				return nil, fmt.Errorf("match3: unknown symbol %q at %s", ch, p)
			}
		}
	}
	return g, nil
}
