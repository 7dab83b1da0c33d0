package levels

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

var (
	// ErrEmptyMap is returned for a map with no rows or an empty first row.
	ErrEmptyMap = errors.New("levels: empty map")
	// ErrUnevenRows is returned when rows differ in length.
	ErrUnevenRows = errors.New("levels: uneven rows")
	// ErrNotSquare is returned when the row count differs from the row length.
	ErrNotSquare = errors.New("levels: map is not square")
	// ErrUnknownSymbol is returned for a character missing from the symbol table.
	ErrUnknownSymbol = errors.New("levels: unknown symbol")
)

// Symbols maps map characters to obstacle states.
type Symbols map[rune]core.CellType

// DefaultSymbols returns the standard symbol table:
// '.' and '0' are open, '#' and '1' are blocked, 'X' and 'x' are crates.
func DefaultSymbols() Symbols {
	return Symbols{
		'.': core.CellEmpty,
		'0': core.CellEmpty,
		'#': core.CellBlocked,
		'1': core.CellBlocked,
		'X': core.CellCrate,
		'x': core.CellCrate,
	}
}

// With returns a copy of s with overrides applied on top.
func (s Symbols) With(overrides Symbols) Symbols {
	out := make(Symbols, len(s)+len(overrides))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// String lists the table in a stable order, e.g. "#=blocked .=empty".
func (s Symbols) String() string {
	keys := make([]rune, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%c=%s", k, s[k])
	}
	return strings.Join(parts, " ")
}

// Layout is the obstacle layout described by a map.
type Layout struct {
	Size    int
	Blocked []core.Coord
	Crates  []core.Coord
}

// ParseMap reads a square block of rows into a Layout. A nil table means
// DefaultSymbols. Row r, column c of the text is cell (r, c).
func ParseMap(rows []string, symbols Symbols) (Layout, error) {
	if symbols == nil {
		symbols = DefaultSymbols()
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Layout{}, ErrEmptyMap
	}

	width := len([]rune(rows[0]))
	layout := Layout{Size: width}

	for r, row := range rows {
		line := []rune(row)
		if len(line) != width {
			return Layout{}, fmt.Errorf("row %d has %d symbols, want %d: %w", r, len(line), width, ErrUnevenRows)
		}
		for c, ch := range line {
			cell, ok := symbols[ch]
			if !ok {
				return Layout{}, fmt.Errorf("%q at row %d col %d: %w", ch, r, c, ErrUnknownSymbol)
			}
			switch cell {
			case core.CellBlocked:
				layout.Blocked = append(layout.Blocked, core.At(r, c))
			case core.CellCrate:
				layout.Crates = append(layout.Crates, core.At(r, c))
			}
		}
	}

	if len(rows) != width {
		return Layout{}, fmt.Errorf("%d rows of %d symbols: %w", len(rows), width, ErrNotSquare)
	}

	return layout, nil
}

// FormatMap renders a layout back into rows using '.', '#' and 'X'.
func FormatMap(l Layout) []string {
	g := core.NewGrid(l.Size)
	for _, c := range l.Blocked {
		g.SetCell(c, core.CellBlocked)
	}
	for _, c := range l.Crates {
		g.SetCell(c, core.CellCrate)
	}

	rows := make([]string, l.Size)
	for r := 0; r < l.Size; r++ {
		line := make([]byte, l.Size)
		for c := 0; c < l.Size; c++ {
			switch g.Cell(core.At(r, c)) {
			case core.CellBlocked:
				line[c] = '#'
			case core.CellCrate:
				line[c] = 'X'
			default:
				line[c] = '.'
			}
		}
		rows[r] = string(line)
	}
	return rows
}
