package levels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

func TestParseMapCornersBlocked(t *testing.T) {
	layout, err := ParseMap([]string{"#.#", "...", "#.#"}, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, layout.Size)
	assert.Equal(t, []core.Coord{core.At(0, 0), core.At(0, 2), core.At(2, 0), core.At(2, 2)}, layout.Blocked)
	assert.Empty(t, layout.Crates)
}

func TestParseMapSymbols(t *testing.T) {
	layout, err := ParseMap([]string{"01X", "x.#", "..."}, nil)
	require.NoError(t, err)

	assert.Equal(t, []core.Coord{core.At(0, 1), core.At(1, 2)}, layout.Blocked)
	assert.Equal(t, []core.Coord{core.At(0, 2), core.At(1, 0)}, layout.Crates)
}

func TestParseMapOverrides(t *testing.T) {
	symbols := DefaultSymbols().With(Symbols{'o': core.CellCrate, '#': core.CellCrate})

	layout, err := ParseMap([]string{"o#", ".."}, symbols)
	require.NoError(t, err)
	assert.Empty(t, layout.Blocked)
	assert.Equal(t, []core.Coord{core.At(0, 0), core.At(0, 1)}, layout.Crates)

	// The base table is not modified
	assert.Equal(t, core.CellBlocked, DefaultSymbols()['#'])
}

func TestParseMapErrors(t *testing.T) {
	testCases := []struct {
		name string
		rows []string
		want error
	}{
		{"no rows", nil, ErrEmptyMap},
		{"empty row", []string{""}, ErrEmptyMap},
		{"uneven", []string{"...", "..", "..."}, ErrUnevenRows},
		{"not square", []string{"...", "..."}, ErrNotSquare},
		{"unknown", []string{"..", ".?"}, ErrUnknownSymbol},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseMap(tc.rows, nil)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFormatMapRoundTrip(t *testing.T) {
	rows := []string{"#..X", "....", ".XX.", "#..#"}
	layout, err := ParseMap(rows, nil)
	require.NoError(t, err)
	assert.Equal(t, rows, FormatMap(layout))
}

func TestSymbolsString(t *testing.T) {
	s := Symbols{'.': core.CellEmpty, '#': core.CellBlocked}
	assert.Equal(t, "#=blocked .=empty", s.String())
}
