package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

func TestFindMatches(t *testing.T) {
	testCases := []struct {
		name string
		rows []string
		want []core.Coord
	}{
		{
			name: "no runs",
			rows: []string{"0101", "1010", "0101", "1010"},
			want: []core.Coord{},
		},
		{
			name: "row run at the edge",
			rows: []string{"1000", "2312", "3123", "1231"},
			want: []core.Coord{core.At(0, 1), core.At(0, 2), core.At(0, 3)},
		},
		{
			name: "column run",
			rows: []string{"2130", "2301", "2013", "0123"},
			want: []core.Coord{core.At(0, 0), core.At(1, 0), core.At(2, 0)},
		},
		{
			name: "cross shares a cell",
			rows: []string{"1012", "0003", "2013", "3120"},
			want: []core.Coord{
				core.At(0, 1),
				core.At(1, 0), core.At(1, 1), core.At(1, 2),
				core.At(2, 1),
			},
		},
		{
			name: "blocked cell splits run",
			rows: []string{"00#0", "1212", "2121", "1212"},
			want: []core.Coord{},
		},
		{
			name: "crate splits run",
			rows: []string{"0X00", "1212", "2121", "1212"},
			want: []core.Coord{},
		},
		{
			name: "gap splits run",
			rows: []string{"00.0", "1212", "2121", "1212"},
			want: []core.Coord{},
		},
		{
			name: "booster never matches",
			rows: []string{"0+00", "1212", "2121", "1212"},
			want: []core.Coord{},
		},
		{
			name: "full row of five",
			rows: []string{"12121", "00000", "21212", "12121", "21212"},
			want: []core.Coord{core.At(1, 0), core.At(1, 1), core.At(1, 2), core.At(1, 3), core.At(1, 4)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.ParseASCII(tc.rows)
			require.NoError(t, err)
			assert.Equal(t, tc.want, core.FindMatches(g).Coords())
		})
	}
}

func TestRunLengths(t *testing.T) {
	g, err := core.ParseASCII([]string{
		"10000",
		"20312",
		"30123",
		"#0231",
		"01312",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, core.HorizontalRun(g, core.At(0, 2)))
	assert.Equal(t, 4, core.VerticalRun(g, core.At(0, 1)))
	assert.Equal(t, 1, core.HorizontalRun(g, core.At(4, 0)))
	assert.Equal(t, 0, core.HorizontalRun(g, core.At(3, 0)), "blocked cell")
	assert.Equal(t, 0, core.VerticalRun(g, core.At(-1, 0)), "off board")
}

func TestBoosterFor(t *testing.T) {
	testCases := []struct {
		h, v int
		want core.BoosterKind
	}{
		{3, 1, core.BoosterNone},
		{1, 3, core.BoosterNone},
		{3, 3, core.BoosterArea},
		{4, 1, core.BoosterLine},
		{1, 5, core.BoosterLine},
		{4, 3, core.BoosterLine},
		{3, 4, core.BoosterLine},
		{2, 2, core.BoosterNone},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, core.BoosterFor(tc.h, tc.v), "BoosterFor(%d, %d)", tc.h, tc.v)
	}
}
