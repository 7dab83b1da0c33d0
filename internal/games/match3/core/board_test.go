package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

func TestNewBoardRejectsBadConfig(t *testing.T) {
	_, err := core.NewBoard(core.LevelConfig{Size: 5, Colors: 1}, core.NewSource(1))
	assert.ErrorIs(t, err, core.ErrTooFewColors)

	_, err = core.NewBoard(core.LevelConfig{Size: 5, Colors: 2}, core.NewSource(1))
	assert.ErrorIs(t, err, core.ErrTooFewColors)

	_, err = core.NewBoard(core.LevelConfig{Size: 0, Colors: 5}, core.NewSource(1))
	assert.ErrorIs(t, err, core.ErrInvalidSize)

	_, err = core.NewBoardFromGrid(core.NewGrid(3), 2, nil)
	assert.ErrorIs(t, err, core.ErrTooFewColors)
}

func TestNewBoardIsSettled(t *testing.T) {
	cfg := core.LevelConfig{
		Size:    8,
		Colors:  5,
		Blocked: []core.Coord{core.At(0, 0), core.At(4, 4), core.At(7, 3)},
		Crates:  []core.Coord{core.At(2, 2), core.At(6, 6)},
	}

	for seed := int64(1); seed <= 25; seed++ {
		b, err := core.NewBoard(cfg, core.NewSource(seed))
		require.NoError(t, err)

		assert.Empty(t, core.FindMatches(b).Coords(), "seed %d", seed)
		assertOccupancy(t, b)
		assert.Empty(t, b.Grid().Boosters())
	}
}

func TestNewBoardObstacles(t *testing.T) {
	cfg := core.LevelConfig{
		Size:    4,
		Colors:  4,
		Blocked: []core.Coord{core.At(1, 1), core.At(2, 2), core.At(9, 9), core.At(-1, 0)},
		Crates:  []core.Coord{core.At(2, 2), core.At(0, 4)},
	}

	b, err := core.NewBoard(cfg, core.NewSource(4))
	require.NoError(t, err)

	g := b.Grid()
	assert.Equal(t, core.CellBlocked, g.Cell(core.At(1, 1)))
	assert.Equal(t, core.CellCrate, g.Cell(core.At(2, 2)), "crate wins over blocked")
	assert.Equal(t, 1, g.CountCells(core.CellBlocked))
	assert.Equal(t, 1, g.CountCells(core.CellCrate))
}

func TestNewBoardDeterministic(t *testing.T) {
	cfg := core.LevelConfig{Size: 9, Colors: 6, Crates: []core.Coord{core.At(4, 4)}}

	a, err := core.NewBoard(cfg, core.NewSource(42))
	require.NoError(t, err)
	b, err := core.NewBoard(cfg, core.NewSource(42))
	require.NoError(t, err)

	assert.Equal(t, core.RenderASCII(a), core.RenderASCII(b))

	m, ok := a.Hint()
	if ok {
		outA := a.ApplyMove(m.From, m.To)
		outB := b.ApplyMove(m.From, m.To)
		assert.Equal(t, outA, outB)
		assert.Equal(t, core.RenderASCII(a), core.RenderASCII(b))
	}
}

func TestReseedKeepsObstacles(t *testing.T) {
	cfg := core.LevelConfig{
		Size:    6,
		Colors:  4,
		Blocked: []core.Coord{core.At(0, 5)},
		Crates:  []core.Coord{core.At(3, 3)},
	}
	b, err := core.NewBoard(cfg, core.NewSource(8))
	require.NoError(t, err)

	b.Reseed()

	assert.Equal(t, core.CellBlocked, b.Cell(core.At(0, 5)))
	assert.Equal(t, core.CellCrate, b.Cell(core.At(3, 3)))
	assert.Empty(t, core.FindMatches(b).Coords())
	assertOccupancy(t, b)
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	cfg := core.LevelConfig{
		Size:    7,
		Colors:  4,
		Blocked: []core.Coord{core.At(3, 0), core.At(3, 6)},
		Crates:  []core.Coord{core.At(1, 3), core.At(5, 3)},
	}
	b, err := core.NewBoard(cfg, core.NewSource(99))
	require.NoError(t, err)

	for i := 0; i < 40; i++ {
		m, ok := b.Hint()
		if !ok {
			b.Reseed()
			continue
		}
		out := b.ApplyMove(m.From, m.To)
		require.True(t, out.Applied, "move %d %v", i, m)

		assert.Empty(t, core.FindMatches(b).Coords(), "move %d", i)
		assertOccupancy(t, b)
	}
}

func TestSnapshot(t *testing.T) {
	b := mustBoard(t, []string{"0#", "X+"}, 3, core.NewSource(1))
	s := b.Snapshot()

	assert.Equal(t, 2, s.Size)
	assert.Equal(t, 3, s.Colors)
	assert.Equal(t, core.CellBlocked, s.Cells[0][1])
	assert.Equal(t, core.CellCrate, s.Cells[1][0])
	assert.Equal(t, core.ColorTile(0), s.Tiles[0][0])
	assert.Equal(t, core.BoosterTile(core.BoosterLine), s.Tiles[1][1])
}

// assertOccupancy checks that open cells hold a tile and obstacles do not.
func assertOccupancy(t *testing.T, b *core.Board) {
	t.Helper()
	g := b.Grid()
	for _, c := range g.AllCoords() {
		if g.Cell(c) == core.CellEmpty {
			assert.True(t, g.Tile(c).Present(), "open cell %v has no tile", c)
		} else {
			assert.False(t, g.Tile(c).Present(), "obstacle %v holds a tile", c)
		}
	}
}
