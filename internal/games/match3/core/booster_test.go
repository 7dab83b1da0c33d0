package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

var lineBoosterRows = []string{
	"123412",
	"341234",
	"12+41X",
	"234123",
	"412341",
	"123412",
}

func TestLineBoosterBreaksCrateInRow(t *testing.T) {
	b := mustBoard(t, lineBoosterRows, 5, core.NewSource(3))

	clears := b.BoosterClears(core.At(2, 2))
	assert.Len(t, clears, 11)
	assert.Contains(t, clears, core.At(2, 5))

	res, ok := b.ActivateBooster(core.At(2, 2))
	require.True(t, ok)
	require.NotEmpty(t, res.Waves)

	w := res.Waves[0]
	assert.Equal(t, []core.Coord{
		core.At(0, 2), core.At(1, 2),
		core.At(2, 0), core.At(2, 1), core.At(2, 2), core.At(2, 3), core.At(2, 4),
		core.At(3, 2), core.At(4, 2), core.At(5, 2),
	}, w.Cleared)
	assert.Equal(t, []core.Coord{core.At(2, 5)}, w.Broken)
	assert.Equal(t, core.CellEmpty, b.Cell(core.At(2, 5)))
	assert.True(t, b.Tile(core.At(2, 5)).IsColor(), "broken crate is refilled")
	assert.Empty(t, core.FindMatches(b).Coords())
}

func TestActivateWithoutBooster(t *testing.T) {
	b := mustBoard(t, lineBoosterRows, 5, core.NewSource(3))
	before := b.Grid()

	res, ok := b.ActivateBooster(core.At(0, 0))
	assert.False(t, ok)
	assert.False(t, res.Changed())
	assert.Nil(t, b.BoosterClears(core.At(0, 0)))
	assert.True(t, before.Equal(b.Grid()))
}

func TestLineBoosterSkipsBlocked(t *testing.T) {
	b := mustBoard(t, []string{
		"0#+1",
		"12#0",
		"2301",
		"3012",
	}, 4, core.NewSource(1))

	assert.Equal(t, []core.Coord{
		core.At(0, 0), core.At(0, 2), core.At(0, 3),
		core.At(2, 2), core.At(3, 2),
	}, b.BoosterClears(core.At(0, 2)))
}

func TestAreaBoosterAtCorner(t *testing.T) {
	b := mustBoard(t, []string{
		"@012",
		"1#30",
		"2301",
		"3012",
	}, 4, core.NewSource(1))

	assert.Equal(t, []core.Coord{
		core.At(0, 0), core.At(0, 1), core.At(1, 0),
	}, b.BoosterClears(core.At(0, 0)))
}

func TestCaughtBoosterDoesNotChain(t *testing.T) {
	b := mustBoard(t, []string{
		"+123@",
		"12301",
		"23012",
		"30123",
		"01230",
	}, 4, core.NewSource(5))

	res, ok := b.ActivateBooster(core.At(0, 0))
	require.True(t, ok)

	w := res.Waves[0]
	assert.Contains(t, w.Cleared, core.At(0, 4), "area booster is swept up")
	assert.NotContains(t, w.Cleared, core.At(1, 3), "area booster does not fire")
	assert.Empty(t, b.Grid().Boosters())
}
