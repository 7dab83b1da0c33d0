package core_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

// cycleSource replays a fixed list of values, wrapping around.
type cycleSource struct {
	vals []int
	i    int
}

func (s *cycleSource) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

func cycle(vals ...int) *cycleSource {
	return &cycleSource{vals: vals}
}

func mustBoard(t *testing.T, rows []string, colors int, src core.Source) *core.Board {
	t.Helper()
	g, err := core.ParseASCII(rows)
	require.NoError(t, err)
	b, err := core.NewBoardFromGrid(g, colors, src)
	require.NoError(t, err)
	return b
}

func lines(b core.TileReader) []string {
	out := core.RenderASCII(b)
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}
