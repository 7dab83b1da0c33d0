package web

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
)

func newTestSession(t *testing.T) *session {
	t.Helper()
	return newSession(config.DefaultMatch3Config(), levels.Campaign(), 1)
}

// loaderWith writes one open 6x6 level to a temp dir.
func loaderWith(t *testing.T, moves, target int) *levels.Loader {
	t.Helper()
	dir := t.TempDir()
	data := fmt.Sprintf(`id: t
name: Test
colors: 5
moves: %d
target: %d
map: ["......", "......", "......", "......", "......", "......"]
`, moves, target)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "t.yaml"), []byte(data), 0o600))
	return levels.NewLoader(dir)
}

func TestSessionRequiresNew(t *testing.T) {
	s := newTestSession(t)

	for _, typ := range []string{MsgMove, MsgActivate, MsgPreview, MsgHint, MsgCheck} {
		reply := s.handle(ClientMessage{Type: typ})
		assert.Equal(t, ReplyError, reply.Type, typ)
	}
}

func TestSessionNewLevel(t *testing.T) {
	s := newTestSession(t)

	reply := s.handle(ClientMessage{Type: MsgNew, Level: "01"})
	require.Equal(t, ReplyBoard, reply.Type, reply.Error)
	assert.Equal(t, "01", reply.Level)
	require.NotNil(t, reply.Board)
	assert.Equal(t, 6, reply.Board.Size)
	assert.Len(t, reply.Board.Tiles, 6)
	assert.Equal(t, 20, reply.MovesLeft)
	assert.Equal(t, 1200, reply.Target)
	assert.Zero(t, reply.Score)

	for r := range reply.Board.Size {
		for c := range reply.Board.Size {
			assert.NotEmpty(t, reply.Board.Tiles[r][c], "open cell (%d,%d) should hold a tile", r, c)
		}
	}
}

func TestSessionNewEndless(t *testing.T) {
	s := newTestSession(t)

	reply := s.handle(ClientMessage{Type: MsgNew})
	require.Equal(t, ReplyBoard, reply.Type, reply.Error)
	assert.Equal(t, 8, reply.Board.Size)
	assert.Equal(t, -1, reply.MovesLeft)
	assert.Empty(t, reply.Level)
}

func TestSessionNewUnknownLevel(t *testing.T) {
	s := newTestSession(t)

	reply := s.handle(ClientMessage{Type: MsgNew, Level: "nope"})
	assert.Equal(t, ReplyError, reply.Type)
	assert.Contains(t, reply.Error, "not found")
}

func TestSessionFailedNewKeepsRunningLevel(t *testing.T) {
	s := newTestSession(t)
	start := s.handle(ClientMessage{Type: MsgNew, Level: "01"})
	require.Equal(t, ReplyBoard, start.Type, start.Error)

	failed := s.handle(ClientMessage{Type: MsgNew, Level: "nope"})
	require.Equal(t, ReplyError, failed.Type)

	hint := s.handle(ClientMessage{Type: MsgHint})
	assert.Equal(t, 20, hint.MovesLeft)

	from, to := hint.Move.From, hint.Move.To
	move := s.handle(ClientMessage{Type: MsgMove, From: &from, To: &to})
	require.Equal(t, ReplyBoard, move.Type, move.Error)
	assert.Equal(t, "01", move.Level)
	assert.Equal(t, 1200, move.Target)
	assert.Equal(t, 19, move.MovesLeft)
}

func TestSessionSameSeedSameBoard(t *testing.T) {
	a := newTestSession(t).handle(ClientMessage{Type: MsgNew, Level: "03", Seed: 99})
	b := newTestSession(t).handle(ClientMessage{Type: MsgNew, Level: "03", Seed: 99})
	assert.Equal(t, a.Board, b.Board)
}

func TestSessionHintCheckMove(t *testing.T) {
	s := newTestSession(t)
	s.handle(ClientMessage{Type: MsgNew, Level: "01"})

	hint := s.handle(ClientMessage{Type: MsgHint})
	require.Equal(t, ReplyHint, hint.Type)
	require.NotNil(t, hint.Move)

	from, to := hint.Move.From, hint.Move.To
	check := s.handle(ClientMessage{Type: MsgCheck, From: &from, To: &to})
	assert.Equal(t, ReplyCheck, check.Type)
	assert.True(t, check.Valid)

	far := Pos{R: from.R, C: from.C + 2}
	check = s.handle(ClientMessage{Type: MsgCheck, From: &from, To: &far})
	assert.False(t, check.Valid)

	move := s.handle(ClientMessage{Type: MsgMove, From: &from, To: &to})
	require.Equal(t, ReplyBoard, move.Type, move.Error)
	assert.True(t, move.Applied)
	assert.Positive(t, move.Points)
	assert.Equal(t, move.Points, move.Score)
	assert.Equal(t, 19, move.MovesLeft)
	require.NotEmpty(t, move.Waves)
	assert.GreaterOrEqual(t, len(move.Waves[0].Cleared), 3)
}

func TestSessionRejectedMove(t *testing.T) {
	s := newTestSession(t)
	start := s.handle(ClientMessage{Type: MsgNew, Level: "01"})

	from, to := Pos{R: 0, C: 0}, Pos{R: 0, C: 2}
	reply := s.handle(ClientMessage{Type: MsgMove, From: &from, To: &to})

	assert.Equal(t, ReplyBoard, reply.Type)
	assert.False(t, reply.Applied)
	assert.Equal(t, start.Board, reply.Board)
	assert.Equal(t, 20, reply.MovesLeft)

	reply = s.handle(ClientMessage{Type: MsgMove, From: &from})
	assert.Equal(t, ReplyError, reply.Type)
}

func TestSessionPreviewAndActivateWithoutBooster(t *testing.T) {
	s := newTestSession(t)
	s.handle(ClientMessage{Type: MsgNew, Level: "01"})

	pos := Pos{R: 2, C: 2}
	preview := s.handle(ClientMessage{Type: MsgPreview, Pos: &pos})
	assert.Equal(t, ReplyPreview, preview.Type)
	assert.Empty(t, preview.Cells)

	reply := s.handle(ClientMessage{Type: MsgActivate, Pos: &pos})
	assert.Equal(t, ReplyError, reply.Type)
}

func TestSessionOutOfMoves(t *testing.T) {
	s := newSession(config.DefaultMatch3Config(), loaderWith(t, 1, 1000000), 5)
	s.handle(ClientMessage{Type: MsgNew, Level: "t"})

	hint := s.handle(ClientMessage{Type: MsgHint})
	require.NotNil(t, hint.Move)
	reply := s.handle(ClientMessage{Type: MsgMove, From: &hint.Move.From, To: &hint.Move.To})
	assert.True(t, reply.GameOver)
	assert.False(t, reply.Cleared)
	assert.Zero(t, reply.MovesLeft)

	hint = s.handle(ClientMessage{Type: MsgHint})
	require.NotNil(t, hint.Move)
	reply = s.handle(ClientMessage{Type: MsgMove, From: &hint.Move.From, To: &hint.Move.To})
	assert.Equal(t, ReplyError, reply.Type)
}

func TestSessionLevelCleared(t *testing.T) {
	s := newSession(config.DefaultMatch3Config(), loaderWith(t, 10, 1), 5)
	s.handle(ClientMessage{Type: MsgNew, Level: "t"})

	hint := s.handle(ClientMessage{Type: MsgHint})
	require.NotNil(t, hint.Move)
	reply := s.handle(ClientMessage{Type: MsgMove, From: &hint.Move.From, To: &hint.Move.To})
	assert.True(t, reply.Cleared)
	assert.True(t, reply.GameOver)
}

func TestSessionUnknownType(t *testing.T) {
	s := newTestSession(t)
	s.handle(ClientMessage{Type: MsgNew})

	reply := s.handle(ClientMessage{Type: "teleport"})
	assert.Equal(t, ReplyError, reply.Type)
	assert.Contains(t, reply.Error, "teleport")
}
