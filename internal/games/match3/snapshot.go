package match3

import "github.com/vovakirdan/tui-match3/internal/games/match3/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePaused       GameStateType = "paused"
	StatePausedSmall  GameStateType = "paused_small_window"
	StateError        GameStateType = "error"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Mode       string
	Level      string // Level ID, empty for endless
	Score      int
	LevelScore int
	Target     int
	MovesLeft  int
	Cursor     core.Coord
	Selected   bool
	Selection  core.Coord
	Board      string // RenderASCII of the board
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.loadErr != nil:
		state = StateError
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.paused:
		state = StatePaused
	}

	s := Snapshot{
		Tick:       g.tick,
		Mode:       string(g.mode),
		Level:      g.State().Level,
		Score:      g.score,
		LevelScore: g.levelScore,
		Target:     g.target,
		MovesLeft:  g.movesLeft,
		Cursor:     g.cursor,
		Selected:   g.selected,
		Selection:  g.selection,
		State:      state,
	}
	if g.board != nil {
		s.Board = core.RenderASCII(g.board)
	}
	return s
}
