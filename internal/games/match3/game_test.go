package match3

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-match3/internal/config"
	platformcore "github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
)

const openLevel = `id: %q
name: %s
colors: 5
moves: %d
target: %d
map:
  - "......"
  - "......"
  - "......"
  - "......"
  - "......"
  - "......"
`

// withLevels installs a loader over a temp dir holding the given YAML files.
func withLevels(t *testing.T, files map[string]string) {
	t.Helper()
	dir := t.TempDir()
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	prev := levelLoader
	SetLevelLoader(levels.NewLoader(dir))
	t.Cleanup(func() { levelLoader = prev })
}

// withConfig installs a game config for the duration of the test.
func withConfig(t *testing.T, cfg config.Match3Config) {
	t.Helper()
	prev := gameConfig
	Configure(cfg)
	t.Cleanup(func() { gameConfig = prev })
}

func level(id, name string, moves, target int) string {
	return fmt.Sprintf(openLevel, id, name, moves, target)
}

func twoLevels(t *testing.T, target int) {
	withLevels(t, map[string]string{
		"a.yaml": level("a", "Alpha", 20, target),
		"b.yaml": level("b", "Beta", 20, target),
	})
}

func newGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: seed})
	if g.loadErr != nil {
		t.Fatalf("Reset failed: %v", g.loadErr)
	}
	return g
}

func press(g *Game, actions ...platformcore.Action) platformcore.StepResult {
	in := platformcore.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

// playHint performs the board's hint move the way a player would.
func playHint(t *testing.T, g *Game) platformcore.StepResult {
	t.Helper()
	m, ok := g.board.Hint()
	if !ok {
		t.Fatal("board has no move")
	}
	g.cursor = m.From
	press(g, platformcore.ActionSelect)
	g.cursor = m.To
	return press(g, platformcore.ActionSelect)
}

func TestResetStartsOnFirstLevel(t *testing.T) {
	twoLevels(t, 100000)
	g := newGame(t, 1)

	s := g.Snapshot()
	if s.Level != "a" || s.State != StatePlaying {
		t.Fatalf("unexpected start: level %q state %q", s.Level, s.State)
	}
	if s.MovesLeft != 20 || s.Target != 100000 {
		t.Errorf("goal = %d moves / %d target", s.MovesLeft, s.Target)
	}
	if g.cursor != core.At(3, 3) {
		t.Errorf("cursor should start centered, got %v", g.cursor)
	}
	if !g.board.HasMoves() {
		t.Error("fresh board should have a move")
	}
}

func TestResetStartLevel(t *testing.T) {
	twoLevels(t, 100000)
	g := New()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: 1, Level: "b"})

	if g.State().Level != "b" {
		t.Errorf("expected to start on b, got %q", g.State().Level)
	}
}

func TestCursorMovement(t *testing.T) {
	twoLevels(t, 100000)
	g := newGame(t, 1)

	for i := 0; i < 10; i++ {
		press(g, platformcore.ActionUp)
	}
	if g.cursor != core.At(0, 3) {
		t.Errorf("cursor should stop at the top edge, got %v", g.cursor)
	}

	press(g, platformcore.ActionLeft)
	press(g, platformcore.ActionDown)
	if g.cursor != core.At(1, 2) {
		t.Errorf("cursor = %v, want (1,2)", g.cursor)
	}
}

func TestSelectAndSwap(t *testing.T) {
	twoLevels(t, 100000)
	g := newGame(t, 3)

	res := playHint(t, g)

	if g.movesMade != 1 {
		t.Fatalf("move not applied, movesMade = %d", g.movesMade)
	}
	if res.State.Score <= 0 {
		t.Error("an applied move should score")
	}
	if res.State.MovesLeft != 19 {
		t.Errorf("MovesLeft = %d, want 19", res.State.MovesLeft)
	}
	if g.selected {
		t.Error("selection should be dropped after a move")
	}
}

func TestArrowSwapsFromSelection(t *testing.T) {
	twoLevels(t, 100000)
	g := newGame(t, 5)

	m, ok := g.board.Hint()
	if !ok {
		t.Fatal("board has no move")
	}
	dir := platformcore.ActionRight
	if m.To.R > m.From.R {
		dir = platformcore.ActionDown
	}

	g.cursor = m.From
	press(g, platformcore.ActionSelect)
	press(g, dir)

	if g.movesMade != 1 {
		t.Fatal("arrow with a selection should swap")
	}
	if g.cursor != m.To {
		t.Errorf("cursor should follow the tile to %v, got %v", m.To, g.cursor)
	}
}

func TestRejectedSwapKeepsBoard(t *testing.T) {
	twoLevels(t, 100000)
	g := newGame(t, 7)

	var from, to core.Coord
	found := false
	size := g.board.Size()
	for r := 0; r < size && !found; r++ {
		for c := 0; c+1 < size && !found; c++ {
			from, to = core.At(r, c), core.At(r, c+1)
			found = g.board.CanSwap(from, to) && !g.board.WouldCreateMatch(from, to)
		}
	}
	if !found {
		t.Skip("no rejected swap on this board")
	}

	before := core.RenderASCII(g.board)
	g.cursor = from
	press(g, platformcore.ActionSelect)
	g.cursor = to
	res := press(g, platformcore.ActionSelect)

	if g.movesMade != 0 || res.State.MovesLeft != 20 {
		t.Error("rejected swap should not cost a move")
	}
	if core.RenderASCII(g.board) != before {
		t.Error("rejected swap should leave the board unchanged")
	}
	if g.message != "No match" {
		t.Errorf("message = %q", g.message)
	}
}

func TestSelectToggleAndReselect(t *testing.T) {
	twoLevels(t, 100000)
	g := newGame(t, 1)

	press(g, platformcore.ActionSelect)
	if !g.selected || g.selection != g.cursor {
		t.Fatal("select should pick up the cursor tile")
	}
	press(g, platformcore.ActionSelect)
	if g.selected {
		t.Fatal("second select on the same cell should drop the selection")
	}

	g.cursor = core.At(0, 0)
	press(g, platformcore.ActionSelect)
	g.cursor = core.At(5, 5)
	press(g, platformcore.ActionSelect)
	if !g.selected || g.selection != core.At(5, 5) {
		t.Error("selecting a far cell should move the selection")
	}

	press(g, platformcore.ActionBack)
	if g.selected {
		t.Error("back should cancel the selection")
	}
}

func TestActivateWithoutBooster(t *testing.T) {
	twoLevels(t, 100000)
	g := newGame(t, 1)

	press(g, platformcore.ActionActivate)
	if g.movesMade != 0 {
		t.Error("activating a plain tile should not count as a move")
	}
	if g.message != "No booster here" {
		t.Errorf("message = %q", g.message)
	}
}

func TestActivateBooster(t *testing.T) {
	twoLevels(t, 100000)
	g := newGame(t, 1)

	grid, err := core.ParseASCII([]string{
		"012340",
		"340123",
		"12+412",
		"234013",
		"401234",
		"123401",
	})
	if err != nil {
		t.Fatal(err)
	}
	g.board, err = core.NewBoardFromGrid(grid, 5, core.NewSource(1))
	if err != nil {
		t.Fatal(err)
	}
	g.cursor = core.At(2, 2)

	res := press(g, platformcore.ActionActivate)

	if g.movesMade != 1 {
		t.Fatal("booster activation should count as a move")
	}
	if res.State.Score <= gameConfig.Scoring.ActivationBonus {
		t.Errorf("score = %d, cleared tiles should score", res.State.Score)
	}
	if g.board.Tile(core.At(2, 2)).IsBooster() {
		t.Error("booster should be consumed")
	}
}

func TestLevelClearAndAdvance(t *testing.T) {
	twoLevels(t, 1)
	g := newGame(t, 11)

	res := playHint(t, g)
	if res.LevelCleared != "a" {
		t.Fatalf("LevelCleared = %q, want a", res.LevelCleared)
	}
	if res.LevelScore != res.State.Score {
		t.Errorf("LevelScore = %d, want %d", res.LevelScore, res.State.Score)
	}
	if g.Snapshot().State != StateLevelCleared {
		t.Fatalf("state = %q", g.Snapshot().State)
	}
	if !res.State.Paused {
		t.Error("banner should report paused")
	}

	res = press(g)
	if res.LevelCleared != "" {
		t.Error("LevelCleared should be reported once")
	}

	press(g, platformcore.ActionSelect)
	s := g.Snapshot()
	if s.Level != "b" || s.LevelScore != 0 || s.State != StatePlaying {
		t.Fatalf("did not advance: %+v", s)
	}
	total := s.Score

	res = playHint(t, g)
	if res.LevelCleared != "b" {
		t.Fatalf("LevelCleared = %q, want b", res.LevelCleared)
	}
	press(g, platformcore.ActionSelect)

	st := g.State()
	if !st.GameOver || !st.Won {
		t.Errorf("clearing the last level should win: %+v", st)
	}
	if st.Score <= total {
		t.Error("score should carry across levels")
	}
}

func TestBannerAdvancesAfterDelay(t *testing.T) {
	twoLevels(t, 1)
	g := newGame(t, 11)

	playHint(t, g)
	for i := 0; i < bannerTicks; i++ {
		press(g)
	}
	if g.State().Level != "b" {
		t.Errorf("banner should advance on its own, level %q", g.State().Level)
	}
}

func TestOutOfMoves(t *testing.T) {
	withLevels(t, map[string]string{
		"a.yaml": level("a", "Alpha", 5, 1000000),
	})
	g := newGame(t, 13)

	for i := 0; i < 5; i++ {
		if g.State().GameOver {
			t.Fatalf("game ended after %d moves", i)
		}
		playHint(t, g)
	}

	st := g.State()
	if !st.GameOver || st.Won {
		t.Errorf("running out of moves should lose: %+v", st)
	}
	if st.MovesLeft != 0 {
		t.Errorf("MovesLeft = %d", st.MovesLeft)
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("state = %q", g.Snapshot().State)
	}
}

func TestDeterminism(t *testing.T) {
	twoLevels(t, 100000)
	g1 := newGame(t, 12345)
	g2 := newGame(t, 12345)

	for i := 0; i < 5; i++ {
		playHint(t, g1)
		playHint(t, g2)
		press(g1, platformcore.ActionLeft, platformcore.ActionUp)
		press(g2, platformcore.ActionLeft, platformcore.ActionUp)

		if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
			t.Fatalf("snapshots diverged at move %d:\n%+v\n%+v", i, s1, s2)
		}
	}
}

func TestPauseToggle(t *testing.T) {
	twoLevels(t, 100000)
	g := newGame(t, 1)

	press(g, platformcore.ActionPause)
	if !g.State().Paused || g.Snapshot().State != StatePaused {
		t.Fatal("pause should pause")
	}

	cursor := g.cursor
	press(g, platformcore.ActionLeft)
	if g.cursor != cursor {
		t.Error("input should be ignored while paused")
	}

	press(g, platformcore.ActionPause)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestHintAfterIdle(t *testing.T) {
	cfg := config.DefaultMatch3Config()
	cfg.Play.HintDelay = 3
	withConfig(t, cfg)
	twoLevels(t, 100000)
	g := newGame(t, 1)

	press(g)
	press(g)
	if g.showHint {
		t.Fatal("hint shown too early")
	}
	press(g)
	if !g.showHint {
		t.Fatal("hint should appear after the idle delay")
	}
	if !g.board.WouldCreateMatch(g.hint.From, g.hint.To) {
		t.Errorf("hint %v is not a valid move", g.hint)
	}

	press(g, platformcore.ActionBack)
	if g.showHint {
		t.Error("back should hide the hint")
	}
}

func TestTooSmallScreen(t *testing.T) {
	twoLevels(t, 100000)
	g := New()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 10, ScreenH: 5, Seed: 1})

	if g.Snapshot().State != StatePausedSmall {
		t.Fatalf("state = %q", g.Snapshot().State)
	}
	cursor := g.cursor
	press(g, platformcore.ActionLeft)
	if g.cursor != cursor {
		t.Error("input should be ignored in a small window")
	}

	g.Resize(80, 30)
	if g.Snapshot().State != StatePlaying {
		t.Errorf("resize should resume play, state %q", g.Snapshot().State)
	}
}

func TestLoadError(t *testing.T) {
	withLevels(t, nil)
	g := New()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: 1})

	if g.Snapshot().State != StateError {
		t.Fatalf("state = %q", g.Snapshot().State)
	}
	if !g.State().GameOver {
		t.Error("a game without levels should be over")
	}

	screen := platformcore.NewScreen(160, 30)
	g.Resize(160, 30)
	g.Render(screen)
	if !strings.Contains(screen.String(), "no levels") {
		t.Error("render should show the load error")
	}
}

func TestEndlessMode(t *testing.T) {
	g := NewEndless()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: 9})

	if g.ID() != EndlessID {
		t.Errorf("ID = %q", g.ID())
	}
	st := g.State()
	if st.Level != "" || st.MovesLeft != -1 {
		t.Errorf("endless should have no level and no move limit: %+v", st)
	}
	if g.board.Size() != gameConfig.Board.Size {
		t.Errorf("board size = %d", g.board.Size())
	}

	for i := 0; i < 3; i++ {
		playHint(t, g)
	}
	if g.State().Score == 0 || g.State().GameOver {
		t.Errorf("endless play should score and continue: %+v", g.State())
	}
}

func TestEndlessMoveLimit(t *testing.T) {
	cfg := config.DefaultMatch3Config()
	cfg.Play.MoveLimit = 2
	withConfig(t, cfg)

	g := NewEndless()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: 9})
	playHint(t, g)
	playHint(t, g)

	if !g.State().GameOver {
		t.Error("endless game should end when the move limit is used up")
	}
}

func TestRender(t *testing.T) {
	twoLevels(t, 500)
	g := newGame(t, 1)

	screen := platformcore.NewScreen(80, 30)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Level 1/2: Alpha", "Score: 0", "Moves: 20", " 0/500", "●"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	press(g, platformcore.ActionPause)
	screen.Clear()
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}
}

func TestRenderCursorIsReversed(t *testing.T) {
	twoLevels(t, 500)
	g := newGame(t, 1)

	screen := platformcore.NewScreen(80, 30)
	g.Render(screen)

	reversed := 0
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.GetCell(x, y).Reverse {
				reversed++
			}
		}
	}
	if reversed != cellWidth {
		t.Errorf("cursor should cover %d reversed cells, got %d", cellWidth, reversed)
	}
}

func TestScore(t *testing.T) {
	s := config.DefaultMatch3Config().Scoring
	three := []core.Coord{core.At(0, 0), core.At(0, 1), core.At(0, 2)}
	four := []core.Coord{core.At(1, 0), core.At(1, 1), core.At(1, 2), core.At(1, 3)}

	tests := []struct {
		name string
		out  core.Outcome
		want int
	}{
		{
			name: "not applied",
			out:  core.Outcome{Resolution: core.Resolution{Waves: []core.Wave{{Cleared: three}}}},
			want: 0,
		},
		{
			name: "single wave",
			out:  core.Outcome{Applied: true, Resolution: core.Resolution{Waves: []core.Wave{{Cleared: three}}}},
			want: 30,
		},
		{
			name: "cascade multiplier",
			out: core.Outcome{Applied: true, Resolution: core.Resolution{Waves: []core.Wave{
				{Cleared: three},
				{Cleared: four},
			}}},
			want: 30 + 60,
		},
		{
			name: "crates",
			out: core.Outcome{Applied: true, Resolution: core.Resolution{Waves: []core.Wave{
				{Cleared: three, Broken: three[:2]},
			}}},
			want: 30 + 2*20,
		},
		{
			name: "line booster created",
			out: core.Outcome{Applied: true, Created: core.BoosterLine, Resolution: core.Resolution{Waves: []core.Wave{
				{Cleared: four},
			}}},
			want: 40 + 50,
		},
		{
			name: "area booster created",
			out:  core.Outcome{Applied: true, Created: core.BoosterArea, Resolution: core.Resolution{Waves: []core.Wave{{Cleared: four}}}},
			want: 40 + 75,
		},
		{
			name: "booster fired",
			out:  core.Outcome{Applied: true, Activated: core.BoosterArea, Resolution: core.Resolution{Waves: []core.Wave{{Cleared: three}}}},
			want: 30 + 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.out, s); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLayoutSize(t *testing.T) {
	w, h := layoutSize(8)
	if w < 8*cellWidth+2 || w < len(helpText) {
		t.Errorf("width %d too small", w)
	}
	if h != hudHeight+8+2+footer {
		t.Errorf("height = %d", h)
	}
}
