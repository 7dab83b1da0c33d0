// Package match3 is the playable Match-3 game: cursor and selection
// handling, scoring, move budgets and campaign progression on top of the
// board engine in match3/core.
package match3

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-match3/internal/config"
	platformcore "github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Game IDs as registered and stored with scores.
const (
	CampaignID = "match3"
	EndlessID  = "match3_endless"
)

const (
	bannerTicks    = 60 // Pause on the "level cleared" banner before advancing
	messageTicks   = 45 // How long a status message stays up
	reshuffleLimit = 10 // Reseeds tried before a board without moves is accepted
)

// Package-level settings, applied by the CLI before a game is created.
var (
	gameConfig  = config.DefaultMatch3Config()
	levelLoader = levels.Campaign()
)

// Configure sets the configuration used by games created afterwards.
func Configure(cfg config.Match3Config) {
	gameConfig = cfg
}

// SetLevelLoader replaces the built-in campaign with another level source.
func SetLevelLoader(l *levels.Loader) {
	levelLoader = l
}

// Levels returns the campaign levels from the current level source.
func Levels() ([]levels.Level, error) {
	return levelLoader.LoadAll()
}

// Game implements the Match-3 game for both modes.
type Game struct {
	mode Mode
	rng  *rand.Rand
	tick uint64

	cfg  config.Match3Config
	diff *config.DifficultyManager

	levels     []levels.Level
	levelIndex int
	board      *core.Board

	cursor    core.Coord
	selected  bool
	selection core.Coord

	score      int // Total across levels
	levelScore int // Score on the current level
	target     int
	movesLeft  int // -1 means unlimited
	movesMade  int
	lastWaves  int // Cascade depth of the last move

	flash      []core.Coord // Cells refilled by the last move
	flashTicks int
	hint       core.Move
	showHint   bool
	idleTicks  int
	message    string
	msgTicks   int

	screenW int
	screenH int

	gameOver        bool
	won             bool
	paused          bool
	tooSmall        bool
	levelCleared    bool
	levelClearTicks int
	justCleared     string // Level ID reported once in StepResult
	loadErr         error
}

// New creates a new campaign mode game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register(CampaignID, func() registry.Game {
		return New()
	})
	registry.Register(EndlessID, func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return EndlessID
	}
	return CampaignID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Match-3 (Endless)"
	}
	return "Match-3"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.mode == ModeEndless {
		return "Play one board for as long as it lasts"
	}
	return "Reach each level's target before the moves run out"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.cfg = gameConfig
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)
	g.tick = 0
	g.score = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.won = false
	g.paused = false
	g.levelCleared = false
	g.justCleared = ""
	g.loadErr = nil
	g.levelIndex = 0
	g.board = nil

	if g.mode == ModeEndless {
		g.levels = nil
		g.startEndless()
	} else {
		lvls, err := levelLoader.LoadAll()
		if err == nil && len(lvls) == 0 {
			err = fmt.Errorf("no levels in %s", levelLoader.Root())
		}
		if err != nil {
			g.loadErr = err
			g.gameOver = true
			return
		}
		g.levels = lvls
		g.levelIndex = indexOf(lvls, cfg.Level)
		g.loadLevel()
	}

	g.checkScreenSize()
}

// indexOf returns the position of the level with the given ID, or 0.
func indexOf(lvls []levels.Level, id string) int {
	for i, l := range lvls {
		if l.ID == id {
			return i
		}
	}
	return 0
}

// loadLevel builds the board for the current campaign level.
func (g *Game) loadLevel() {
	lvl := g.levels[g.levelIndex]
	board, err := lvl.NewBoard(g.rng)
	if err != nil {
		g.loadErr = err
		g.gameOver = true
		return
	}

	g.board = board
	g.ensureMoves()
	g.target = g.diff.Target(lvl.Target)
	g.movesLeft = -1
	if lvl.Moves > 0 {
		g.movesLeft = g.diff.Moves(lvl.Moves)
	}
	g.resetBoardState()
}

// startEndless builds an endless board from the config.
func (g *Game) startEndless() {
	g.newEndlessBoard()
	g.target = 0
	g.movesLeft = -1
	if g.cfg.Play.MoveLimit > 0 {
		g.movesLeft = g.cfg.Play.MoveLimit
	}
	g.resetBoardState()
}

// newEndlessBoard creates a board whose palette grows with the score.
func (g *Game) newEndlessBoard() {
	colors := platformcore.Min(g.diff.Colors(g.cfg.Board.Colors, g.score), platformcore.PaletteSize())
	board, err := core.NewBoard(core.LevelConfig{Size: g.cfg.Board.Size, Colors: colors}, g.rng)
	if err != nil {
		g.loadErr = err
		g.gameOver = true
		return
	}
	g.board = board
	g.ensureMoves()
}

// ensureMoves reshuffles until the board has a playable move.
func (g *Game) ensureMoves() {
	for i := 0; i < reshuffleLimit && !g.board.HasMoves(); i++ {
		g.board.Reseed()
	}
}

func (g *Game) resetBoardState() {
	g.levelScore = 0
	g.movesMade = 0
	g.lastWaves = 0
	g.selected = false
	g.showHint = false
	g.idleTicks = 0
	g.flash = nil
	g.flashTicks = 0
	if g.board != nil {
		mid := g.board.Size() / 2
		g.cursor = core.At(mid, mid)
	}
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	if g.board == nil {
		g.tooSmall = false
		return
	}
	w, h := layoutSize(g.board.Size())
	g.tooSmall = g.screenW < w || g.screenH < h
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	g.justCleared = ""

	if g.msgTicks > 0 {
		g.msgTicks--
		if g.msgTicks == 0 {
			g.message = ""
		}
	}
	if g.flashTicks > 0 {
		g.flashTicks--
	}

	if g.tooSmall || g.board == nil {
		return g.result()
	}

	if in.Has(platformcore.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= bannerTicks || in.Has(platformcore.ActionSelect) {
			g.advanceLevel()
		}
		return g.result()
	}

	if g.gameOver {
		return g.result()
	}

	if in.Empty() {
		g.idleTicks++
		if g.cfg.Play.HintDelay > 0 && g.idleTicks >= g.cfg.Play.HintDelay && !g.showHint {
			g.revealHint()
		}
		return g.result()
	}

	g.idleTicks = 0
	for _, a := range in.Actions() {
		g.handle(a)
		if g.gameOver || g.levelCleared {
			break
		}
	}

	return g.result()
}

// handle applies one action to the board.
func (g *Game) handle(a platformcore.Action) {
	if dr, dc, ok := a.Delta(); ok {
		target := g.cursor.Add(dr, dc)
		if g.selected {
			g.selected = false
			g.tryMove(g.selection, g.selection.Add(dr, dc))
			return
		}
		if g.board.InBounds(target) {
			g.cursor = target
		}
		return
	}

	switch a {
	case platformcore.ActionSelect:
		switch {
		case !g.selected:
			g.selected = true
			g.selection = g.cursor
		case g.selection == g.cursor:
			g.selected = false
		case g.selection.Adjacent(g.cursor):
			g.selected = false
			g.tryMove(g.selection, g.cursor)
		default:
			g.selection = g.cursor
		}
	case platformcore.ActionActivate:
		g.selected = false
		g.activate(g.cursor)
	case platformcore.ActionHint:
		g.revealHint()
	case platformcore.ActionBack:
		g.selected = false
		g.showHint = false
	}
}

// tryMove performs a swap and applies its consequences.
func (g *Game) tryMove(from, to core.Coord) {
	out := g.board.ApplyMove(from, to)
	if !out.Applied {
		g.say("No match")
		return
	}
	g.cursor = to
	g.afterMove(out)
}

// activate fires the booster at pos.
func (g *Game) activate(pos core.Coord) {
	kind := g.board.Tile(pos).Booster
	res, ok := g.board.ActivateBooster(pos)
	if !ok {
		g.say("No booster here")
		return
	}
	g.afterMove(core.Outcome{
		Applied:    true,
		Move:       core.Move{From: pos, To: pos},
		Activated:  kind,
		BoosterAt:  pos,
		Resolution: res,
	})
}

// afterMove scores an applied move and checks level and game end.
func (g *Game) afterMove(out core.Outcome) {
	points := Score(out, g.cfg.Scoring)
	g.score += points
	g.levelScore += points
	g.movesMade++
	if g.movesLeft > 0 {
		g.movesLeft--
	}
	g.lastWaves = len(out.Resolution.Waves)
	g.showHint = false

	g.flash = g.flash[:0]
	for _, w := range out.Resolution.Waves {
		g.flash = append(g.flash, w.Filled...)
	}
	g.flashTicks = g.cfg.Play.FlashTicks

	switch {
	case out.Created != core.BoosterNone:
		g.say(fmt.Sprintf("+%d  %s booster!", points, out.Created))
	case g.lastWaves > 1:
		g.say(fmt.Sprintf("+%d  combo x%d", points, g.lastWaves))
	default:
		g.say(fmt.Sprintf("+%d", points))
	}

	if g.mode == ModeCampaign && g.target > 0 && g.levelScore >= g.target {
		g.levelCleared = true
		g.levelClearTicks = 0
		g.justCleared = g.levels[g.levelIndex].ID
		return
	}

	if g.movesLeft == 0 {
		g.gameOver = true
		return
	}

	if !g.board.HasMoves() {
		g.handleDeadlock()
	}
}

// handleDeadlock reshuffles a board that has no moves left.
func (g *Game) handleDeadlock() {
	if !g.cfg.Play.ReseedOnDead {
		g.gameOver = true
		return
	}
	if g.mode == ModeEndless {
		g.newEndlessBoard()
	} else {
		g.board.Reseed()
		g.ensureMoves()
	}
	g.say("No moves left, reshuffled")
}

// advanceLevel moves to the next campaign level.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= len(g.levels)-1 {
		g.won = true
		g.gameOver = true
		return
	}

	g.levelIndex++
	g.loadLevel()
	g.checkScreenSize()
}

// revealHint highlights a playable move.
func (g *Game) revealHint() {
	m, ok := g.board.Hint()
	if !ok {
		return
	}
	g.hint = m
	g.showHint = true
}

func (g *Game) say(msg string) {
	g.message = msg
	g.msgTicks = messageTicks
}

func (g *Game) result() platformcore.StepResult {
	res := platformcore.StepResult{State: g.State()}
	if g.justCleared != "" {
		res.LevelCleared = g.justCleared
		res.LevelScore = g.levelScore
	}
	return res
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	level := ""
	if g.mode == ModeCampaign && g.levelIndex < len(g.levels) {
		level = g.levels[g.levelIndex].ID
	}
	return platformcore.GameState{
		Score:     g.score,
		GameOver:  g.gameOver,
		Won:       g.won,
		Paused:    g.paused || g.tooSmall || g.levelCleared,
		Level:     level,
		MovesLeft: g.movesLeft,
	}
}

// Board returns the engine board, for hosts that drive it directly.
func (g *Game) Board() *core.Board {
	return g.board
}

// Resize updates the screen size without restarting the game.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}
