package web

import (
	"strconv"

	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
)

// Client message types sent over /play.
const (
	MsgNew      = "new"
	MsgMove     = "move"
	MsgActivate = "activate"
	MsgPreview  = "preview"
	MsgHint     = "hint"
	MsgCheck    = "check"
)

// Server reply types.
const (
	ReplyBoard   = "board"
	ReplyPreview = "preview"
	ReplyHint    = "hint"
	ReplyCheck   = "check"
	ReplyError   = "error"
)

// Pos is a board coordinate on the wire.
type Pos struct {
	R int `json:"r"`
	C int `json:"c"`
}

func toPos(c core.Coord) Pos {
	return Pos{R: c.R, C: c.C}
}

func (p Pos) coord() core.Coord {
	return core.At(p.R, p.C)
}

func toPositions(cs []core.Coord) []Pos {
	if len(cs) == 0 {
		return nil
	}
	out := make([]Pos, len(cs))
	for i, c := range cs {
		out[i] = toPos(c)
	}
	return out
}

// ClientMessage is a request from the browser.
type ClientMessage struct {
	Type  string `json:"type"`
	Level string `json:"level,omitempty"` // For "new"; empty starts an endless board
	Seed  int64  `json:"seed,omitempty"`  // For "new"; 0 picks one
	From  *Pos   `json:"from,omitempty"`
	To    *Pos   `json:"to,omitempty"`
	Pos   *Pos   `json:"pos,omitempty"`
}

// BoardView is the board as sent to clients.
// Tiles hold a color index, "line", "area" or "" for no tile.
type BoardView struct {
	Size   int        `json:"size"`
	Colors int        `json:"colors"`
	Cells  [][]string `json:"cells"`
	Tiles  [][]string `json:"tiles"`
}

func newBoardView(b *core.Board) *BoardView {
	snap := b.Snapshot()
	v := &BoardView{
		Size:   snap.Size,
		Colors: snap.Colors,
		Cells:  make([][]string, snap.Size),
		Tiles:  make([][]string, snap.Size),
	}
	for r := range snap.Size {
		v.Cells[r] = make([]string, snap.Size)
		v.Tiles[r] = make([]string, snap.Size)
		for c := range snap.Size {
			v.Cells[r][c] = snap.Cells[r][c].String()
			v.Tiles[r][c] = tileCode(snap.Tiles[r][c])
		}
	}
	return v
}

func tileCode(t core.Tile) string {
	switch t.Kind {
	case core.TileColor:
		return strconv.Itoa(t.Color)
	case core.TileBooster:
		return t.Booster.String()
	default:
		return ""
	}
}

// WaveView reports one cascade pass.
type WaveView struct {
	Cleared []Pos `json:"cleared"`
	Broken  []Pos `json:"broken,omitempty"`
	Filled  []Pos `json:"filled"`
}

func newWaveViews(res core.Resolution) []WaveView {
	if len(res.Waves) == 0 {
		return nil
	}
	out := make([]WaveView, len(res.Waves))
	for i, w := range res.Waves {
		out[i] = WaveView{
			Cleared: toPositions(w.Cleared),
			Broken:  toPositions(w.Broken),
			Filled:  toPositions(w.Filled),
		}
	}
	return out
}

// MoveView is a swap on the wire.
type MoveView struct {
	From Pos `json:"from"`
	To   Pos `json:"to"`
}

// ServerMessage is a reply to one client message.
type ServerMessage struct {
	Type       string     `json:"type"`
	Level      string     `json:"level,omitempty"`
	Board      *BoardView `json:"board,omitempty"`
	Applied    bool       `json:"applied,omitempty"`
	Created    string     `json:"created,omitempty"`
	Activated  string     `json:"activated,omitempty"`
	Waves      []WaveView `json:"waves,omitempty"`
	Points     int        `json:"points,omitempty"`
	Score      int        `json:"score"`
	Target     int        `json:"target,omitempty"`
	MovesLeft  int        `json:"moves_left"` // -1 means unlimited
	Cleared    bool       `json:"cleared,omitempty"`
	GameOver   bool       `json:"game_over,omitempty"`
	Reshuffled bool       `json:"reshuffled,omitempty"`
	Cells      []Pos      `json:"cells,omitempty"`
	Move       *MoveView  `json:"move,omitempty"`
	Valid      bool       `json:"valid,omitempty"`
	Error      string     `json:"error,omitempty"`
}

func errorReply(msg string) ServerMessage {
	return ServerMessage{Type: ReplyError, Error: msg}
}

func boosterName(k core.BoosterKind) string {
	if k == core.BoosterNone {
		return ""
	}
	return k.String()
}

// LevelSummary is one entry of GET /levels.
type LevelSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Size   int    `json:"size"`
	Colors int    `json:"colors"`
	Moves  int    `json:"moves"`
	Target int    `json:"target"`
}

// LevelDetail is the reply to GET /levels/:id.
type LevelDetail struct {
	LevelSummary
	Map []string `json:"map"`
}

func newLevelSummary(l levels.Level) LevelSummary {
	return LevelSummary{
		ID:     l.ID,
		Name:   l.Name,
		Size:   l.Config.Size,
		Colors: l.Config.Colors,
		Moves:  l.Moves,
		Target: l.Target,
	}
}
