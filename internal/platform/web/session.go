package web

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
)

// session is the state of one /play connection. It is only touched by the
// connection's read loop.
type session struct {
	cfg    config.Match3Config
	loader *levels.Loader
	seed   int64

	board     *core.Board
	level     string
	score     int
	target    int
	movesLeft int
	over      bool
}

func newSession(cfg config.Match3Config, loader *levels.Loader, seed int64) *session {
	return &session{cfg: cfg, loader: loader, seed: seed}
}

// handle applies one client message and returns the reply.
func (s *session) handle(msg ClientMessage) ServerMessage {
	if msg.Type == MsgNew {
		return s.start(msg)
	}
	if s.board == nil {
		return errorReply(`no board yet, send "new" first`)
	}

	switch msg.Type {
	case MsgMove:
		if msg.From == nil || msg.To == nil {
			return errorReply("move needs from and to")
		}
		return s.move(msg.From.coord(), msg.To.coord())

	case MsgActivate:
		if msg.Pos == nil {
			return errorReply("activate needs pos")
		}
		return s.activate(msg.Pos.coord())

	case MsgPreview:
		if msg.Pos == nil {
			return errorReply("preview needs pos")
		}
		return ServerMessage{
			Type:      ReplyPreview,
			Cells:     toPositions(s.board.BoosterClears(msg.Pos.coord())),
			Score:     s.score,
			MovesLeft: s.movesLeft,
		}

	case MsgHint:
		reply := ServerMessage{Type: ReplyHint, Score: s.score, MovesLeft: s.movesLeft}
		if m, ok := s.board.Hint(); ok {
			reply.Move = &MoveView{From: toPos(m.From), To: toPos(m.To)}
		}
		return reply

	case MsgCheck:
		if msg.From == nil || msg.To == nil {
			return errorReply("check needs from and to")
		}
		return ServerMessage{
			Type:      ReplyCheck,
			Valid:     s.board.Legal(msg.From.coord(), msg.To.coord()),
			Move:      &MoveView{From: *msg.From, To: *msg.To},
			Score:     s.score,
			MovesLeft: s.movesLeft,
		}
	}

	return errorReply(fmt.Sprintf("unknown message type %q", msg.Type))
}

// start builds a board for a campaign level, or an endless board when no
// level is named.
func (s *session) start(msg ClientMessage) ServerMessage {
	seed := msg.Seed
	if seed == 0 {
		seed = s.seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	src := rand.New(rand.NewSource(seed))

	var (
		board     *core.Board
		err       error
		target    int
		movesLeft = -1
	)
	if msg.Level == "" {
		board, err = core.NewBoard(core.LevelConfig{Size: s.cfg.Board.Size, Colors: s.cfg.Board.Colors}, src)
		if s.cfg.Play.MoveLimit > 0 {
			movesLeft = s.cfg.Play.MoveLimit
		}
	} else {
		var lvl levels.Level
		lvl, err = s.loader.LoadByID(msg.Level)
		if err == nil {
			board, err = lvl.NewBoard(src)
		}
		target = lvl.Target
		if lvl.Moves > 0 {
			movesLeft = lvl.Moves
		}
	}
	// A failed start leaves the running board untouched
	if err != nil {
		return errorReply(err.Error())
	}

	s.board = board
	s.level = msg.Level
	s.target = target
	s.movesLeft = movesLeft
	s.score = 0
	s.over = false
	return s.reply(ServerMessage{Type: ReplyBoard})
}

// move applies a swap and reports every wave.
func (s *session) move(from, to core.Coord) ServerMessage {
	if s.over {
		return errorReply("game is over")
	}
	out := s.board.ApplyMove(from, to)
	return s.afterMove(out)
}

// activate fires the booster at pos.
func (s *session) activate(pos core.Coord) ServerMessage {
	if s.over {
		return errorReply("game is over")
	}
	kind := s.board.Tile(pos).Booster
	res, ok := s.board.ActivateBooster(pos)
	if !ok {
		return errorReply(fmt.Sprintf("no booster at %v", pos))
	}
	return s.afterMove(core.Outcome{
		Applied:    true,
		Move:       core.Move{From: pos, To: pos},
		Activated:  kind,
		BoosterAt:  pos,
		Resolution: res,
	})
}

func (s *session) afterMove(out core.Outcome) ServerMessage {
	reply := ServerMessage{Type: ReplyBoard, Applied: out.Applied}
	if !out.Applied {
		return s.reply(reply)
	}

	points := match3.Score(out, s.cfg.Scoring)
	s.score += points
	if s.movesLeft > 0 {
		s.movesLeft--
	}

	reply.Points = points
	reply.Created = boosterName(out.Created)
	reply.Activated = boosterName(out.Activated)
	reply.Waves = newWaveViews(out.Resolution)

	switch {
	case s.target > 0 && s.score >= s.target:
		reply.Cleared = true
		s.over = true
	case s.movesLeft == 0:
		s.over = true
	case !s.board.HasMoves():
		if s.cfg.Play.ReseedOnDead {
			s.board.Reseed()
			reply.Reshuffled = true
		} else {
			s.over = true
		}
	}
	return s.reply(reply)
}

// reply fills in the fields every board reply carries.
func (s *session) reply(m ServerMessage) ServerMessage {
	m.Level = s.level
	m.Board = newBoardView(s.board)
	m.Score = s.score
	m.Target = s.target
	m.MovesLeft = s.movesLeft
	m.GameOver = s.over
	return m
}
