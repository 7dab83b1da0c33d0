// Package web serves Match-3 over HTTP: level listings as JSON and a
// WebSocket endpoint where a browser plays boards driven by the engine.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/matryer/way"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10 // Must be shorter than pongWait
	maxMessageSize = 4096
)

// Config holds configuration for the web server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// Levels is the level source for "new" messages and /levels.
	Levels *levels.Loader

	// Game supplies scoring and the endless board.
	Game config.Match3Config

	// Seed fixes the board seed for every session; 0 seeds from the clock.
	Seed int64

	// Logger receives request and session logs. Nil logs to stderr.
	Logger *log.Logger
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address: ":8080",
		Levels:  levels.Campaign(),
		Game:    config.DefaultMatch3Config(),
	}
}

// Server routes level queries and WebSocket play sessions.
type Server struct {
	config   Config
	router   *way.Router
	upgrader websocket.Upgrader
	logger   *log.Logger
	sessions atomic.Int64

	pongWait   time.Duration
	pingPeriod time.Duration
}

// NewServer creates a web server with the given configuration.
func NewServer(cfg Config) *Server {
	if cfg.Levels == nil {
		cfg.Levels = levels.Campaign()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "match3-web",
		})
	}

	s := &Server{
		config:     cfg,
		logger:     logger,
		pongWait:   pongWait,
		pingPeriod: pingPeriod,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", "/levels", s.handleLevels)
	s.router.HandleFunc("GET", "/levels/:id", s.handleLevel)
	s.router.HandleFunc("GET", "/play", s.handlePlay)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Address,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("starting web server", "address", s.config.Address)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleLevels(w http.ResponseWriter, r *http.Request) {
	lvls, err := s.config.Levels.LoadAll()
	if err != nil {
		s.logger.Error("loading levels", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	out := make([]LevelSummary, len(lvls))
	for i, l := range lvls {
		out[i] = newLevelSummary(l)
	}
	s.writeJSON(w, out)
}

func (s *Server) handleLevel(w http.ResponseWriter, r *http.Request) {
	id := way.Param(r.Context(), "id")
	lvl, err := s.config.Levels.LoadByID(id)
	switch {
	case errors.Is(err, levels.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		s.logger.Error("loading level", "id", id, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, LevelDetail{LevelSummary: newLevelSummary(lvl), Map: lvl.Map()})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("writing response", "error", err)
	}
}

// handlePlay upgrades to a WebSocket and runs one session until the
// client disconnects.
func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	open := s.sessions.Add(1)
	remote := r.RemoteAddr
	s.logger.Info("session started", "remote", remote, "open", open)
	defer func() {
		s.logger.Info("session ended", "remote", remote, "open", s.sessions.Add(-1))
	}()

	conn.SetReadLimit(maxMessageSize)
	//nolint:errcheck // A failed deadline surfaces on the next read
	conn.SetReadDeadline(time.Now().Add(s.pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(s.pongWait))
	})

	var writeMu sync.Mutex
	done := make(chan struct{})
	defer close(done)
	go s.keepAlive(conn, &writeMu, done)

	sess := newSession(s.config.Game, s.config.Levels, s.config.Seed)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("read failed", "remote", remote, "error", err)
			}
			return
		}
		//nolint:errcheck // Any message counts as activity
		conn.SetReadDeadline(time.Now().Add(s.pongWait))

		var msg ClientMessage
		reply := errorReply("malformed message")
		if err := json.Unmarshal(data, &msg); err == nil {
			reply = sess.handle(msg)
		}
		if reply.Type == ReplyError {
			s.logger.Debug("rejected message", "remote", remote, "type", msg.Type, "error", reply.Error)
		}

		writeMu.Lock()
		//nolint:errcheck // A failed deadline surfaces on the write
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		err = conn.WriteJSON(reply)
		writeMu.Unlock()
		if err != nil {
			s.logger.Warn("write failed", "remote", remote, "error", err)
			return
		}
	}
}

// keepAlive pings the client until done is closed. Browsers answer pings
// but never send them, so without this an idle player hits the read deadline.
func (s *Server) keepAlive(conn *websocket.Conn, writeMu *sync.Mutex, done <-chan struct{}) {
	ticker := time.NewTicker(s.pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			writeMu.Lock()
			err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			writeMu.Unlock()
			if err != nil {
				// The read loop sees the broken connection and ends the session
				return
			}
		}
	}
}
