// Package storage provides SQLite-based persistence for scores and
// campaign progress. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// LocalPlayer is the player name used for games played on this terminal.
const LocalPlayer = "local"

// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Player    string
	Level     string // Last level reached; empty for endless games
	Score     int
	CreatedAt time.Time
}

// LevelProgress is a player's best result on one campaign level.
type LevelProgress struct {
	Player    string
	LevelID   string
	BestScore int
	MovesLeft int // Moves left over on the best run
	Clears    int // Number of times the level was cleared
	ClearedAt time.Time
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT 'local',
			level TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS level_progress (
			player TEXT NOT NULL,
			level_id TEXT NOT NULL,
			best_score INTEGER NOT NULL DEFAULT 0,
			moves_left INTEGER NOT NULL DEFAULT 0,
			clears INTEGER NOT NULL DEFAULT 0,
			cleared_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (player, level_id)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(e ScoreEntry) (int64, error) {
	if e.Player == "" {
		e.Player = LocalPlayer
	}
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, player, level, score) VALUES (?, ?, ?, ?)",
		e.GameID, e.Player, e.Level, e.Score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player, level, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Player, &e.Level, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// RecordClear stores a cleared campaign level. The best score (and the
// moves left on that run) is kept; the clear counter always increments.
func (s *Store) RecordClear(player, levelID string, score, movesLeft int) error {
	if player == "" {
		player = LocalPlayer
	}
	_, err := s.db.Exec(
		`INSERT INTO level_progress (player, level_id, best_score, moves_left, clears)
		 VALUES (?, ?, ?, ?, 1)
		 ON CONFLICT(player, level_id) DO UPDATE SET
			moves_left = CASE WHEN excluded.best_score > best_score THEN excluded.moves_left ELSE moves_left END,
			best_score = MAX(best_score, excluded.best_score),
			clears = clears + 1,
			cleared_at = CURRENT_TIMESTAMP`,
		player, levelID, score, movesLeft,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record clear: %w", err)
	}
	return nil
}

// LevelBest returns a player's progress on one level.
// ok is false if the level was never cleared.
func (s *Store) LevelBest(player, levelID string) (LevelProgress, bool, error) {
	if player == "" {
		player = LocalPlayer
	}
	p := LevelProgress{Player: player, LevelID: levelID}
	var clearedAt any
	err := s.db.QueryRow(
		`SELECT best_score, moves_left, clears, cleared_at
		 FROM level_progress WHERE player = ? AND level_id = ?`,
		player, levelID,
	).Scan(&p.BestScore, &p.MovesLeft, &p.Clears, &clearedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return LevelProgress{}, false, nil
	}
	if err != nil {
		return LevelProgress{}, false, fmt.Errorf("storage: cannot query level progress: %w", err)
	}
	p.ClearedAt = parseTime(clearedAt)
	return p, true, nil
}

// Progress returns every level a player has cleared, keyed by level ID.
func (s *Store) Progress(player string) (map[string]LevelProgress, error) {
	if player == "" {
		player = LocalPlayer
	}
	rows, err := s.db.Query(
		`SELECT level_id, best_score, moves_left, clears, cleared_at
		 FROM level_progress WHERE player = ?`,
		player,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	defer rows.Close()

	progress := make(map[string]LevelProgress)
	for rows.Next() {
		p := LevelProgress{Player: player}
		var clearedAt any
		if err := rows.Scan(&p.LevelID, &p.BestScore, &p.MovesLeft, &p.Clears, &clearedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan progress row: %w", err)
		}
		p.ClearedAt = parseTime(clearedAt)
		progress[p.LevelID] = p
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return progress, nil
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0), MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
