// Package storage provides SQLite-based persistence for game results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// sqliteTimeLayout is the format of CURRENT_TIMESTAMP.
const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sqlx.DB
}

// GameResult is a finished game as reported by the platform.
type GameResult struct {
	GameID    string
	Score     int
	Radius    int
	MaxTile   int
	Moves     int
	Won       bool
	SessionID string // Empty for local play
}

// ScoreEntry represents a single stored result.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	Radius    int
	MaxTile   int
	Moves     int
	Won       bool
	SessionID string
	CreatedAt time.Time
}

// scoreRow mirrors the scores table.
type scoreRow struct {
	ID        int64     `db:"id"`
	GameID    string    `db:"game_id"`
	Score     int       `db:"score"`
	Radius    int       `db:"radius"`
	MaxTile   int       `db:"max_tile"`
	Moves     int       `db:"moves"`
	Won       bool      `db:"won"`
	SessionID string    `db:"session_id"`
	CreatedAt timestamp `db:"created_at"`
}

func (r scoreRow) entry() ScoreEntry {
	return ScoreEntry{
		ID:        r.ID,
		GameID:    r.GameID,
		Score:     r.Score,
		Radius:    r.Radius,
		MaxTile:   r.MaxTile,
		Moves:     r.Moves,
		Won:       r.Won,
		SessionID: r.SessionID,
		CreatedAt: r.CreatedAt.Time,
	}
}

// timestamp scans SQLite datetimes, which arrive as time.Time for declared
// DATETIME columns and as text from aggregates.
type timestamp struct {
	time.Time
}

// Scan implements sql.Scanner.
func (t *timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
	case time.Time:
		t.Time = v
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("storage: cannot scan %T into timestamp", src)
	}
	return nil
}

func (t *timestamp) parse(s string) error {
	for _, layout := range []string{sqliteTimeLayout, time.RFC3339Nano} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("storage: unrecognised timestamp %q", s)
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

	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)")
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
			score INTEGER NOT NULL,
			radius INTEGER NOT NULL DEFAULT 0,
			max_tile INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			session_id TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);
		CREATE INDEX IF NOT EXISTS idx_scores_session ON scores(session_id);
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

// SaveResult records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r GameResult) (int64, error) {
	if r.GameID == "" {
		return 0, errors.New("storage: result without game id")
	}

	result, err := s.db.NamedExec(
		`INSERT INTO scores (game_id, score, radius, max_tile, won, moves, session_id)
		 VALUES (:game_id, :score, :radius, :max_tile, :won, :moves, :session_id)`,
		scoreRow{
			GameID:    r.GameID,
			Score:     r.Score,
			Radius:    r.Radius,
			MaxTile:   r.MaxTile,
			Moves:     r.Moves,
			Won:       r.Won,
			SessionID: r.SessionID,
		},
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

// SaveScore records a bare score for the given game.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	return s.SaveResult(GameResult{GameID: gameID, Score: score})
}

const selectScores = `SELECT id, game_id, score, radius, max_tile, won, moves, session_id, created_at FROM scores`

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending, earlier results first on ties.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []scoreRow
	err := s.db.Select(&rows,
		selectScores+` WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return entries(rows), nil
}

// AllScores retrieves all scores for the given game (no limit).
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	var rows []scoreRow
	err := s.db.Select(&rows,
		selectScores+` WHERE game_id = ? ORDER BY score DESC, id ASC`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return entries(rows), nil
}

// SessionScores retrieves the most recent results recorded by one SSH session.
func (s *Store) SessionScores(sessionID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	var rows []scoreRow
	err := s.db.Select(&rows,
		selectScores+` WHERE session_id = ? ORDER BY id DESC LIMIT ?`,
		sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session scores: %w", err)
	}
	return entries(rows), nil
}

func entries(rows []scoreRow) []ScoreEntry {
	out := make([]ScoreEntry, len(rows))
	for i, r := range rows {
		out[i] = r.entry()
	}
	return out
}

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	if err := s.db.Get(&score, "SELECT MAX(score) FROM scores WHERE game_id = ?", gameID); err != nil {
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

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	Wins       int
	HighScore  int
	BestTile   int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// statsRow mirrors the aggregate query.
type statsRow struct {
	GameID     string    `db:"game_id"`
	GamesCount int       `db:"games"`
	Wins       int       `db:"wins"`
	HighScore  int       `db:"high"`
	BestTile   int       `db:"best_tile"`
	AvgScore   float64   `db:"avg"`
	TotalScore int64     `db:"total"`
	LastPlayed timestamp `db:"last_played"`
}

func (r statsRow) stats() *GameStats {
	return &GameStats{
		GameID:     r.GameID,
		GamesCount: r.GamesCount,
		Wins:       r.Wins,
		HighScore:  r.HighScore,
		BestTile:   r.BestTile,
		AvgScore:   r.AvgScore,
		TotalScore: r.TotalScore,
		LastPlayed: r.LastPlayed.Time,
	}
}

const selectStats = `SELECT game_id,
		COUNT(*) AS games,
		COALESCE(SUM(won), 0) AS wins,
		COALESCE(MAX(score), 0) AS high,
		COALESCE(MAX(max_tile), 0) AS best_tile,
		COALESCE(AVG(score), 0) AS avg,
		COALESCE(SUM(score), 0) AS total,
		MAX(created_at) AS last_played
	 FROM scores`

// GameStats retrieves aggregated statistics for a specific game.
// A game without results yields zero stats.
func (s *Store) GameStats(gameID string) (*GameStats, error) {
	var rows []statsRow
	if err := s.db.Select(&rows, selectStats+` WHERE game_id = ? GROUP BY game_id`, gameID); err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	if len(rows) == 0 {
		return &GameStats{GameID: gameID}, nil
	}
	return rows[0].stats(), nil
}

// AllGameStats retrieves statistics for all games that have been played.
func (s *Store) AllGameStats() (map[string]*GameStats, error) {
	var rows []statsRow
	if err := s.db.Select(&rows, selectStats+` GROUP BY game_id`); err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}

	stats := make(map[string]*GameStats, len(rows))
	for _, r := range rows {
		stats[r.GameID] = r.stats()
	}
	return stats, nil
}
