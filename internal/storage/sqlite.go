// Package storage provides SQLite-based persistence for the leaderboard.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// LeaderCount is how many scores the board keeps in play. A score
// qualifies while the board is short or beats the lowest leader.
const LeaderCount = 10

// Store manages the SQLite database connection for the leaderboard.
type Store struct {
	db *sql.DB
}

// Entry represents a single leaderboard record.
type Entry struct {
	ID        int64
	Name      string
	Score     int
	CreatedAt time.Time
}

// Stats aggregates the board's history for the scores view.
type Stats struct {
	Games      int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
// An in-memory path (":memory:") is supported for tests.
func Open(dbPath string) (*Store, error) {
	mem := strings.Contains(dbPath, ":memory:")

	// Expand ~ to home directory
	if !mem && dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	if !mem {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// An in-memory database exists per connection; the pool must not
	// open a second one.
	if mem {
		db.SetMaxOpenConns(1)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
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
			name TEXT NOT NULL CHECK(length(name) = 3),
			score INTEGER NOT NULL CHECK(score >= 0 AND score <= 9999),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);
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

// Insert records a new score under three uppercase initials.
func (s *Store) Insert(name string, score int) error {
	if err := validName(name); err != nil {
		return err
	}
	if score < 0 || score > 9999 {
		return fmt.Errorf("storage: score %d out of range 0-9999", score)
	}

	_, err := s.db.Exec(
		"INSERT INTO scores (name, score) VALUES (?, ?)",
		name, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	return nil
}

// validName enforces exactly three uppercase A-Z initials.
func validName(name string) error {
	if len(name) != 3 {
		return fmt.Errorf("storage: name %q must be exactly 3 letters", name)
	}
	for _, r := range name {
		if r < 'A' || r > 'Z' {
			return fmt.Errorf("storage: name %q must use letters A-Z only", name)
		}
	}
	return nil
}

// Leaders retrieves the board, best first. Ties rank the earlier
// entry higher.
func (s *Store) Leaders() ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, name, score, created_at
		 FROM scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		LeaderCount,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaders: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// High returns the best score on the board, 0 when empty.
func (s *Store) High() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Low returns the worst score still on the board, 0 when empty. This
// is the lowest of the leaders, not of all history.
func (s *Store) Low() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		`SELECT MIN(score) FROM (
			SELECT score FROM scores ORDER BY score DESC, id ASC LIMIT ?
		)`,
		LeaderCount,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query low score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Qualifies reports whether a score earns a spot on the board.
func (s *Store) Qualifies(score int) (bool, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM scores").Scan(&count)
	if err != nil {
		return false, fmt.Errorf("storage: cannot count scores: %w", err)
	}
	if count < LeaderCount {
		return score > 0, nil
	}

	low, err := s.Low()
	if err != nil {
		return false, err
	}
	return score > low, nil
}

// Clear deletes every score.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM scores"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GetStats retrieves aggregated statistics across the board's history.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0)
		 FROM scores`,
	).Scan(&stats.Games, &stats.HighScore, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores ORDER BY created_at DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// parseTimestamp handles the driver returning either time.Time or the
// SQLite text form.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
