// Package storage provides SQLite-based persistence for solved puzzles.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result is one solved game.
type Result struct {
	ID        int64
	GameUUID  uuid.UUID // Unique per played game; saving the same game twice is a no-op
	GameID    string
	Size      int
	Moves     int
	Seconds   int
	Player    string // Empty for local play, SSH user otherwise
	CreatedAt time.Time
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_uuid TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			size INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			seconds INTEGER NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_game_size ON results(game_id, size);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(game_id, size, moves, seconds);
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

// SaveResult records a solved game. A zero GameUUID is replaced by a fresh one.
// Returns the ID of the inserted record, or 0 if the game was already stored.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.GameUUID == uuid.Nil {
		r.GameUUID = uuid.New()
	}

	res, err := s.db.Exec(
		`INSERT INTO results (game_uuid, game_id, size, moves, seconds, player)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(game_uuid) DO NOTHING`,
		r.GameUUID.String(), r.GameID, r.Size, r.Moves, r.Seconds, r.Player,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return 0, nil
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopResults retrieves the best N results for a game and board size.
// Fewer moves rank first; ties are broken by the faster time.
func (s *Store) TopResults(gameID string, size, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_uuid, game_id, size, moves, seconds, player, created_at
		 FROM results
		 WHERE game_id = ? AND size = ?
		 ORDER BY moves ASC, seconds ASC, id ASC
		 LIMIT ?`,
		gameID, size, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// BestResult returns the top-ranked result for a game and size, or nil if none exist.
func (s *Store) BestResult(gameID string, size int) (*Result, error) {
	results, err := s.TopResults(gameID, size, 1)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

// ClearResults deletes all results for the given game.
func (s *Store) ClearResults(gameID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics for one game and board size.
type Stats struct {
	GameID      string
	Size        int
	GamesCount  int
	BestMoves   int
	BestSeconds int
	AvgMoves    float64
	LastPlayed  time.Time
}

// Stats retrieves aggregated statistics for a game and board size.
func (s *Store) Stats(gameID string, size int) (*Stats, error) {
	stats := &Stats{GameID: gameID, Size: size}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(moves), 0), COALESCE(MIN(seconds), 0), COALESCE(AVG(moves), 0)
		 FROM results WHERE game_id = ? AND size = ?`,
		gameID, size,
	).Scan(&stats.GamesCount, &stats.BestMoves, &stats.BestSeconds, &stats.AvgMoves)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results WHERE game_id = ? AND size = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		gameID, size,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResult(row rowScanner) (Result, error) {
	var r Result
	var gameUUID string
	var createdAt any
	if err := row.Scan(&r.ID, &gameUUID, &r.GameID, &r.Size, &r.Moves, &r.Seconds, &r.Player, &createdAt); err != nil {
		return Result{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	id, err := uuid.Parse(gameUUID)
	if err != nil {
		return Result{}, fmt.Errorf("storage: bad game uuid %q: %w", gameUUID, err)
	}
	r.GameUUID = id
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
