// Package archive persists finished games to SQLite. It uses the pure-Go
// modernc.org/sqlite driver to avoid CGO. Live rooms are never stored here;
// only final results land in the archive.
package archive

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"chess-relay/internal/session"
)

// Store manages the archive database.
type Store struct {
	db *sql.DB
}

// Game is one archived result.
type Game struct {
	ID           int64     `json:"id"`
	RoomCode     string    `json:"roomCode"`
	FirstPlayer  string    `json:"firstPlayer"`
	SecondPlayer string    `json:"secondPlayer"`
	Result       string    `json:"result"`
	Moves        []string  `json:"moves"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Open creates or opens the archive at the given path, creating parent
// directories and running migrations as needed.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("archive: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("archive: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("archive: cannot connect to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("archive: migration failed: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			room_code TEXT NOT NULL,
			first_player TEXT NOT NULL,
			second_player TEXT NOT NULL,
			result TEXT NOT NULL,
			moves TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_created ON games(created_at DESC);
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

// SaveGame implements session.ResultSaver. Moves are stored space-separated.
func (s *Store) SaveGame(rec session.GameRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO games (room_code, first_player, second_player, result, moves)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.RoomCode,
		rec.FirstName,
		rec.SecondName,
		rec.Result,
		strings.Join(rec.Moves, " "),
	)
	if err != nil {
		return fmt.Errorf("archive: cannot save game: %w", err)
	}
	return nil
}

// RecentGames returns the most recently finished games, newest first.
func (s *Store) RecentGames(limit int) ([]Game, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, room_code, first_player, second_player, result, moves, created_at
		 FROM games
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("archive: cannot query games: %w", err)
	}
	defer rows.Close()

	var games []Game
	for rows.Next() {
		var g Game
		var moves string
		var createdAt any
		if err := rows.Scan(&g.ID, &g.RoomCode, &g.FirstPlayer, &g.SecondPlayer, &g.Result, &moves, &createdAt); err != nil {
			return nil, fmt.Errorf("archive: cannot scan row: %w", err)
		}
		if moves != "" {
			g.Moves = strings.Split(moves, " ")
		}
		// The driver may hand back either time.Time or its string form.
		switch v := createdAt.(type) {
		case time.Time:
			g.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				g.CreatedAt = parsed
			}
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("archive: row iteration error: %w", err)
	}
	return games, nil
}

var _ session.ResultSaver = (*Store)(nil)
