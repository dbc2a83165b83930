// ABOUTME: SQLite backend for the record store.
// ABOUTME: Uses modernc.org/sqlite (pure Go, no CGO required).
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harperreed/fitpace/internal/models"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS days (
    user_id       TEXT NOT NULL,
    date          TEXT NOT NULL,
    pushups       INTEGER NOT NULL DEFAULT 0,
    pullups       INTEGER NOT NULL DEFAULT 0,
    dips          INTEGER NOT NULL DEFAULT 0,
    plank_seconds INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (user_id, date)
);
`

// SQLiteStore persists records in a local SQLite database. Used as an
// offline alternative to the charm backend, and as the test store.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database under the given data directory.
func OpenSQLite(dataDir string) (*SQLiteStore, error) {
	if err := os.MkdirAll(dataDir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	dbPath := filepath.Join(dataDir, "fitpace.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get returns the record for the date, or (nil, nil) when absent.
func (s *SQLiteStore) Get(user, date string) (*models.DailyRecord, error) {
	row := s.db.QueryRow(
		`SELECT user_id, date, pushups, pullups, dips, plank_seconds
		 FROM days WHERE user_id = ? AND date = ?`, user, date)

	var rec models.DailyRecord
	err := row.Scan(&rec.UserID, &rec.Date, &rec.Pushups, &rec.Pullups, &rec.Dips, &rec.PlankSeconds)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get day: %w", err)
	}
	return &rec, nil
}

// Put overwrites the record for the date wholesale.
func (s *SQLiteStore) Put(user, date string, rec models.DailyRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO days (user_id, date, pushups, pullups, dips, plank_seconds)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(user_id, date) DO UPDATE SET
		   pushups = excluded.pushups,
		   pullups = excluded.pullups,
		   dips = excluded.dips,
		   plank_seconds = excluded.plank_seconds`,
		user, date, rec.Pushups, rec.Pullups, rec.Dips, rec.PlankSeconds)
	if err != nil {
		return fmt.Errorf("put day: %w", err)
	}
	return nil
}

// Delete removes the record for the date, if present.
func (s *SQLiteStore) Delete(user, date string) error {
	if _, err := s.db.Exec(`DELETE FROM days WHERE user_id = ? AND date = ?`, user, date); err != nil {
		return fmt.Errorf("delete day: %w", err)
	}
	return nil
}

// QueryRange returns all records with start <= date <= end for the user.
func (s *SQLiteStore) QueryRange(user, start, end string) ([]models.DailyRecord, error) {
	rows, err := s.db.Query(
		`SELECT user_id, date, pushups, pullups, dips, plank_seconds
		 FROM days WHERE user_id = ? AND date BETWEEN ? AND ?`, user, start, end)
	if err != nil {
		return nil, fmt.Errorf("query range: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []models.DailyRecord
	for rows.Next() {
		var rec models.DailyRecord
		if err := rows.Scan(&rec.UserID, &rec.Date, &rec.Pushups, &rec.Pullups, &rec.Dips, &rec.PlankSeconds); err != nil {
			return nil, fmt.Errorf("scan day: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate range: %w", err)
	}
	return records, nil
}
