package bridge

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Sink receives donated payloads. Store must be safe to call more than
// once with the same key; the latest payload wins.
type Sink interface {
	Store(ctx context.Context, key, payload string) error
}

// Donation is one stored donation record.
type Donation struct {
	Key       string
	Payload   string
	DonatedAt time.Time
}

// SQLiteSink persists donations in a local SQLite database.
type SQLiteSink struct {
	db *sql.DB
}

// OpenSQLiteSink opens (or creates) the donation database at path.
// Use ":memory:" for an ephemeral database.
func OpenSQLiteSink(path string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open donation database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("donation database ping failed: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS donations (
		key TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		donated_at TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create donations table: %w", err)
	}

	return &SQLiteSink{db: db}, nil
}

// Close closes the underlying database.
func (s *SQLiteSink) Close() error {
	return s.db.Close()
}

// Store upserts a donation keyed by its session-platform key.
func (s *SQLiteSink) Store(ctx context.Context, key, payload string) error {
	query := `
	INSERT INTO donations (key, payload, donated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, donated_at = excluded.donated_at`
	donatedAt := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.db.ExecContext(ctx, query, key, payload, donatedAt); err != nil {
		return fmt.Errorf("failed to store donation %s: %w", key, err)
	}
	return nil
}

// List returns all stored donations ordered by key.
func (s *SQLiteSink) List(ctx context.Context) ([]Donation, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key, payload, donated_at FROM donations ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var donations []Donation
	for rows.Next() {
		var d Donation
		var donatedAt string
		if err := rows.Scan(&d.Key, &d.Payload, &donatedAt); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, donatedAt); err == nil {
			d.DonatedAt = t
		}
		donations = append(donations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return donations, nil
}
