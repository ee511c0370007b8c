package testutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// WriteExportFixture writes a sample export document to path.
func WriteExportFixture(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create fixture directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write export fixture: %v", err)
	}
}

// CreateDonationDBFixture creates a donation database at dbPath with sample
// donation records.
func CreateDonationDBFixture(t *testing.T, dbPath string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		t.Fatalf("Failed to create fixture directory: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS donations (
		key TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		donated_at TEXT NOT NULL
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}

	donatedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC).Format(time.RFC3339)
	fixtures := []struct {
		key     string
		payload string
	}{
		{"session-1-tracking", `[{ "message": "user entered script" }]`},
		{"session-1-TikTok", `[{"id":"likes","title":{"en":"Likes"},"rows":[]}]`},
	}
	for _, f := range fixtures {
		if _, err := db.Exec(
			"INSERT OR REPLACE INTO donations (key, payload, donated_at) VALUES (?, ?, ?)",
			f.key, f.payload, donatedAt,
		); err != nil {
			t.Fatalf("Failed to insert fixture donation: %v", err)
		}
	}
}
