// Package history persists batch audit records in SQLite.
package history

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/kiransada/duebot/pkg/logger"
)

// Batch is one processed spreadsheet batch.
type Batch struct {
	ID        string
	FileName  string
	Sent      int
	Skipped   int
	Report    string
	CreatedAt time.Time
}

// Store is the interface the bot uses to record and read batch history.
type Store interface {
	SaveBatch(b Batch) error
	RecentBatches(n int) ([]Batch, error)
	Close() error
}

// SQLiteStore implements Store with the pure Go sqlite driver.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at path and applies the
// schema.
func NewSQLite(path string) (Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// WAL for better concurrency on small writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		logger.Log.Warn().Err(err).Msg("could not set WAL mode")
	}

	schema := `CREATE TABLE IF NOT EXISTS batches (
        id TEXT PRIMARY KEY,
        file_name TEXT,
        sent INTEGER,
        skipped INTEGER,
        report TEXT,
        created_at TEXT
    );`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) SaveBatch(b Batch) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO batches(id, file_name, sent, skipped, report, created_at) VALUES(?,?,?,?,?,?)`,
		b.ID, b.FileName, b.Sent, b.Skipped, b.Report, b.CreatedAt.UTC().Format(time.RFC3339))
	return err
}

func (s *SQLiteStore) RecentBatches(n int) ([]Batch, error) {
	rows, err := s.db.Query(`SELECT id, file_name, sent, skipped, report, created_at FROM batches ORDER BY created_at DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Batch
	for rows.Next() {
		var b Batch
		var ts string
		if err := rows.Scan(&b.ID, &b.FileName, &b.Sent, &b.Skipped, &b.Report, &ts); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			b.CreatedAt = t
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
