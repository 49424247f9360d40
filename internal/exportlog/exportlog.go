// Package exportlog records every export artifact in a small SQLite ledger
// so repeated timestamped exports stay auditable after the working set is
// cleared.
package exportlog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"disclot/internal/config"
)

// Entry is one recorded export artifact.
type Entry struct {
	ID        string
	FileName  string
	Path      string
	ItemCount int
	CreatedAt time.Time
}

// Ledger persists export history backed by SQLite.
type Ledger struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the export ledger database.
func Open(cfg *config.Config) (*Ledger, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.ExportLedgerPath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	ledger := &Ledger{db: db, path: dbPath}
	if err := ledger.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return ledger, nil
}

func (l *Ledger) initSchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS exports (
	id TEXT PRIMARY KEY,
	file_name TEXT NOT NULL,
	path TEXT NOT NULL,
	item_count INTEGER NOT NULL,
	created_at TEXT NOT NULL
);`
	if _, err := l.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init export ledger schema: %w", err)
	}
	return nil
}

// Record appends one export to the ledger and returns the stored entry.
func (l *Ledger) Record(ctx context.Context, fileName, path string, itemCount int) (Entry, error) {
	entry := Entry{
		ID:        uuid.NewString(),
		FileName:  fileName,
		Path:      path,
		ItemCount: itemCount,
		CreatedAt: time.Now().UTC(),
	}
	const insert = `INSERT INTO exports (id, file_name, path, item_count, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := l.db.ExecContext(ctx, insert,
		entry.ID, entry.FileName, entry.Path, entry.ItemCount, entry.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return Entry{}, fmt.Errorf("record export: %w", err)
	}
	return entry, nil
}

// List returns recorded exports, newest first.
func (l *Ledger) List(ctx context.Context) ([]Entry, error) {
	const query = `SELECT id, file_name, path, item_count, created_at FROM exports ORDER BY created_at DESC, id`
	rows, err := l.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list exports: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry   Entry
			created string
		)
		if err := rows.Scan(&entry.ID, &entry.FileName, &entry.Path, &entry.ItemCount, &created); err != nil {
			return nil, fmt.Errorf("scan export row: %w", err)
		}
		at, err := time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse export timestamp %q: %w", created, err)
		}
		entry.CreatedAt = at
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exports: %w", err)
	}
	return entries, nil
}

// Path returns the ledger database location.
func (l *Ledger) Path() string {
	return l.path
}

// Close closes the underlying database connection.
func (l *Ledger) Close() error {
	if l == nil || l.db == nil {
		return nil
	}
	return l.db.Close()
}
