package source

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "modernc.org/sqlite"

	"todoview/internal/logging"
	"todoview/internal/todos"
)

const selectTodos = "SELECT id, title, completed FROM todos ORDER BY rowid"

// SQLite reads the collection from the todos table of an existing database.
// The database is only queried, never written.
type SQLite struct {
	path    string
	timeout time.Duration
}

func NewSQLite(path string, opts Options) *SQLite {
	return &SQLite{path: path, timeout: opts.Timeout}
}

func (s *SQLite) Load(ctx context.Context) ([]todos.Record, error) {
	if _, err := os.Stat(s.path); err != nil {
		return nil, fmt.Errorf("todo database not found at %s: %w", s.path, err)
	}
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer db.Close()
	s.busyTimeout(ctx, db)

	rows, err := db.QueryContext(ctx, selectTodos)
	if err != nil {
		return nil, fmt.Errorf("query todos: %w", err)
	}
	defer rows.Close()

	out := []todos.Record{}
	for rows.Next() {
		var (
			r         todos.Record
			title     sql.NullString
			completed sql.NullBool
		)
		if err := rows.Scan(&r.ID, &title, &completed); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		r.Title = title.String
		r.Completed = completed.Bool
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read todos: %w", err)
	}
	return out, nil
}

// busyTimeout is best effort; the query still runs without it.
func (s *SQLite) busyTimeout(ctx context.Context, db *sql.DB) {
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		logging.Debug("sqlite pragma failed", "path", s.path, "err", err)
	}
}
