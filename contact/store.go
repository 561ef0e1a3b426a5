package contact

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Writer is the persistence the endpoint needs
type Writer interface {
	EnsureTable(ctx context.Context) error
	Insert(ctx context.Context, s Submission) (Record, error)
}

// Store adds read access for administration
type Store interface {
	Writer
	List(ctx context.Context, limit int) ([]Record, error)
	Count(ctx context.Context) (int, error)
	Close() error
}

const createTableSQL = `
CREATE TABLE IF NOT EXISTS contact_submissions (
	id TEXT PRIMARY KEY,
	first_name TEXT,
	last_name TEXT,
	email TEXT,
	phone TEXT,
	age_group TEXT,
	consultation_type TEXT,
	preferred_date TEXT,
	time_slot TEXT,
	meeting_mode TEXT,
	message TEXT,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_contact_created ON contact_submissions(created_at);
`

// timeLayout is fixed width so created_at text sorts chronologically
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

var insertSQL, selectSQL string

func init() {
	cols := make([]string, 0, len(fields))
	for _, f := range fields {
		cols = append(cols, f.column)
	}
	columnList := strings.Join(cols, ", ")
	placeholder := strings.TrimSuffix(strings.Repeat("?, ", len(fields)+2), ", ")
	insertSQL = fmt.Sprintf("INSERT INTO contact_submissions (id, %s, created_at) VALUES (%s)", columnList, placeholder)
	selectSQL = fmt.Sprintf("SELECT id, %s, created_at FROM contact_submissions ORDER BY created_at DESC, rowid DESC LIMIT ?", columnList)
}

// SQLiteStore keeps submissions in a SQLite file
type SQLiteStore struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// OpenSQLite opens or creates the database at path; ":memory:" is accepted
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection serializes writers and keeps a memory database alive
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}

	return &SQLiteStore{db: db, path: path, now: time.Now}, nil
}

// EnsureTable creates the submissions table if missing
func (s *SQLiteStore) EnsureTable(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

// Insert appends one row with a fresh id and timestamp
func (s *SQLiteStore) Insert(ctx context.Context, sub Submission) (Record, error) {
	rec := Record{
		ID:         uuid.NewString(),
		CreatedAt:  s.now().UTC(),
		Submission: sub,
	}

	args := make([]any, 0, len(fields)+2)
	args = append(args, rec.ID)
	for _, f := range fields {
		args = append(args, *f.slot(&sub))
	}
	args = append(args, rec.CreatedAt.Format(timeLayout))

	if _, err := s.db.ExecContext(ctx, insertSQL, args...); err != nil {
		return Record{}, fmt.Errorf("failed to insert submission: %w", err)
	}
	return rec, nil
}

// List returns the newest rows first; limit <= 0 returns all
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, selectSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var created string
		dest := make([]any, 0, len(fields)+2)
		dest = append(dest, &rec.ID)
		for _, f := range fields {
			dest = append(dest, f.slot(&rec.Submission))
		}
		dest = append(dest, &created)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		if rec.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("bad created_at %q: %w", created, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Count returns the number of stored rows
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM contact_submissions").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count submissions: %w", err)
	}
	return n, nil
}

func (s *SQLiteStore) Path() string { return s.path }

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
