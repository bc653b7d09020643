package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sandeepkv93/plantd/internal/model"
)

const (
	sqliteTimeLayout = time.RFC3339Nano
	// MemoryPath keeps the journal for the lifetime of the process only.
	MemoryPath = ":memory:"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("journal: nil db")
	}
	return &SQLiteRepository{db: db}, nil
}

// OpenSQLite opens path (":memory:" when empty) and applies the migrations.
func OpenSQLite(path string) (*SQLiteRepository, error) {
	if path == "" {
		path = MemoryPath
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) Append(ctx context.Context, in Entry) (Entry, error) {
	if !in.Kind.IsValid() {
		return Entry{}, fmt.Errorf("%w: %q", ErrInvalidKind, in.Kind)
	}
	if in.At.IsZero() {
		in.At = time.Now()
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO events (kind, task_id, text, plant_id, at)
		VALUES (?, ?, ?, ?, ?)`,
		string(in.Kind), in.TaskID, in.Text, in.PlantID, formatTime(in.At),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("append event: %w", err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return Entry{}, fmt.Errorf("append event: %w", err)
	}
	in.Seq = seq
	in.At = in.At.UTC()
	return in, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, seq int64) (Entry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT seq, kind, task_id, text, plant_id, at
		FROM events WHERE seq = ?`, seq)
	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, err
	}
	return entry, nil
}

func (r *SQLiteRepository) List(ctx context.Context, filter ListFilter) ([]Entry, error) {
	query := `SELECT seq, kind, task_id, text, plant_id, at FROM events WHERE 1 = 1`
	args := make([]any, 0, 4)
	if filter.Kind != "" {
		query += ` AND kind = ?`
		args = append(args, string(filter.Kind))
	}
	if filter.TaskID != "" {
		query += ` AND task_id = ?`
		args = append(args, filter.TaskID)
	}
	query += ` ORDER BY seq DESC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Entry, 0)
	for rows.Next() {
		entry, scanErr := scanEntry(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

// Count returns the number of entries of kind, or of all kinds when kind is empty.
func (r *SQLiteRepository) Count(ctx context.Context, kind model.EventKind) (int, error) {
	query := `SELECT COUNT(*) FROM events`
	args := make([]any, 0, 1)
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, string(kind))
	}
	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM events`); err != nil {
		return fmt.Errorf("clear events: %w", err)
	}
	return nil
}

func formatTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func applyPagination(args *[]any, limit, offset int) string {
	sql := ""
	if limit > 0 {
		sql += " LIMIT ?"
		*args = append(*args, limit)
	} else if offset > 0 {
		sql += " LIMIT -1"
	}
	if offset > 0 {
		sql += " OFFSET ?"
		*args = append(*args, offset)
	}
	return sql
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (Entry, error) {
	var out Entry
	var kind, at string
	if err := s.Scan(&out.Seq, &kind, &out.TaskID, &out.Text, &out.PlantID, &at); err != nil {
		return Entry{}, err
	}
	parsed, err := time.Parse(sqliteTimeLayout, at)
	if err != nil {
		return Entry{}, fmt.Errorf("parse event time: %w", err)
	}
	out.Kind = model.EventKind(kind)
	out.At = parsed
	return out, nil
}
