// Package sqlite provides SQLite-backed persistence for user statistics.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/kailanyue/crm/internal/platform/storage/sqlitemigrate"
	"github.com/kailanyue/crm/internal/services/stats/query"
	"github.com/kailanyue/crm/internal/services/stats/storage"
	"github.com/kailanyue/crm/internal/services/stats/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for user statistics rows.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a stats SQLite store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutUser upserts one user statistics row keyed by email.
func (s *Store) PutUser(ctx context.Context, user storage.UserRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	user.Email = strings.TrimSpace(user.Email)
	if user.Email == "" {
		return fmt.Errorf("user email is required")
	}

	viewed, err := marshalIDs(user.ViewedButNotStarted)
	if err != nil {
		return fmt.Errorf("encode viewed_but_not_started: %w", err)
	}
	started, err := marshalIDs(user.StartedButNotFinished)
	if err != nil {
		return fmt.Errorf("encode started_but_not_finished: %w", err)
	}

	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO user_stats (email, name, created_at, last_visited_at, last_watched_at, viewed_but_not_started, started_but_not_finished)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(email) DO UPDATE SET
    name = excluded.name,
    created_at = excluded.created_at,
    last_visited_at = excluded.last_visited_at,
    last_watched_at = excluded.last_watched_at,
    viewed_but_not_started = excluded.viewed_but_not_started,
    started_but_not_finished = excluded.started_but_not_finished
`, user.Email, user.Name, toMillis(user.CreatedAt), toMillis(user.LastVisitedAt), toMillis(user.LastWatchedAt), viewed, started)
	if err != nil {
		return fmt.Errorf("put user: %w", err)
	}
	return nil
}

// GetUser loads one user statistics row by email.
func (s *Store) GetUser(ctx context.Context, email string) (storage.UserRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.UserRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.UserRecord{}, fmt.Errorf("storage is not configured")
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return storage.UserRecord{}, fmt.Errorf("user email is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT email, name, created_at, last_visited_at, last_watched_at, viewed_but_not_started, started_but_not_finished
FROM user_stats
WHERE email = ?
`, email)
	record, err := scanUser(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.UserRecord{}, storage.ErrNotFound
		}
		return storage.UserRecord{}, fmt.Errorf("get user: %w", err)
	}
	return record, nil
}

// QueryUsers visits every row matching the compiled condition in email order.
// The visit callback's error stops the walk and is returned unchanged.
func (s *Store) QueryUsers(ctx context.Context, cond query.Condition, visit func(storage.UserRecord) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if visit == nil {
		return fmt.Errorf("visit callback is required")
	}

	sqlQuery := `
SELECT email, name, created_at, last_visited_at, last_watched_at, viewed_but_not_started, started_but_not_finished
FROM user_stats`
	if !query.IsUniversal(cond) {
		sqlQuery += "\nWHERE " + cond.Clause
	}
	sqlQuery += "\nORDER BY email"

	rows, err := s.sqlDB.QueryContext(ctx, sqlQuery, cond.Params...)
	if err != nil {
		return fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		record, err := scanUser(rows.Scan)
		if err != nil {
			return fmt.Errorf("scan user: %w", err)
		}
		if err := visit(record); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate users: %w", err)
	}
	return nil
}

func scanUser(scan func(...any) error) (storage.UserRecord, error) {
	var (
		record    storage.UserRecord
		createdAt int64
		visitedAt int64
		watchedAt int64
		viewed    string
		started   string
	)
	if err := scan(&record.Email, &record.Name, &createdAt, &visitedAt, &watchedAt, &viewed, &started); err != nil {
		return storage.UserRecord{}, err
	}
	record.CreatedAt = fromMillis(createdAt)
	record.LastVisitedAt = fromMillis(visitedAt)
	record.LastWatchedAt = fromMillis(watchedAt)

	var err error
	if record.ViewedButNotStarted, err = unmarshalIDs(viewed); err != nil {
		return storage.UserRecord{}, fmt.Errorf("decode viewed_but_not_started: %w", err)
	}
	if record.StartedButNotFinished, err = unmarshalIDs(started); err != nil {
		return storage.UserRecord{}, fmt.Errorf("decode started_but_not_finished: %w", err)
	}
	return record, nil
}

func marshalIDs(ids []uint32) (string, error) {
	if len(ids) == 0 {
		return "[]", nil
	}
	encoded, err := json.Marshal(ids)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func unmarshalIDs(encoded string) ([]uint32, error) {
	if strings.TrimSpace(encoded) == "" {
		return nil, nil
	}
	var ids []uint32
	if err := json.Unmarshal([]byte(encoded), &ids); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return ids, nil
}
