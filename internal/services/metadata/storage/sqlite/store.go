// Package sqlite provides SQLite-backed persistence for content metadata.
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
	"github.com/kailanyue/crm/internal/services/metadata/storage"
	"github.com/kailanyue/crm/internal/services/metadata/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for content rows.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a metadata SQLite store at the provided path.
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

// PutContent upserts one content row keyed by id.
func (s *Store) PutContent(ctx context.Context, content storage.ContentRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if content.ID == 0 {
		return fmt.Errorf("content id is required")
	}

	authors, err := marshalAuthors(content.Authors)
	if err != nil {
		return fmt.Errorf("encode authors: %w", err)
	}

	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO contents (id, name, description, authors, url, image, views, likes, published_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    name = excluded.name,
    description = excluded.description,
    authors = excluded.authors,
    url = excluded.url,
    image = excluded.image,
    views = excluded.views,
    likes = excluded.likes,
    published_at = excluded.published_at
`, content.ID, content.Name, content.Description, authors, content.URL, content.Image, content.Views, content.Likes, toMillis(content.PublishedAt))
	if err != nil {
		return fmt.Errorf("put content: %w", err)
	}
	return nil
}

// GetContent loads one content row by id.
func (s *Store) GetContent(ctx context.Context, id uint32) (storage.ContentRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.ContentRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.ContentRecord{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, name, description, authors, url, image, views, likes, published_at
FROM contents
WHERE id = ?
`, id)
	record, err := scanContent(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ContentRecord{}, storage.ErrNotFound
		}
		return storage.ContentRecord{}, fmt.Errorf("get content: %w", err)
	}
	return record, nil
}

// GetContents visits the requested rows that exist, in request order.
// Missing ids are skipped. The visit callback's error stops the walk and is
// returned unchanged.
func (s *Store) GetContents(ctx context.Context, ids []uint32, visit func(storage.ContentRecord) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if visit == nil {
		return fmt.Errorf("visit callback is required")
	}

	for _, id := range ids {
		record, err := s.GetContent(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if err := visit(record); err != nil {
			return err
		}
	}
	return nil
}

func scanContent(scan func(...any) error) (storage.ContentRecord, error) {
	var (
		record      storage.ContentRecord
		authors     string
		publishedAt int64
	)
	if err := scan(&record.ID, &record.Name, &record.Description, &authors, &record.URL, &record.Image, &record.Views, &record.Likes, &publishedAt); err != nil {
		return storage.ContentRecord{}, err
	}
	record.PublishedAt = fromMillis(publishedAt)

	var err error
	if record.Authors, err = unmarshalAuthors(authors); err != nil {
		return storage.ContentRecord{}, fmt.Errorf("decode authors: %w", err)
	}
	return record, nil
}

func marshalAuthors(authors []string) (string, error) {
	if len(authors) == 0 {
		return "[]", nil
	}
	encoded, err := json.Marshal(authors)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func unmarshalAuthors(encoded string) ([]string, error) {
	if strings.TrimSpace(encoded) == "" {
		return nil, nil
	}
	var authors []string
	if err := json.Unmarshal([]byte(encoded), &authors); err != nil {
		return nil, err
	}
	if len(authors) == 0 {
		return nil, nil
	}
	return authors, nil
}
