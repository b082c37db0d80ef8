// Package storage defines the content metadata persistence contract.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound reports a missing content record.
var ErrNotFound = errors.New("content not found")

// ContentRecord is one piece of published content with its metadata.
type ContentRecord struct {
	ID          uint32
	Name        string
	Description string
	Authors     []string
	URL         string
	Image       string
	Views       uint64
	Likes       uint64
	PublishedAt time.Time
}

// Store persists content metadata records.
type Store interface {
	// PutContent upserts a content record keyed by id.
	PutContent(ctx context.Context, content ContentRecord) error
	// GetContent loads one content record, or ErrNotFound.
	GetContent(ctx context.Context, id uint32) (ContentRecord, error)
	// GetContents loads the subset of requested records that exist, in the
	// order the ids were requested. Missing ids are silently skipped.
	GetContents(ctx context.Context, ids []uint32, visit func(ContentRecord) error) error
	// Close releases storage resources.
	Close() error
}
