// Package storage defines the persistence boundary for the stats service.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/kailanyue/crm/internal/services/stats/query"
)

// ErrNotFound indicates a requested user record is missing.
var ErrNotFound = errors.New("user record not found")

// UserRecord stores one user's engagement statistics row.
type UserRecord struct {
	Email                 string
	Name                  string
	CreatedAt             time.Time
	LastVisitedAt         time.Time
	LastWatchedAt         time.Time
	ViewedButNotStarted   []uint32
	StartedButNotFinished []uint32
}

// Store is the persistence boundary consumed by the stats gRPC service.
//
// QueryUsers visits matching rows one at a time so large cohorts stream
// straight into the response without materializing in memory.
type Store interface {
	PutUser(ctx context.Context, user UserRecord) error
	GetUser(ctx context.Context, email string) (UserRecord, error)
	QueryUsers(ctx context.Context, cond query.Condition, visit func(UserRecord) error) error
	Close() error
}
