package database

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when no value exists under the key.
var ErrNotFound = errors.New("key not found")

// Store is the session-scoped key-value storage the repositories write
// through: string keys, JSON-serialized string values. Callers treat any
// read error the same as an absent key.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
