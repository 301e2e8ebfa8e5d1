// Package repository defines the interfaces for data access and upstream collaborators
package repository

import (
	"context"
	"time"
)

// TokenCache stores supplier bearer tokens. Expired entries read as absent;
// concurrent writes to one key are last-write-wins.
type TokenCache interface {
	// Get returns the cached token and whether it was present and unexpired
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores a token for ttl, replacing any previous value
	Set(ctx context.Context, key, token string, ttl time.Duration) error
}
