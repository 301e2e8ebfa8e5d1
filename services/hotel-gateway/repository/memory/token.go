// Package memory provides in-process repository implementations
package memory

import (
	"context"
	"sync"
	"time"

	"hotelhub/services/hotel-gateway/domain/repository"
)

type tokenEntry struct {
	value     string
	expiresAt time.Time
}

// tokenCache implements repository.TokenCache with lazy expiry on read
type tokenCache struct {
	mu      sync.RWMutex
	entries map[string]tokenEntry
	now     func() time.Time
}

// NewTokenCache creates an in-memory token cache. A nil clock means time.Now.
func NewTokenCache(now func() time.Time) repository.TokenCache {
	if now == nil {
		now = time.Now
	}
	return &tokenCache{
		entries: make(map[string]tokenEntry),
		now:     now,
	}
}

// Get returns the token stored under key unless it has expired
func (c *tokenCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || !c.now().Before(entry.expiresAt) {
		return "", false, nil
	}
	return entry.value, true, nil
}

// Set replaces the token stored under key
func (c *tokenCache) Set(_ context.Context, key, token string, ttl time.Duration) error {
	c.mu.Lock()
	c.entries[key] = tokenEntry{value: token, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
	return nil
}
