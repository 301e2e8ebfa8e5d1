// Package redis provides Redis implementation for the token cache
package redis

import (
	"context"
	"fmt"
	"time"

	"hotelhub/pkg/logger"
	"hotelhub/pkg/redis"
	"hotelhub/services/hotel-gateway/domain/repository"
)

// tokenCache implements repository.TokenCache on top of Redis key expiry
type tokenCache struct {
	client redis.RedisClient
	logger logger.LoggerInterface
}

// NewTokenCache creates a Redis backed token cache shared by every gateway instance
func NewTokenCache(client redis.RedisClient, logger logger.LoggerInterface) repository.TokenCache {
	return &tokenCache{
		client: client,
		logger: logger,
	}
}

// Get returns the token stored under key; Redis drops it once expired
func (c *tokenCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, found, err := c.client.Get(ctx, key)
	if err != nil {
		c.logger.ErrorContext(ctx, "Failed to read token", "key", key, "error", err)
		return "", false, fmt.Errorf("failed to read token: %w", err)
	}
	return value, found, nil
}

// Set replaces the token stored under key
func (c *tokenCache) Set(ctx context.Context, key, token string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, token, ttl); err != nil {
		c.logger.ErrorContext(ctx, "Failed to store token", "key", key, "error", err)
		return fmt.Errorf("failed to store token: %w", err)
	}
	c.logger.DebugContext(ctx, "Token stored", "key", key, "ttl", ttl)
	return nil
}
