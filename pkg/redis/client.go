package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient defines the interface for the Redis operations the gateway relies on
type RedisClient interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	// Get returns found=false instead of an error when the key does not exist
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Del(ctx context.Context, keys ...string) error
	TTL(ctx context.Context, key string) (time.Duration, error)
	Ping(ctx context.Context) error
	Close() error
	GetClient() redis.UniversalClient
	Addrs() []string
	DB() int
}

// Option is a function that configures a Client
type Option func(*Client)

// Client represents a Redis client wrapper
type Client struct {
	opts   *redis.UniversalOptions
	client redis.UniversalClient
}

// New creates a new Redis client with the provided options and verifies connectivity
func New(opts ...Option) (RedisClient, error) {
	client := &Client{
		opts: &redis.UniversalOptions{
			Addrs:        []string{"localhost:6379"},
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			PoolSize:     10,
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	client.client = redis.NewUniversalClient(client.opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx); err != nil {
		_ = client.client.Close()
		return nil, err
	}

	return client, nil
}

// NewWithConfig creates a new Redis client from a config struct
func NewWithConfig(config Config) (RedisClient, error) {
	return New(
		WithAddrs(config.Addrs),
		WithUsername(config.Username),
		WithPassword(config.Password),
		WithDB(config.DB),
		WithDialTimeout(config.DialTimeout),
		WithReadTimeout(config.ReadTimeout),
		WithWriteTimeout(config.WriteTimeout),
		WithPoolSize(config.PoolSize),
	)
}

// NewFromUniversal wraps an existing go-redis client
func NewFromUniversal(client redis.UniversalClient) RedisClient {
	return &Client{opts: &redis.UniversalOptions{}, client: client}
}

// Set sets a key-value pair with expiration
func (r *Client) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

// Get gets a value by key
func (r *Client) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Del deletes keys
func (r *Client) Del(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...).Err()
}

// TTL returns time to live for a key
func (r *Client) TTL(ctx context.Context, key string) (time.Duration, error) {
	return r.client.TTL(ctx, key).Result()
}

// Ping checks the connection
func (r *Client) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis client
func (r *Client) Close() error {
	return r.client.Close()
}

// GetClient returns the underlying Redis client for advanced operations
func (r *Client) GetClient() redis.UniversalClient {
	return r.client
}

// Addrs returns the Redis server addresses
func (r *Client) Addrs() []string {
	return r.opts.Addrs
}

// DB returns the Redis database number
func (r *Client) DB() int {
	return r.opts.DB
}
