package redis

import (
	"time"
)

// WithAddrs sets the Redis server addresses
func WithAddrs(addrs []string) Option {
	return func(c *Client) {
		if len(addrs) > 0 {
			c.opts.Addrs = addrs
		}
	}
}

// WithUsername sets the Redis username
func WithUsername(username string) Option {
	return func(c *Client) {
		c.opts.Username = username
	}
}

// WithPassword sets the Redis password
func WithPassword(password string) Option {
	return func(c *Client) {
		c.opts.Password = password
	}
}

// WithDB sets the Redis database number
func WithDB(db int) Option {
	return func(c *Client) {
		c.opts.DB = db
	}
}

// WithDialTimeout sets the dial timeout
func WithDialTimeout(dialTimeout time.Duration) Option {
	return func(c *Client) {
		if dialTimeout > 0 {
			c.opts.DialTimeout = dialTimeout
		}
	}
}

// WithReadTimeout sets the read timeout
func WithReadTimeout(readTimeout time.Duration) Option {
	return func(c *Client) {
		if readTimeout > 0 {
			c.opts.ReadTimeout = readTimeout
		}
	}
}

// WithWriteTimeout sets the write timeout
func WithWriteTimeout(writeTimeout time.Duration) Option {
	return func(c *Client) {
		if writeTimeout > 0 {
			c.opts.WriteTimeout = writeTimeout
		}
	}
}

// WithPoolSize sets the connection pool size
func WithPoolSize(poolSize int) Option {
	return func(c *Client) {
		if poolSize > 0 {
			c.opts.PoolSize = poolSize
		}
	}
}
