package jwt

import "time"

// Option is a function that configures Config
type Option func(*Config)

// WithDefaultTTL sets the cache window used when a token has no readable expiry
func WithDefaultTTL(ttl time.Duration) Option {
	return func(c *Config) {
		if ttl > 0 {
			c.DefaultTTL = ttl
		}
	}
}

// WithSafetyMargin sets the duration subtracted from a token's expiry
func WithSafetyMargin(margin time.Duration) Option {
	return func(c *Config) {
		if margin >= 0 {
			c.SafetyMargin = margin
		}
	}
}

// WithClock overrides the time source
func WithClock(clock func() time.Time) Option {
	return func(c *Config) {
		if clock != nil {
			c.Clock = clock
		}
	}
}
