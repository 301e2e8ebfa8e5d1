// Package jwt inspects bearer tokens issued by upstream parties.
//
// Supplier tokens are opaque to the gateway. When one happens to be a JWT its
// registered "exp" claim is read without signature verification so that
// caches never hold a token past its real lifetime.
package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// DefaultTTL is the cache window for tokens without a readable expiry
	DefaultTTL = 23 * time.Hour
	// DefaultSafetyMargin is subtracted from a readable expiry
	DefaultSafetyMargin = 5 * time.Minute
)

var (
	// ErrNotJWT is returned when a token cannot be parsed as a JWT
	ErrNotJWT = errors.New("token is not a jwt")
	// ErrNoExpiry is returned when a JWT carries no exp claim
	ErrNoExpiry = errors.New("token has no expiry")
)

// TokenInspector defines the interface for bearer token inspection
type TokenInspector interface {
	ExpiresAt(token string) (time.Time, error)
	TTL(token string) time.Duration
}

// Inspector reads expiry information from bearer tokens
type Inspector struct {
	config Config
	parser *jwt.Parser
	now    func() time.Time
}

// New creates a new inspector with the provided options
func New(opts ...Option) *Inspector {
	config := Config{
		DefaultTTL:   DefaultTTL,
		SafetyMargin: DefaultSafetyMargin,
	}
	for _, opt := range opts {
		opt(&config)
	}

	now := config.Clock
	if now == nil {
		now = time.Now
	}

	return &Inspector{
		config: config,
		parser: jwt.NewParser(),
		now:    now,
	}
}

// ExpiresAt returns the exp claim of a JWT without verifying its signature
func (i *Inspector) ExpiresAt(token string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, ErrNotJWT
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, ErrNoExpiry
	}
	return claims.ExpiresAt.Time, nil
}

// TTL returns how long a token may be cached.
// The configured default applies unless the token expires sooner; an already
// expired token yields zero.
func (i *Inspector) TTL(token string) time.Duration {
	ttl := i.config.DefaultTTL

	exp, err := i.ExpiresAt(token)
	if err != nil {
		return ttl
	}

	remaining := exp.Sub(i.now()) - i.config.SafetyMargin
	if remaining <= 0 {
		return 0
	}
	if remaining < ttl {
		return remaining
	}
	return ttl
}
