package jwt

import "time"

// Config holds token inspection settings
type Config struct {
	DefaultTTL   time.Duration    `mapstructure:"ttl"`
	SafetyMargin time.Duration    `mapstructure:"safety_margin"`
	Clock        func() time.Time `mapstructure:"-"`
}

// NewWithConfig creates an inspector from a config struct
func NewWithConfig(config Config) *Inspector {
	return New(
		WithDefaultTTL(config.DefaultTTL),
		WithSafetyMargin(config.SafetyMargin),
		WithClock(config.Clock),
	)
}
