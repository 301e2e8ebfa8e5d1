// Package logger provides the structured logging port handed to every gateway component.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// LoggerInterface defines the interface for logging operations
type LoggerInterface interface {
	Log(ctx context.Context, level slog.Level, msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Debug(msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	DebugContext(ctx context.Context, msg string, args ...any)
	With(args ...any) LoggerInterface
}

// Logger wraps slog.Logger
type Logger struct {
	*slog.Logger
}

// Config holds logger configuration
type Config struct {
	Level     slog.Level
	Output    io.Writer
	Format    string // "json" or "text"
	AddSource bool
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Level:  slog.LevelInfo,
		Output: os.Stdout,
		Format: "json",
	}
}

// New creates a new logger instance with the given configuration
func New(config Config) LoggerInterface {
	opts := &slog.HandlerOptions{
		Level:     config.Level,
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	switch config.Format {
	case "text":
		handler = slog.NewTextHandler(config.Output, opts)
	default:
		handler = slog.NewJSONHandler(config.Output, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewWithOptions creates a new logger with options applied on top of DefaultConfig
func NewWithOptions(opts ...Option) LoggerInterface {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return New(config)
}

// NewJSON creates a new JSON logger
func NewJSON(output io.Writer, level slog.Level) LoggerInterface {
	return NewWithOptions(WithOutput(output), WithLevel(level), WithJSONFormat())
}

// NewText creates a new text logger
func NewText(output io.Writer, level slog.Level) LoggerInterface {
	return NewWithOptions(WithOutput(output), WithLevel(level), WithTextFormat())
}

// ParseLevel maps a config string onto a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// With returns a logger that always carries the given attributes
func (l *Logger) With(args ...any) LoggerInterface {
	return &Logger{Logger: l.Logger.With(args...)}
}

// WithComponent scopes a logger to one gateway component.
func WithComponent(l LoggerInterface, component string) LoggerInterface {
	return l.With("component", component)
}

// WithSupplier scopes a logger to one upstream supplier.
func WithSupplier(l LoggerInterface, supplier string) LoggerInterface {
	return l.With("supplier", supplier)
}

// InfoContext logs at the info level with context
func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.Logger.Log(ctx, slog.LevelInfo, msg, args...)
}

// ErrorContext logs at the error level with context
func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.Logger.Log(ctx, slog.LevelError, msg, args...)
}

// WarnContext logs at the warn level with context
func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.Logger.Log(ctx, slog.LevelWarn, msg, args...)
}

// DebugContext logs at the debug level with context
func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.Logger.Log(ctx, slog.LevelDebug, msg, args...)
}

// NoOpLogger returns a logger that does nothing - useful for testing
func NoOpLogger() LoggerInterface {
	return &Logger{Logger: slog.New(noOpHandler{})}
}

type noOpHandler struct{}

func (h noOpHandler) Handle(_ context.Context, _ slog.Record) error { return nil }

func (h noOpHandler) Enabled(_ context.Context, _ slog.Level) bool { return false }

func (h noOpHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

func (h noOpHandler) WithGroup(_ string) slog.Handler { return h }
