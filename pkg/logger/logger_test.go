package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOptions(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewWithOptions(WithLevel(slog.LevelDebug), WithOutput(buf), WithTextFormat())
	require.NotNil(t, l)

	l.Debug("debug message", "key", "value")
	assert.Contains(t, buf.String(), "debug message")
	assert.Contains(t, buf.String(), "key=value")
}

func TestNewJSON_LevelFilter(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewJSON(buf, slog.LevelWarn)

	l.Info("dropped")
	l.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"msg":"kept"`)
}

func TestLogger_ContextMethods(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewJSON(buf, slog.LevelDebug)
	ctx := context.Background()

	l.InfoContext(ctx, "info context message")
	l.ErrorContext(ctx, "error context message")
	l.WarnContext(ctx, "warn context message")
	l.DebugContext(ctx, "debug context message")

	output := buf.String()
	assert.Contains(t, output, "info context message")
	assert.Contains(t, output, "error context message")
	assert.Contains(t, output, "warn context message")
	assert.Contains(t, output, "debug context message")
}

func TestWithComponentAndSupplier(t *testing.T) {
	buf := &bytes.Buffer{}
	l := WithSupplier(WithComponent(NewJSON(buf, slog.LevelInfo), "executor"), "acme")

	l.Info("call finished")

	assert.Contains(t, buf.String(), `"component":"executor"`)
	assert.Contains(t, buf.String(), `"supplier":"acme"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelError, ParseLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestNoOpLogger(t *testing.T) {
	l := NoOpLogger()
	require.NotNil(t, l)

	l.Info("test")
	l.With("k", "v").Error("test")
}
