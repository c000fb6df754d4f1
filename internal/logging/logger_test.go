package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBufferLogger(level LogLevel) (*LintLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{
		Level:  level,
		Format: "text",
		Output: &buf,
	})
	return logger, &buf
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn)
	ctx := context.Background()

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	assert.Empty(t, buf.String())

	logger.Warn(ctx, nil, "warn message")
	assert.Contains(t, buf.String(), "warn message")
}

func TestLogger_ErrorField(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	logger.Error(context.Background(), errors.New("boom"), "load failed")

	out := buf.String()
	assert.Contains(t, out, "load failed")
	assert.Contains(t, out, "boom")
}

func TestLogger_WithComponent(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	logger.WithComponent("watcher").Info(context.Background(), "started")

	assert.Contains(t, buf.String(), "component=watcher")
}

func TestLogger_WithFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	logger.With("locale", "de").Info(context.Background(), "loaded", "keys", 12)

	out := buf.String()
	assert.Contains(t, out, "locale=de")
	assert.Contains(t, out, "keys=12")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel("warn"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("info"))
	assert.Equal(t, LevelInfo, ParseLevel(strings.ToUpper("bogus")))
}
