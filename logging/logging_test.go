package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/plus3/blockfall/logging"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, logging.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("bogus"))
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, "warn")

	logger.Info("hidden")
	logger.Warn("shown", "rows", 2)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "rows=2")
}

func TestNop(t *testing.T) {
	logger := logging.Nop()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
	assert.NotNil(t, logging.OrNop(nil))
	assert.Same(t, logger, logging.OrNop(logger))
}
