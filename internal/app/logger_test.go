package app

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	logger := NewLogger(&Config{LogFormat: "pretty", AppEnv: "development"})
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))

	logger = NewLogger(&Config{LogFormat: "json", AppEnv: "production"})
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))

	// A nil config still yields a usable logger.
	require.NotNil(t, NewLogger(nil))
}
