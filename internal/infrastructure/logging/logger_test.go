package logging

import (
	"testing"

	"rental_backend/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_Level(t *testing.T) {
	logger, err := New(config.LogConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))
}

func TestNew_ConsoleDefaultsToDebug(t *testing.T) {
	logger, err := New(config.LogConfig{Format: "console"})
	require.NoError(t, err)

	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}
