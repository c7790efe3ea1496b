package observability

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/advent/internal/config"
)

func bufferLogger(t *testing.T, cfg config.LoggingConfig) (*zap.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger, err := newLogger(cfg, zapcore.AddSync(&buf))
	require.NoError(t, err)
	return logger, &buf
}

func TestNewLogger_JSON(t *testing.T) {
	cfg := config.LoggingConfig{Level: "info", Format: "json"}
	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNewLogger_Console(t *testing.T) {
	cfg := config.LoggingConfig{Level: "debug", Format: "console"}
	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestNewLogger_LevelFilters(t *testing.T) {
	cfg := config.LoggingConfig{Level: "warn", Format: "json"}
	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	cfg := config.LoggingConfig{Level: "trace", Format: "json"}
	_, err := NewLogger(cfg)
	assert.Error(t, err)
}

func TestNewLogger_InvalidFormat(t *testing.T) {
	cfg := config.LoggingConfig{Level: "info", Format: "xml"}
	_, err := NewLogger(cfg)
	assert.Error(t, err)
}

func TestNewLogger_JSONEntryShape(t *testing.T) {
	logger, buf := bufferLogger(t, config.LoggingConfig{Level: "info", Format: "json"})
	logger.Info("solved", zap.Int("rounds", 47))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "solved", entry["msg"])
	assert.Equal(t, LoggerName, entry["logger"])
	assert.Equal(t, "info", entry["level"])
	assert.EqualValues(t, 47, entry["rounds"])
	assert.NotContains(t, entry, "caller", "caller is added at debug level only")
}

func TestNewLogger_DebugAddsCaller(t *testing.T) {
	logger, buf := bufferLogger(t, config.LoggingConfig{Level: "debug", Format: "json"})
	logger.Debug("round complete")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Contains(t, entry, "caller")
}

func TestNewLogger_NoSampling(t *testing.T) {
	logger, buf := bufferLogger(t, config.LoggingConfig{Level: "info", Format: "console"})
	for i := 0; i < 250; i++ {
		logger.Info("tuning trial")
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 250)
}

func TestForRun(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ForRun(zap.New(core), 15, 2).Info("solved")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.EqualValues(t, 15, fields["day"])
	assert.EqualValues(t, 2, fields["part"])
}
