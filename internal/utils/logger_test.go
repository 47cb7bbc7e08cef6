package utils

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spark/internal/config"
)

func TestLoggerJSONFields(t *testing.T) {
	var buf bytes.Buffer
	ConfigureLogging(config.LogConfig{Level: "debug", Format: "json"}, &buf)
	defer ConfigureLogging(config.Default().Log, nil)

	logger := NewLogger("scanner")
	require.True(t, logger.DebugEnabled())
	logger.Debug("端口 %d 关闭", 22)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "scanner", entry["module"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "端口 22 关闭", entry["message"])
}

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	ConfigureLogging(config.LogConfig{Level: "warn", Format: "text"}, &buf)
	defer ConfigureLogging(config.Default().Log, nil)

	logger := NewLogger("main")
	logger.Info("不应输出")
	assert.Zero(t, buf.Len())
	assert.False(t, logger.DebugEnabled())

	logger.Warn("应当输出")
	assert.Contains(t, buf.String(), "应当输出")
	assert.Contains(t, buf.String(), "module=main")
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	ConfigureLogging(config.LogConfig{Level: "loud", Format: "text"}, &buf)
	defer ConfigureLogging(config.Default().Log, nil)

	logger := NewLogger("main")
	logger.Info("info 可见")
	assert.Contains(t, buf.String(), "info 可见")
}
