package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kataras/golog"
	"github.com/stretchr/testify/assert"
)

func TestNewGologLogger(t *testing.T) {
	glogger := golog.New()

	logger := NewGologLogger(glogger)

	assert.NotNil(t, logger)
	assert.Equal(t, LogLevelInfo, logger.GetLevel())
}

func TestGologLogger_LevelControl(t *testing.T) {
	glogger := golog.New()
	logger := NewGologLogger(glogger)

	logger.SetLevel(LogLevelDebug)
	assert.Equal(t, LogLevelDebug, logger.GetLevel())

	logger.SetLevel(LogLevelError)
	assert.Equal(t, LogLevelError, logger.GetLevel())

	logger.SetLevel(LogLevelNone)
	assert.Equal(t, LogLevelNone, logger.GetLevel())
}

func TestGologLogger_Logging(t *testing.T) {
	glogger := golog.New()
	logger := NewGologLogger(glogger)

	logger.SetLevel(LogLevelDebug)

	// These should not panic, with or without format arguments
	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning message")
	logger.Error("error message")

	logger.Debug("debug: %s", "test")
	logger.Info("info: %d", 42)
	logger.Warn("warn: %v", map[string]string{"key": "value"})
	logger.Error("error: %f", 3.14)
}

func TestGologLogger_LevelFiltering(t *testing.T) {
	glogger := golog.New()
	logger := NewGologLogger(glogger)

	logger.SetLevel(LogLevelError)
	assert.Equal(t, LogLevelError, logger.GetLevel())

	// Filtered by the wrapper before reaching golog
	logger.Debug("filtered")
	logger.Info("filtered")
	logger.Warn("filtered")
	logger.Error("logged")
}

func TestGologLogger_Implementation(t *testing.T) {
	var _ Logger = (*GologLogger)(nil)

	glogger := golog.New()
	logger := NewGologLogger(glogger)

	assert.NotNil(t, logger)
}

func TestDefaultLogger_Filtering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewCustomLogger(&buf, LogLevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown warn")
	logger.Error("shown error")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown warn")
	assert.Contains(t, out, "shown error")
	assert.True(t, strings.Contains(out, "[nodegraph]"))
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", LogLevelDebug.String())
	assert.Equal(t, "INFO", LogLevelInfo.String())
	assert.Equal(t, "WARN", LogLevelWarn.String())
	assert.Equal(t, "ERROR", LogLevelError.String())
	assert.Equal(t, "NONE", LogLevelNone.String())
}
