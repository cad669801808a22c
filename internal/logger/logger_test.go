package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	t.Run("development environment", func(t *testing.T) {
		logger := New("debug", "development")
		assert.NotNil(t, logger)

		logger.Debug("test debug")
		logger.Info("test info")
		logger.Warn("test warn")
		logger.Error("test error")
	})

	t.Run("production environment", func(t *testing.T) {
		logger := New("info", "production")
		assert.NotNil(t, logger)

		logger.Info("test info")
		logger.Warn("test warn")
	})

	t.Run("invalid log level defaults to info", func(t *testing.T) {
		logger := New("invalid", "development")
		assert.NotNil(t, logger)

		logger.Info("test info")
	})
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("debug", &buf)

	logger.Info("test message")

	assert.Contains(t, buf.String(), "test message")
	assert.Contains(t, buf.String(), "level")
}

func TestNewWithWriter_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("info", &buf)

	logger.Info("test message")

	output := buf.String()
	assert.True(t, strings.Contains(output, "\"level\""), "Output should contain JSON field 'level'")
	assert.True(t, strings.Contains(output, "\"msg\""), "Output should contain JSON field 'msg'")
}

func TestLoggerMethods(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("debug", &buf)

	logger.Debug("debug message")
	logger.Debugf("debug format: %s", "test")
	logger.Info("info message")
	logger.Infof("info format: %s", "test")
	logger.Warn("warn message")
	logger.Warnf("warn format: %s", "test")
	logger.Error("error message")
	logger.Errorf("error format: %s", "test")

	output := buf.String()
	assert.Contains(t, output, "debug format: test")
	assert.Contains(t, output, "info format: test")
}

func TestLogger_WithField_ReturnsNewLogger(t *testing.T) {
	logger := New("info", "test")

	loggerWithField := logger.WithField("component", "test_component")

	assert.NotNil(t, loggerWithField)
	assert.NotEqual(t, logger, loggerWithField)
}

func TestLogger_WithFields_Chaining(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("info", &buf)

	fields := map[string]interface{}{
		"field1": "value1",
		"field2": 123,
	}

	chained := logger.WithFields(fields).WithField("field3", true)
	assert.NotNil(t, chained)

	chained.Info("test message with fields")

	output := buf.String()
	assert.Contains(t, output, "field1")
	assert.Contains(t, output, "field3")
}

func TestLogrusLogger_Interface(t *testing.T) {
	var _ Logger = (*logrusLogger)(nil)
}
