// Package logger_test contains tests for the logger package
package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/rsvp-tracker/internal/config"
	"github.com/phrazzld/rsvp-tracker/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseLogEntries decodes newline-delimited JSON log output.
func parseLogEntries(t *testing.T, out string) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "invalid JSON log line: %s", line)
		entries = append(entries, entry)
	}
	return entries
}

func TestSetup(t *testing.T) {
	var buf bytes.Buffer

	l, err := logger.Setup(config.LoggingConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Debug("hidden")
	l.Info("visible", "key", "value")

	entries := parseLogEntries(t, buf.String())
	require.Len(t, entries, 1)
	assert.Equal(t, "visible", entries[0]["msg"])
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "value", entries[0]["key"])
}

func TestSetupUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.Setup(config.LoggingConfig{Level: "info", Format: "xml"}, &buf)
	assert.Error(t, err)
	assert.Nil(t, l)
}

// TestInvalidLogLevelParsing tests that an invalid log level falls back to
// info and emits a warning.
func TestInvalidLogLevelParsing(t *testing.T) {
	var buf bytes.Buffer

	l, err := logger.Setup(config.LoggingConfig{Level: "invalid_level", Format: "json"}, &buf)
	require.NoError(t, err)

	entries := parseLogEntries(t, buf.String())
	require.Len(t, entries, 1)
	assert.Equal(t, "WARN", entries[0]["level"])
	assert.Equal(t, "invalid_level", entries[0]["configured_level"])

	buf.Reset()
	l.Debug("hidden")
	l.Info("shown")
	entries = parseLogEntries(t, buf.String())
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["msg"])
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"LOG":   logger.LevelLog,
		"Info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for name, want := range tests {
		got, ok := logger.ParseLevel(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	got, ok := logger.ParseLevel("fatal")
	assert.False(t, ok)
	assert.Equal(t, slog.LevelInfo, got)
}

func TestSlogSeverities(t *testing.T) {
	var buf bytes.Buffer
	base, err := logger.Setup(config.LoggingConfig{Level: "debug", Format: "json"}, &buf)
	require.NoError(t, err)

	l := logger.New(base).With("component", "test")
	l.Info("info message")
	l.Log("log message")
	l.Warn("warn message")
	l.Error("error message", errors.New("boom"))
	l.Error("error without cause", nil)

	entries := parseLogEntries(t, buf.String())
	require.Len(t, entries, 5)

	wantLevels := []string{"INFO", "LOG", "WARN", "ERROR", "ERROR"}
	for i, entry := range entries {
		assert.Equal(t, wantLevels[i], entry["level"], "entry %d", i)
		assert.Equal(t, "test", entry["component"], "entry %d", i)
	}
	assert.Equal(t, "boom", entries[3]["error"])
	_, hasError := entries[4]["error"]
	assert.False(t, hasError, "nil cause should not add an error attribute")
}

func TestLogLevelFiltersLogMessages(t *testing.T) {
	var buf bytes.Buffer
	base, err := logger.Setup(config.LoggingConfig{Level: "info", Format: "text"}, &buf)
	require.NoError(t, err)

	l := logger.New(base)
	l.Log("below info")
	assert.Empty(t, buf.String())

	l.Info("at info")
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "at info")
}

func TestNop(t *testing.T) {
	l := logger.Nop()
	assert.NotPanics(t, func() {
		l.Info("x")
		l.Log("x")
		l.Warn("x")
		l.Error("x", errors.New("y"))
	})
}
