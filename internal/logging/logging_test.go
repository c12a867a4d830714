package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer, level Level) *Logger {
	l := New(Config{Level: level, Output: buf, Prefix: "test"})
	l.now = func() time.Time {
		return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	}
	return l
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, tt.level.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		ok       bool
	}{
		{"debug", LevelDebug, true},
		{"DEBUG", LevelDebug, true},
		{"info", LevelInfo, true},
		{"warn", LevelWarn, true},
		{"WARNING", LevelWarn, true},
		{"Error", LevelError, true},
		{"unknown", LevelInfo, false},
		{"", LevelInfo, false},
	}

	for _, tt := range tests {
		level, ok := ParseLevel(tt.input)
		require.Equal(t, tt.expected, level, tt.input)
		require.Equal(t, tt.ok, ok, tt.input)
	}
}

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelDebug)

	l.WithComponent("driver").WithField("chunk", 3).Info("appended", "units", 128, "path", "in-place")

	require.Equal(t,
		"2024-05-01T12:30:00.000 [INFO] test: appended chunk=3 component=driver units=128 path=in-place\n",
		buf.String())
}

func TestLoggerOddKeyValues(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelDebug)

	l.Warn("odd", "dangling")
	require.True(t, strings.HasSuffix(buf.String(), "odd dangling=<missing>\n"), buf.String())
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelWarn)
	child := l.WithField("k", "v")

	l.Debug("hidden")
	l.Info("hidden")
	child.Info("hidden")
	require.Empty(t, buf.String())

	l.Error("shown")
	require.Contains(t, buf.String(), "[ERROR] test: shown")

	// Levels are shared with derived loggers.
	buf.Reset()
	l.SetLevel(LevelDebug)
	require.True(t, child.Enabled(LevelDebug))
	child.Debug("now shown")
	require.Contains(t, buf.String(), "[DEBUG] test: now shown k=v")
}

func TestNop(t *testing.T) {
	l := Nop()
	require.False(t, l.Enabled(LevelError))
	l.Error("discarded")
	l.WithField("a", 1).Error("discarded")
}

func TestWithFieldsDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := newTestLogger(&buf, LevelInfo)
	_ = parent.WithFields(map[string]any{"a": 1, "b": 2})

	parent.Info("plain")
	require.Equal(t, "2024-05-01T12:30:00.000 [INFO] test: plain\n", buf.String())
}
