package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKeyIsNormalized(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, slog.LevelDebug)
	logger.Error("scenario failed", "error", "boom")

	out := buf.String()
	assert.Contains(t, out, "err=boom")
	assert.NotContains(t, out, "error=boom")
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, slog.LevelWarn)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.Equal(t, 1, strings.Count(buf.String(), "msg="))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}

func TestNopDiscards(t *testing.T) {
	assert.NotPanics(t, func() { NewNop().Error("nothing", "error", "x") })
}
