package logutil

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
		{"verbose", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelFromString(tt.in))
		})
	}
}

func TestLevel_Precedence(t *testing.T) {
	assert.Equal(t, LevelSilent, Level("debug", "debug", true, true))
	assert.Equal(t, slog.LevelDebug, Level("error", "error", false, true))
	assert.Equal(t, slog.LevelInfo, Level("error", "info", false, false))
	assert.Equal(t, slog.LevelError, Level("error", "", false, false))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("shown", "path", "A.cs")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown path=A.cs")

	NewDiscardLogger().Error("nothing")
}
