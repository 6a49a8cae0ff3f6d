package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromEnv(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}
	for value, want := range cases {
		t.Setenv("ATTESTRY_LOG_LEVEL", value)
		assert.Equal(t, want, levelFromEnv(), "ATTESTRY_LOG_LEVEL=%q", value)
	}
}

func TestNew_RespectsEnvThreshold(t *testing.T) {
	t.Setenv("ATTESTRY_LOG_LEVEL", "error")
	log := New()
	assert.False(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, log.Enabled(context.Background(), slog.LevelError))
}
