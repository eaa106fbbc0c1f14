package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		env   string
		level slog.Level
	}{
		{env: envLocal, level: slog.LevelDebug},
		{env: envDev, level: slog.LevelInfo},
		{env: envProd, level: slog.LevelWarn},
		{env: "unknown", level: slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			logger := setupLogger(tt.env)

			assert.True(t, logger.Enabled(context.Background(), tt.level))
			if tt.level > slog.LevelDebug {
				assert.False(t, logger.Enabled(context.Background(), tt.level-1))
			}
		})
	}
}
