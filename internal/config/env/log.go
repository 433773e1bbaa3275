package env

import (
	"fmt"
	"log/slog"
	"os"

	"spinwin_backend/internal/config"
)

const logLevelEnvName = "LOG_LEVEL"

type logConfig struct {
	level slog.Level
}

// NewLogConfig уровень по умолчанию - info
func NewLogConfig() (config.LogConfig, error) {
	cfg := &logConfig{level: slog.LevelInfo}

	raw := os.Getenv(logLevelEnvName)
	if len(raw) == 0 {
		return cfg, nil
	}

	if err := cfg.level.UnmarshalText([]byte(raw)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", raw, err)
	}
	return cfg, nil
}

func (cfg *logConfig) Level() slog.Level {
	return cfg.level
}
