package config

import (
	"log/slog"
	"time"

	"spinwin_backend/internal/model"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type WheelConfig interface {
	Segments() []model.Segment
	MinimumStake() int
	MaxDailyEarnings() int
	MaxBalance() int
	SuppressedThreshold() decimal.Decimal
	HistorySize() int
	StatsWindowSize() int
	Location() *time.Location
}

type RandomConfig interface {
	// Seed возвращает false, если seed не задан и нужен crypto источник
	Seed() (uint64, bool)
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type SessionTokenConfig interface {
	SecretKey() []byte
	Duration() time.Duration
}

type LogConfig interface {
	Level() slog.Level
}
