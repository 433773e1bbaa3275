package env

import (
	"errors"
	"fmt"
	"os"
	"time"

	"spinwin_backend/internal/config"
	"spinwin_backend/internal/model"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	defaultMinimumStake        = 10
	defaultMaxDailyEarnings    = 200
	defaultSuppressedThreshold = 15
	defaultHistorySize         = 10
	defaultStatsWindowSize     = 500
	defaultMaxBalance          = 1_000_000_000

	// Потолок max_balance: stake*multiplier и баланс с выплатой остаются в int64
	maxBalanceLimit = 1 << 53

	wheelConfigPathEnvName = "WHEEL_CONFIG_PATH"
	defaultWheelConfigPath = "config.yaml"
)

// WheelConfigPath путь к yaml с колесом, по умолчанию config.yaml
func WheelConfigPath() string {
	if path := os.Getenv(wheelConfigPathEnvName); len(path) != 0 {
		return path
	}
	return defaultWheelConfigPath
}

type wheelFile struct {
	Wheel wheelYAML `yaml:"wheel"`
}

type wheelYAML struct {
	MinimumStake        *int          `yaml:"minimum_stake"`
	MaxDailyEarnings    *int          `yaml:"max_daily_earnings"`
	MaxBalance          *int          `yaml:"max_balance"`
	SuppressedThreshold *float64      `yaml:"suppressed_threshold"` // 0 - выключено, < 0 - ошибка
	HistorySize         *int          `yaml:"history_size"`
	StatsWindowSize     *int          `yaml:"stats_window_size"`
	Timezone            string        `yaml:"timezone"`
	Segments            []segmentYAML `yaml:"segments"`
}

type segmentYAML struct {
	Multiplier float64 `yaml:"multiplier"`
	Weight     float64 `yaml:"weight"`
}

type wheelConfig struct {
	segments            []model.Segment
	minimumStake        int
	maxDailyEarnings    int
	maxBalance          int
	suppressedThreshold decimal.Decimal
	historySize         int
	statsWindowSize     int
	location            *time.Location
}

// NewWheelConfigFromYAML читает таблицу колеса и лимиты из секции wheel
func NewWheelConfigFromYAML(path string) (config.WheelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseWheelConfig(data)
}

func parseWheelConfig(data []byte) (config.WheelConfig, error) {
	var file wheelFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse wheel config: %w", err)
	}
	raw := file.Wheel

	if len(raw.Segments) == 0 {
		return nil, errors.New("wheel config has no segments")
	}

	segments := make([]model.Segment, 0, len(raw.Segments))
	for i, s := range raw.Segments {
		if s.Weight <= 0 {
			return nil, fmt.Errorf("segment %d: weight must be positive", i)
		}
		if s.Multiplier < 0 {
			return nil, fmt.Errorf("segment %d: multiplier must not be negative", i)
		}
		segments = append(segments, model.Segment{
			Multiplier: decimal.NewFromFloat(s.Multiplier),
			Weight:     s.Weight,
		})
	}

	cfg := &wheelConfig{
		segments:            segments,
		minimumStake:        intOr(raw.MinimumStake, defaultMinimumStake),
		maxDailyEarnings:    intOr(raw.MaxDailyEarnings, defaultMaxDailyEarnings),
		maxBalance:          intOr(raw.MaxBalance, defaultMaxBalance),
		suppressedThreshold: decimal.NewFromInt(defaultSuppressedThreshold),
		historySize:         intOr(raw.HistorySize, defaultHistorySize),
		statsWindowSize:     intOr(raw.StatsWindowSize, defaultStatsWindowSize),
		location:            time.Local,
	}
	if raw.SuppressedThreshold != nil {
		if *raw.SuppressedThreshold < 0 {
			return nil, errors.New("suppressed_threshold must not be negative, use 0 to disable suppression")
		}
		cfg.suppressedThreshold = decimal.NewFromFloat(*raw.SuppressedThreshold)
	}

	if cfg.minimumStake <= 0 {
		return nil, errors.New("minimum_stake must be positive")
	}
	if cfg.maxDailyEarnings < 0 {
		return nil, errors.New("max_daily_earnings must not be negative")
	}
	if cfg.maxBalance <= 0 || cfg.maxBalance > maxBalanceLimit {
		return nil, fmt.Errorf("max_balance must be in (0, %d]", int64(maxBalanceLimit))
	}
	if cfg.maxDailyEarnings > cfg.maxBalance {
		return nil, errors.New("max_daily_earnings must not exceed max_balance")
	}
	if cfg.historySize <= 0 {
		return nil, errors.New("history_size must be positive")
	}
	if cfg.statsWindowSize <= 0 {
		return nil, errors.New("stats_window_size must be positive")
	}

	if raw.Timezone != "" {
		loc, err := time.LoadLocation(raw.Timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone: %w", err)
		}
		cfg.location = loc
	}

	return cfg, nil
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func (c *wheelConfig) Segments() []model.Segment {
	out := make([]model.Segment, len(c.segments))
	copy(out, c.segments)
	return out
}

func (c *wheelConfig) MinimumStake() int {
	return c.minimumStake
}

func (c *wheelConfig) MaxDailyEarnings() int {
	return c.maxDailyEarnings
}

func (c *wheelConfig) MaxBalance() int {
	return c.maxBalance
}

func (c *wheelConfig) SuppressedThreshold() decimal.Decimal {
	return c.suppressedThreshold
}

func (c *wheelConfig) HistorySize() int {
	return c.historySize
}

func (c *wheelConfig) StatsWindowSize() int {
	return c.statsWindowSize
}

func (c *wheelConfig) Location() *time.Location {
	return c.location
}
