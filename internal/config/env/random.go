package env

import (
	"fmt"
	"os"
	"strconv"

	"spinwin_backend/internal/config"
)

const wheelSeedEnvName = "WHEEL_SEED"

type randomConfig struct {
	seed    uint64
	hasSeed bool
}

func NewRandomConfig() (config.RandomConfig, error) {
	raw := os.Getenv(wheelSeedEnvName)
	if len(raw) == 0 {
		return &randomConfig{}, nil
	}

	seed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid wheel seed: %w", err)
	}
	return &randomConfig{seed: seed, hasSeed: true}, nil
}

func (cfg *randomConfig) Seed() (uint64, bool) {
	return cfg.seed, cfg.hasSeed
}
