package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleWheel = `
wheel:
  minimum_stake: 20
  max_daily_earnings: 500
  suppressed_threshold: 12.5
  history_size: 5
  timezone: UTC
  segments:
    - multiplier: 0
      weight: 30
    - multiplier: 1.5
      weight: 20
    - multiplier: 25
      weight: 2
`

func TestParseWheelConfig(t *testing.T) {
	cfg, err := parseWheelConfig([]byte(sampleWheel))
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.MinimumStake())
	assert.Equal(t, 500, cfg.MaxDailyEarnings())
	assert.True(t, cfg.SuppressedThreshold().Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, 5, cfg.HistorySize())
	assert.Equal(t, defaultStatsWindowSize, cfg.StatsWindowSize())
	assert.Equal(t, time.UTC, cfg.Location())

	segments := cfg.Segments()
	require.Len(t, segments, 3)
	assert.True(t, segments[0].Multiplier.IsZero())
	assert.True(t, segments[1].Multiplier.Equal(decimal.RequireFromString("1.5")))
	assert.Equal(t, 2.0, segments[2].Weight)
}

func TestParseWheelConfig_Defaults(t *testing.T) {
	cfg, err := parseWheelConfig([]byte(`
wheel:
  segments:
    - multiplier: 2
      weight: 1
`))
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.MinimumStake())
	assert.Equal(t, 200, cfg.MaxDailyEarnings())
	assert.True(t, cfg.SuppressedThreshold().Equal(decimal.NewFromInt(15)))
	assert.Equal(t, 10, cfg.HistorySize())
	assert.Equal(t, defaultMaxBalance, cfg.MaxBalance())
	assert.Equal(t, time.Local, cfg.Location())
}

func TestParseWheelConfig_SuppressionDisabled(t *testing.T) {
	cfg, err := parseWheelConfig([]byte(`
wheel:
  suppressed_threshold: 0
  segments:
    - multiplier: 30
      weight: 1
`))
	require.NoError(t, err)
	assert.True(t, cfg.SuppressedThreshold().IsZero())
}

func TestParseWheelConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		"no segments":        "wheel:\n  minimum_stake: 10\n",
		"zero weight":        "wheel:\n  segments:\n    - multiplier: 2\n      weight: 0\n",
		"negative mult":      "wheel:\n  segments:\n    - multiplier: -1\n      weight: 1\n",
		"zero min stake":     "wheel:\n  minimum_stake: 0\n  segments:\n    - multiplier: 2\n      weight: 1\n",
		"bad timezone":       "wheel:\n  timezone: Mars/Olympus\n  segments:\n    - multiplier: 2\n      weight: 1\n",
		"zero history size":  "wheel:\n  history_size: 0\n  segments:\n    - multiplier: 2\n      weight: 1\n",
		"negative threshold": "wheel:\n  suppressed_threshold: -1\n  segments:\n    - multiplier: 2\n      weight: 1\n",
		"zero max balance":   "wheel:\n  max_balance: 0\n  segments:\n    - multiplier: 2\n      weight: 1\n",
		"huge max balance":   "wheel:\n  max_balance: 9223372036854775807\n  segments:\n    - multiplier: 2\n      weight: 1\n",
		"cap above balance":  "wheel:\n  max_balance: 100\n  max_daily_earnings: 200\n  segments:\n    - multiplier: 2\n      weight: 1\n",
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseWheelConfig([]byte(body))
			assert.Error(t, err)
		})
	}
}

func TestNewWheelConfigFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleWheel), 0o600))

	cfg, err := NewWheelConfigFromYAML(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Segments(), 3)

	_, err = NewWheelConfigFromYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewSessionTokenConfig(t *testing.T) {
	t.Setenv(sessionTokenSecretEnvName, "secret")
	t.Setenv(sessionTokenDurationEnvName, "2h")

	cfg, err := NewSessionTokenConfig()
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), cfg.SecretKey())
	assert.Equal(t, 2*time.Hour, cfg.Duration())

	t.Setenv(sessionTokenDurationEnvName, "soon")
	_, err = NewSessionTokenConfig()
	assert.Error(t, err)
}

func TestNewPGConfig_Missing(t *testing.T) {
	t.Setenv(dsnName, "")
	_, err := NewPGConfig()
	assert.ErrorIs(t, err, ErrPGDSNNotFound)
}

func TestNewRandomConfig(t *testing.T) {
	t.Setenv(wheelSeedEnvName, "")
	cfg, err := NewRandomConfig()
	require.NoError(t, err)
	_, ok := cfg.Seed()
	assert.False(t, ok)

	t.Setenv(wheelSeedEnvName, "42")
	cfg, err = NewRandomConfig()
	require.NoError(t, err)
	seed, ok := cfg.Seed()
	assert.True(t, ok)
	assert.Equal(t, uint64(42), seed)

	t.Setenv(wheelSeedEnvName, "-1")
	_, err = NewRandomConfig()
	assert.Error(t, err)
}

func TestWheelConfigPath(t *testing.T) {
	t.Setenv(wheelConfigPathEnvName, "")
	assert.Equal(t, defaultWheelConfigPath, WheelConfigPath())

	t.Setenv(wheelConfigPathEnvName, "/etc/wheel.yaml")
	assert.Equal(t, "/etc/wheel.yaml", WheelConfigPath())
}
