package env

import (
	"fmt"
	"os"
	"time"

	"spinwin_backend/internal/config"
)

const (
	sessionTokenSecretEnvName   = "SESSION_TOKEN_SECRET"
	sessionTokenDurationEnvName = "SESSION_TOKEN_DURATION"
)

type sessionTokenConfig struct {
	secretKey string
	duration  time.Duration
}

func NewSessionTokenConfig() (config.SessionTokenConfig, error) {
	secret := os.Getenv(sessionTokenSecretEnvName)
	if len(secret) == 0 {
		return nil, fmt.Errorf("session token secret key not found")
	}

	duration := os.Getenv(sessionTokenDurationEnvName)
	if len(duration) == 0 {
		return nil, fmt.Errorf("session token duration not found")
	}

	durationParsed, err := time.ParseDuration(duration)
	if err != nil {
		return nil, fmt.Errorf("invalid session token duration: %w", err)
	}
	if durationParsed <= 0 {
		return nil, fmt.Errorf("session token duration must be positive")
	}

	return &sessionTokenConfig{
		secretKey: secret,
		duration:  durationParsed,
	}, nil
}

func (s *sessionTokenConfig) SecretKey() []byte {
	return []byte(s.secretKey)
}

func (s *sessionTokenConfig) Duration() time.Duration {
	return s.duration
}
