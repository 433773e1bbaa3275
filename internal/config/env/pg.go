package env

import (
	"errors"
	"os"

	"spinwin_backend/internal/config"
)

const (
	dsnName = "PG_DSN"
)

// ErrPGDSNNotFound PG_DSN не задан, журнал остается в памяти
var ErrPGDSNNotFound = errors.New("pg dsn not found")

type pgConfig struct {
	dsn string
}

func NewPGConfig() (config.PGConfig, error) {
	dsn := os.Getenv(dsnName)
	if len(dsn) == 0 {
		return nil, ErrPGDSNNotFound
	}

	return &pgConfig{
		dsn: dsn,
	}, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.dsn
}
