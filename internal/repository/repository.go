package repository

import (
	"context"
	"errors"

	"spinwin_backend/internal/model"
)

var ErrEntryInvalid = errors.New("ledger entry is invalid")

// LedgerRepository журнал движения средств (аудит), состояние сессий в нем не хранится
type LedgerRepository interface {
	Append(ctx context.Context, entry *model.LedgerEntry) error
	ListBySession(ctx context.Context, sessionID string, limit int) ([]model.LedgerEntry, error)
}

type WheelStatsRepository interface {
	HouseStats() model.HouseStats
	UpdateState(outcome model.Outcome)
}
