package service

import (
	"context"

	"spinwin_backend/internal/model"
)

// WheelService методы с сессией берут ID сессии из контекста (middleware.SessionIDFromContext)
type WheelService interface {
	OpenSession(ctx context.Context) (*model.Session, error)
	CloseSession(ctx context.Context) error

	Deposit(ctx context.Context, req model.Deposit) (*model.Snapshot, error)
	Spin(ctx context.Context, req model.WheelSpin) (*model.Outcome, error)
	Snapshot(ctx context.Context) (*model.Snapshot, error)
	Ledger(ctx context.Context, limit int) ([]model.LedgerEntry, error)

	Table() model.WheelTable
	HouseStats() model.HouseStats

	// RunDailyReset блокируется до отмены ctx, в полночь сбрасывает дневной выигрыш всех сессий
	RunDailyReset(ctx context.Context)
}
