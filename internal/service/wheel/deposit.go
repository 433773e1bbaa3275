package wheel

import (
	"context"
	"fmt"

	"spinwin_backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Deposit пополнение баланса сессии. Баланс после пополнения не может превысить MaxBalance
func (s *serv) Deposit(ctx context.Context, req model.Deposit) (*model.Snapshot, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	sess, err := s.sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.deposit(ctx, sess, req)
}

func (s *serv) deposit(ctx context.Context, sess *session, req model.Deposit) (*model.Snapshot, error) {
	sess.mtx.Lock()
	defer sess.mtx.Unlock()

	if sess.closed {
		return nil, ErrSessionNotFound
	}
	// Без сложения: сумма могла бы переполнить int
	if req.Amount > s.rules.MaxBalance-sess.state.Balance {
		return nil, ErrInvalidAmount
	}

	balance := sess.state.Balance + req.Amount

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.ledger.Append(txCtx, &model.LedgerEntry{
			ID:           uuid.NewString(),
			SessionID:    sess.id,
			Kind:         model.EntryKindDeposit,
			Amount:       req.Amount,
			BalanceAfter: balance,
			Multiplier:   decimal.Zero,
			CreatedAt:    s.now(),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to write deposit to ledger: %w", err)
	}

	sess.state.Balance = balance
	depositedTotal.Add(float64(req.Amount))

	snap := s.snapshotLocked(sess)
	return &snap, nil
}
