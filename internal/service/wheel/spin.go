package wheel

import (
	"context"
	"fmt"
	"log/slog"

	"spinwin_backend/internal/model"

	"github.com/google/uuid"
)

// Spin проводит раунд в сессии из контекста.
// Порядок проверок: сессия, незавершенный раунд, ставка, дневной лимит, баланс.
// При любой ошибке состояние сессии не меняется.
func (s *serv) Spin(ctx context.Context, spinReq model.WheelSpin) (*model.Outcome, error) {
	sess, err := s.sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.spin(ctx, sess, spinReq)
}

func (s *serv) spin(ctx context.Context, sess *session, spinReq model.WheelSpin) (*model.Outcome, error) {
	if !sess.busy.CompareAndSwap(false, true) {
		return nil, ErrRoundInProgress
	}
	defer sess.busy.Store(false)

	sess.mtx.Lock()
	defer sess.mtx.Unlock()

	// Сессию могли закрыть, пока ждали мьютекс
	if sess.closed {
		return nil, ErrSessionNotFound
	}

	// Полночь могла пройти мимо планировщика
	ResetDaily(&sess.state, s.now(), s.location)

	if err := ValidateStake(spinReq.Stake, s.rules.MinimumStake); err != nil {
		return nil, err
	}
	if DailyLimitReached(sess.state, s.rules.MaxDailyEarnings) {
		return nil, ErrDailyLimitReached
	}
	if err := CanAfford(sess.state, spinReq.Stake); err != nil {
		return nil, err
	}

	// Считаем на копии, в сессию пишем только после записи журнала
	next := sess.state
	outcome := SettleRound(&next, spinReq.Stake, s.rules, s.source, s.now())
	outcome.RoundID = uuid.NewString()

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Списание ставки
		err := s.ledger.Append(txCtx, &model.LedgerEntry{
			ID:           uuid.NewString(),
			SessionID:    sess.id,
			RoundID:      outcome.RoundID,
			Kind:         model.EntryKindStake,
			Amount:       -outcome.StakeDebited,
			BalanceAfter: sess.state.Balance - outcome.StakeDebited,
			Multiplier:   outcome.Multiplier,
			CreatedAt:    outcome.Timestamp,
		})
		if err != nil {
			return err
		}

		// 2. Выплата, если есть
		if outcome.Payout == 0 {
			return nil
		}
		return s.ledger.Append(txCtx, &model.LedgerEntry{
			ID:           uuid.NewString(),
			SessionID:    sess.id,
			RoundID:      outcome.RoundID,
			Kind:         model.EntryKindPayout,
			Amount:       outcome.Payout,
			BalanceAfter: next.Balance,
			Multiplier:   outcome.Multiplier,
			CreatedAt:    outcome.Timestamp,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to write round to ledger: %w", err)
	}

	sess.state = next
	sess.spins++
	sess.history = append([]model.Outcome{outcome}, sess.history...)
	if len(sess.history) > s.rules.HistorySize {
		sess.history = sess.history[:s.rules.HistorySize]
	}

	s.statsRepo.UpdateState(outcome)
	observeRound(outcome)

	slog.Debug("wheel round settled",
		"session_id", sess.id,
		"round_id", outcome.RoundID,
		"stake", outcome.StakeDebited,
		"multiplier", outcome.Multiplier.String(),
		"payout", outcome.Payout,
		"suppressed", outcome.Suppressed,
		"capped", outcome.Capped,
		"balance", outcome.Balance,
	)

	return &outcome, nil
}
