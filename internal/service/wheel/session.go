package wheel

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"spinwin_backend/internal/middleware"
	"spinwin_backend/internal/model"
	"spinwin_backend/pkg/token"

	"github.com/google/uuid"
)

// session состояние одного игрока. mtx защищает state, history и closed,
// busy не дает начать второй раунд, пока первый не рассчитан
type session struct {
	id   string
	busy atomic.Bool

	mtx     sync.Mutex
	closed  bool
	state   model.RoundState
	history []model.Outcome
	spins   int
}

func (s *serv) OpenSession(_ context.Context) (*model.Session, error) {
	id := uuid.NewString()

	tok, expiresAt, err := token.GenerateSessionToken(id, s.tokenCfg.SecretKey(), s.tokenCfg.Duration(), s.now())
	if err != nil {
		return nil, err
	}

	sess := &session{id: id}

	s.mtx.Lock()
	s.sessions[id] = sess
	openSessions.Set(float64(len(s.sessions)))
	s.mtx.Unlock()

	slog.Debug("wheel session opened", "session_id", id)

	return &model.Session{
		ID:        id,
		Token:     tok,
		ExpiresAt: expiresAt,
		Snapshot:  s.snapshotLocked(sess),
	}, nil
}

// CloseSession состояние сессии отбрасывается, журнал остается
func (s *serv) CloseSession(ctx context.Context) error {
	sess, err := s.sessionFromContext(ctx)
	if err != nil {
		return err
	}

	// Дожидаемся раунда в полете
	sess.mtx.Lock()
	defer sess.mtx.Unlock()

	if sess.closed {
		return ErrSessionNotFound
	}
	sess.closed = true

	s.mtx.Lock()
	delete(s.sessions, sess.id)
	openSessions.Set(float64(len(s.sessions)))
	s.mtx.Unlock()

	slog.Debug("wheel session closed", "session_id", sess.id)
	return nil
}

func (s *serv) Snapshot(ctx context.Context) (*model.Snapshot, error) {
	sess, err := s.sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	sess.mtx.Lock()
	defer sess.mtx.Unlock()

	if sess.closed {
		return nil, ErrSessionNotFound
	}

	ResetDaily(&sess.state, s.now(), s.location)
	snap := s.snapshotLocked(sess)
	return &snap, nil
}

func (s *serv) Ledger(ctx context.Context, limit int) ([]model.LedgerEntry, error) {
	sess, err := s.sessionFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.ledger.ListBySession(ctx, sess.id, limit)
}

func (s *serv) sessionFromContext(ctx context.Context) (*session, error) {
	id, ok := middleware.SessionIDFromContext(ctx)
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.mtx.RLock()
	defer s.mtx.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// snapshotLocked вызывать под sess.mtx
func (s *serv) snapshotLocked(sess *session) model.Snapshot {
	remaining := s.rules.MaxDailyEarnings - sess.state.DailyEarnings
	if remaining < 0 {
		remaining = 0
	}

	history := make([]model.Outcome, len(sess.history))
	copy(history, sess.history)

	return model.Snapshot{
		Balance:           sess.state.Balance,
		DailyEarnings:     sess.state.DailyEarnings,
		MaxDailyEarnings:  s.rules.MaxDailyEarnings,
		Remaining:         remaining,
		DailyLimitReached: DailyLimitReached(sess.state, s.rules.MaxDailyEarnings),
		TotalSpins:        sess.spins,
		History:           history,
	}
}
