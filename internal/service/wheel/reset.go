package wheel

import (
	"context"
	"log/slog"
	"time"
)

// RunDailyReset ждет ближайшей полуночи в s.location и сбрасывает дневной выигрыш всех открытых сессий
func (s *serv) RunDailyReset(ctx context.Context) {
	for {
		now := s.now()
		timer := time.NewTimer(nextMidnight(now, s.location).Sub(now))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			n := s.resetAll()
			slog.Info("daily earnings reset", "sessions", n)
		}
	}
}

// resetAll возвращает количество сессий, у которых был сброс
func (s *serv) resetAll() int {
	s.mtx.RLock()
	sessions := make([]*session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mtx.RUnlock()

	now := s.now()
	reset := 0
	for _, sess := range sessions {
		// Под мьютексом сессии: не сбрасываем посреди расчета раунда
		sess.mtx.Lock()
		if !sess.closed && ResetDaily(&sess.state, now, s.location) {
			reset++
		}
		sess.mtx.Unlock()
	}
	return reset
}

func nextMidnight(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	y, m, d := local.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, loc)
}
