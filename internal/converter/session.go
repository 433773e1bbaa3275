package converter

import (
	"spinwin_backend/internal/api/dto/session"
	"spinwin_backend/internal/model"
)

func ToOpenResponse(s model.Session) session.OpenResponse {
	return session.OpenResponse{
		SessionID:     s.ID,
		Token:         s.Token,
		ExpiresAt:     s.ExpiresAt,
		Balance:       s.Snapshot.Balance,
		DailyEarnings: s.Snapshot.DailyEarnings,
	}
}
