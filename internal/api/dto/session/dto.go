package session

import "time"

type OpenResponse struct {
	SessionID     string    `json:"session_id"`
	Token         string    `json:"token"` // Передавать в Authorization: Bearer
	ExpiresAt     time.Time `json:"expires_at"`
	Balance       int       `json:"balance"`
	DailyEarnings int       `json:"daily_earnings"`
}
