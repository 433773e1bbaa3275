package wheel

import "time"

type SpinRequest struct {
	Stake int `json:"stake"` // Ставка (целое, >= минимальной)
}

type DepositRequest struct {
	Amount int `json:"amount"` // Сумма пополнения (> 0)
}

type SpinResponse struct {
	RoundID           string    `json:"round_id"`
	Multiplier        string    `json:"multiplier"`          // Где остановилось колесо
	Stake             int       `json:"stake"`               // Списанная ставка
	Payout            int       `json:"payout"`              // Выплата (0 при проигрыше)
	IsWin             bool      `json:"is_win"`              // payout > stake
	Suppressed        bool      `json:"suppressed"`          // Множитель выше порога, не платит
	Capped            bool      `json:"capped"`              // Урезано дневным лимитом
	Balance           int       `json:"balance"`             // Баланс после
	DailyEarnings     int       `json:"daily_earnings"`      // Дневной выигрыш после
	DailyLimitReached bool      `json:"daily_limit_reached"` // Дальше выигрывать сегодня нельзя
	Timestamp         time.Time `json:"timestamp"`
}

type HistoryItem struct {
	RoundID    string    `json:"round_id"`
	Multiplier string    `json:"multiplier"`
	Stake      int       `json:"stake"`
	Payout     int       `json:"payout"`
	IsWin      bool      `json:"is_win"`
	Timestamp  time.Time `json:"timestamp"`
}

type StateResponse struct {
	Balance           int           `json:"balance"`
	DailyEarnings     int           `json:"daily_earnings"`
	MaxDailyEarnings  int           `json:"max_daily_earnings"`
	Remaining         int           `json:"remaining"`
	DailyLimitReached bool          `json:"daily_limit_reached"`
	TotalSpins        int           `json:"total_spins"`
	History           []HistoryItem `json:"history"` // Новые первыми
}

type Segment struct {
	Multiplier string  `json:"multiplier"`
	Weight     float64 `json:"weight"`
}

type ConfigResponse struct {
	Segments            []Segment `json:"segments"`
	MinimumStake        int       `json:"minimum_stake"`
	MaxDailyEarnings    int       `json:"max_daily_earnings"`
	MaxBalance          int       `json:"max_balance"`
	SuppressedThreshold string    `json:"suppressed_threshold"`
	HistorySize         int       `json:"history_size"`
}

type LedgerEntry struct {
	ID           string    `json:"id"`
	RoundID      string    `json:"round_id,omitempty"`
	Kind         string    `json:"kind"`
	Amount       int       `json:"amount"`
	BalanceAfter int       `json:"balance_after"`
	Multiplier   string    `json:"multiplier,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type LedgerResponse struct {
	Entries []LedgerEntry `json:"entries"`
}

type StatsResponse struct {
	TotalRounds      int     `json:"total_rounds"`
	TotalStaked      int     `json:"total_staked"`
	TotalPaid        int     `json:"total_paid"`
	Wins             int     `json:"wins"`
	SuppressedRounds int     `json:"suppressed_rounds"`
	CappedRounds     int     `json:"capped_rounds"`
	CurrentRTP       float64 `json:"current_rtp"`
	TheoreticalRTP   float64 `json:"theoretical_rtp"`
	WindowRTP        float64 `json:"window_rtp"`
	WindowSize       int     `json:"window_size"`
	WindowRounds     int     `json:"window_rounds"`
	DriftAlert       bool    `json:"drift_alert"`
}
