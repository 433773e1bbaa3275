package converter

import (
	"spinwin_backend/internal/api/dto/wheel"
	"spinwin_backend/internal/model"
)

func ToWheelSpin(req wheel.SpinRequest) model.WheelSpin {
	return model.WheelSpin{
		Stake: req.Stake,
	}
}

func ToDeposit(req wheel.DepositRequest) model.Deposit {
	return model.Deposit{
		Amount: req.Amount,
	}
}

func ToSpinResponse(o model.Outcome) wheel.SpinResponse {
	return wheel.SpinResponse{
		RoundID:           o.RoundID,
		Multiplier:        o.Multiplier.String(),
		Stake:             o.StakeDebited,
		Payout:            o.Payout,
		IsWin:             o.IsWin,
		Suppressed:        o.Suppressed,
		Capped:            o.Capped,
		Balance:           o.Balance,
		DailyEarnings:     o.DailyEarnings,
		DailyLimitReached: o.DailyLimitReached,
		Timestamp:         o.Timestamp,
	}
}

func ToStateResponse(s model.Snapshot) wheel.StateResponse {
	return wheel.StateResponse{
		Balance:           s.Balance,
		DailyEarnings:     s.DailyEarnings,
		MaxDailyEarnings:  s.MaxDailyEarnings,
		Remaining:         s.Remaining,
		DailyLimitReached: s.DailyLimitReached,
		TotalSpins:        s.TotalSpins,
		History:           toHistory(s.History),
	}
}

func toHistory(outcomes []model.Outcome) []wheel.HistoryItem {
	result := make([]wheel.HistoryItem, len(outcomes))
	for i, o := range outcomes {
		result[i] = wheel.HistoryItem{
			RoundID:    o.RoundID,
			Multiplier: o.Multiplier.String(),
			Stake:      o.StakeDebited,
			Payout:     o.Payout,
			IsWin:      o.IsWin,
			Timestamp:  o.Timestamp,
		}
	}
	return result
}

func ToConfigResponse(t model.WheelTable) wheel.ConfigResponse {
	segments := make([]wheel.Segment, len(t.Segments))
	for i, seg := range t.Segments {
		segments[i] = wheel.Segment{
			Multiplier: seg.Multiplier.String(),
			Weight:     seg.Weight,
		}
	}

	return wheel.ConfigResponse{
		Segments:            segments,
		MinimumStake:        t.MinimumStake,
		MaxDailyEarnings:    t.MaxDailyEarnings,
		MaxBalance:          t.MaxBalance,
		SuppressedThreshold: t.SuppressedThreshold.String(),
		HistorySize:         t.HistorySize,
	}
}

func ToLedgerResponse(entries []model.LedgerEntry) wheel.LedgerResponse {
	result := make([]wheel.LedgerEntry, len(entries))
	for i, e := range entries {
		item := wheel.LedgerEntry{
			ID:           e.ID,
			RoundID:      e.RoundID,
			Kind:         string(e.Kind),
			Amount:       e.Amount,
			BalanceAfter: e.BalanceAfter,
			CreatedAt:    e.CreatedAt,
		}
		if e.Kind != model.EntryKindDeposit {
			item.Multiplier = e.Multiplier.String()
		}
		result[i] = item
	}
	return wheel.LedgerResponse{Entries: result}
}

func ToStatsResponse(s model.HouseStats) wheel.StatsResponse {
	return wheel.StatsResponse{
		TotalRounds:      s.TotalRounds,
		TotalStaked:      s.TotalStaked,
		TotalPaid:        s.TotalPaid,
		Wins:             s.Wins,
		SuppressedRounds: s.SuppressedRounds,
		CappedRounds:     s.CappedRounds,
		CurrentRTP:       s.CurrentRTP,
		TheoreticalRTP:   s.TheoreticalRTP,
		WindowRTP:        s.WindowRTP,
		WindowSize:       s.WindowSize,
		WindowRounds:     s.WindowRounds,
		DriftAlert:       s.DriftAlert,
	}
}
