package wheel_stats_repo

import (
	"log/slog"
	"math"
	"sync"

	"spinwin_backend/internal/model"
)

const (
	// minRoundsToCheck Сколько раундов должно быть в окне, прежде чем сравнивать RTP
	minRoundsToCheck = 100
	// criticalRTPDeviation отклонение RTP окна от теоретического, при котором поднимаем флаг
	criticalRTPDeviation = 10.0 // процентные пункты
	// normalRTPDeviation отклонение, при котором флаг снимается
	normalRTPDeviation = 5.0
)

type roundSample struct {
	stake  int
	payout int
}

// StateRepo статистика колеса в памяти процесса
type StateRepo struct {
	mtx    sync.RWMutex
	state  model.HouseStats
	window []roundSample
}

// NewWheelStatsRepository windowSize - сколько последних раундов учитывать в WindowRTP
func NewWheelStatsRepository(windowSize int, theoreticalRTP float64) *StateRepo {
	return &StateRepo{
		state: model.HouseStats{
			TheoreticalRTP: theoreticalRTP,
			WindowSize:     windowSize,
		},
		window: make([]roundSample, 0, windowSize),
	}
}

// HouseStats возвращает копию текущей статистики
func (r *StateRepo) HouseStats() model.HouseStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.state
}

// UpdateState учитывает завершенный раунд
func (r *StateRepo) UpdateState(outcome model.Outcome) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalRounds++
	r.state.TotalStaked += outcome.StakeDebited
	r.state.TotalPaid += outcome.Payout
	if outcome.IsWin {
		r.state.Wins++
	}
	if outcome.Suppressed {
		r.state.SuppressedRounds++
	}
	if outcome.Capped {
		r.state.CappedRounds++
	}
	if r.state.TotalStaked > 0 {
		r.state.CurrentRTP = float64(r.state.TotalPaid) / float64(r.state.TotalStaked) * 100
	}

	r.window = append(r.window, roundSample{stake: outcome.StakeDebited, payout: outcome.Payout})
	if len(r.window) > r.state.WindowSize {
		r.window = r.window[1:]
	}

	var windowStake, windowPayout int
	for _, s := range r.window {
		windowStake += s.stake
		windowPayout += s.payout
	}
	r.state.WindowRounds = len(r.window)
	if windowStake > 0 {
		r.state.WindowRTP = float64(windowPayout) / float64(windowStake) * 100
	} else {
		r.state.WindowRTP = 0
	}

	r.checkDrift()
}

// checkDrift поднимает флаг, если RTP окна ушел от теоретического,
// и снимает, когда вернулся. Таблицу не меняет.
func (r *StateRepo) checkDrift() {
	if r.state.WindowRounds < minRoundsToCheck {
		return
	}

	diff := math.Abs(r.state.WindowRTP - r.state.TheoreticalRTP)

	if !r.state.DriftAlert && diff > criticalRTPDeviation {
		r.state.DriftAlert = true
		slog.Warn("wheel RTP drift detected",
			"window_rtp", r.state.WindowRTP,
			"theoretical_rtp", r.state.TheoreticalRTP,
			"window_rounds", r.state.WindowRounds)
		return
	}

	if r.state.DriftAlert && diff < normalRTPDeviation {
		r.state.DriftAlert = false
		slog.Info("wheel RTP back to normal",
			"window_rtp", r.state.WindowRTP,
			"theoretical_rtp", r.state.TheoreticalRTP)
	}
}
