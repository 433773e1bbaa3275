package wheel_stats_repo

import (
	"testing"

	"spinwin_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestUpdateState_Totals(t *testing.T) {
	r := NewWheelStatsRepository(3, 90)

	r.UpdateState(model.Outcome{StakeDebited: 10, Payout: 30, IsWin: true})
	r.UpdateState(model.Outcome{StakeDebited: 10, Payout: 0, Suppressed: true})
	r.UpdateState(model.Outcome{StakeDebited: 50, Payout: 100, IsWin: true, Capped: true})

	st := r.HouseStats()
	assert.Equal(t, 3, st.TotalRounds)
	assert.Equal(t, 70, st.TotalStaked)
	assert.Equal(t, 130, st.TotalPaid)
	assert.Equal(t, 2, st.Wins)
	assert.Equal(t, 1, st.SuppressedRounds)
	assert.Equal(t, 1, st.CappedRounds)
	assert.InDelta(t, 130.0/70.0*100, st.CurrentRTP, 1e-9)
	assert.Equal(t, 90.0, st.TheoreticalRTP)
}

func TestUpdateState_WindowSlides(t *testing.T) {
	r := NewWheelStatsRepository(2, 90)

	r.UpdateState(model.Outcome{StakeDebited: 10, Payout: 100})
	r.UpdateState(model.Outcome{StakeDebited: 10, Payout: 0})
	r.UpdateState(model.Outcome{StakeDebited: 10, Payout: 10})

	st := r.HouseStats()
	assert.Equal(t, 2, st.WindowRounds)
	// В окне только два последних раунда: 0 + 10 из 20
	assert.InDelta(t, 50.0, st.WindowRTP, 1e-9)
}

func TestUpdateState_DriftAlert(t *testing.T) {
	r := NewWheelStatsRepository(minRoundsToCheck, 100)

	// Все раунды проигрышные - RTP окна 0
	for i := 0; i < minRoundsToCheck; i++ {
		r.UpdateState(model.Outcome{StakeDebited: 10})
	}
	assert.True(t, r.HouseStats().DriftAlert)

	// Окно заполняется раундами с RTP 100
	for i := 0; i < minRoundsToCheck; i++ {
		r.UpdateState(model.Outcome{StakeDebited: 10, Payout: 10})
	}
	assert.False(t, r.HouseStats().DriftAlert)
}

func TestUpdateState_NoDriftBeforeMinRounds(t *testing.T) {
	r := NewWheelStatsRepository(minRoundsToCheck, 100)
	for i := 0; i < minRoundsToCheck-1; i++ {
		r.UpdateState(model.Outcome{StakeDebited: 10})
	}
	assert.False(t, r.HouseStats().DriftAlert)
}
