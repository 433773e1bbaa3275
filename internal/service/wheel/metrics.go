package wheel

import (
	"spinwin_backend/internal/model"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const labelResult = "result"

var (
	roundsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wheel_rounds_total",
		Help: "Settled wheel rounds by result",
	}, []string{labelResult})

	stakedTotal    = promauto.NewCounter(prometheus.CounterOpts{Name: "wheel_staked_total", Help: "Sum of stakes"})
	paidTotal      = promauto.NewCounter(prometheus.CounterOpts{Name: "wheel_paid_total", Help: "Sum of payouts"})
	depositedTotal = promauto.NewCounter(prometheus.CounterOpts{Name: "wheel_deposited_total", Help: "Sum of deposits"})

	openSessions = promauto.NewGauge(prometheus.GaugeOpts{Name: "wheel_open_sessions", Help: "Open wheel sessions"})
)

func observeRound(o model.Outcome) {
	roundsTotal.WithLabelValues(resultLabel(o)).Inc()
	stakedTotal.Add(float64(o.StakeDebited))
	paidTotal.Add(float64(o.Payout))
}

func resultLabel(o model.Outcome) string {
	switch {
	case o.Suppressed:
		return "suppressed"
	case o.Capped:
		return "capped"
	case o.IsWin:
		return "win"
	default:
		return "loss"
	}
}
