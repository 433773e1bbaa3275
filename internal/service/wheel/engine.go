package wheel

import (
	"time"

	"spinwin_backend/internal/model"

	"github.com/shopspring/decimal"
)

// Rules параметры колеса, неизменные на время жизни сессии
type Rules struct {
	Segments            []model.Segment
	MinimumStake        int
	MaxDailyEarnings    int
	MaxBalance          int             // Потолок баланса для пополнений
	SuppressedThreshold decimal.Decimal // 0 - подавление выключено, иначе множитель >= порога не платит
	HistorySize         int
}

// DrawMultiplier выбирает множитель по весам (inverse CDF).
// При равенстве на границе выигрывает первая секция, при накопленной
// погрешности float возвращается последняя секция.
func DrawMultiplier(segments []model.Segment, src Source) decimal.Decimal {
	if len(segments) == 0 {
		return decimal.Zero
	}

	var total float64
	for _, seg := range segments {
		total += seg.Weight
	}

	r := src.Float64() * total
	var cumulative float64
	for _, seg := range segments {
		cumulative += seg.Weight
		if cumulative >= r {
			return seg.Multiplier
		}
	}

	return segments[len(segments)-1].Multiplier
}

// ValidateStake проверяет, что ставка положительна и не меньше минимальной
func ValidateStake(stake, minimumStake int) error {
	if stake <= 0 || stake < minimumStake {
		return ErrInvalidStake
	}
	return nil
}

// CanAfford проверяет, хватает ли баланса на ставку
func CanAfford(state model.RoundState, stake int) error {
	if stake > state.Balance {
		return ErrInsufficientBalance
	}
	return nil
}

// DailyLimitReached true, если выигрывать сегодня больше нельзя
func DailyLimitReached(state model.RoundState, maxDailyEarnings int) bool {
	return state.DailyEarnings >= maxDailyEarnings
}

// SettleRound проводит раунд над state: списывает ставку, крутит колесо,
// начисляет выплату с учетом порога подавления и дневного лимита.
// Ставку и баланс не валидирует: это делает вызывающий (ValidateStake, CanAfford).
func SettleRound(state *model.RoundState, stake int, rules Rules, src Source, now time.Time) model.Outcome {
	// Ставка списывается до результата
	state.Balance -= stake

	multiplier := DrawMultiplier(rules.Segments, src)

	var (
		payout     int
		suppressed bool
		capped     bool
	)

	switch {
	case multiplier.IsZero():
		payout = 0
	case rules.SuppressedThreshold.IsPositive() && multiplier.GreaterThanOrEqual(rules.SuppressedThreshold):
		// Колесо показывает множитель, но не платит
		payout = 0
		suppressed = true
	default:
		// Сравниваем в decimal: stake*multiplier может не влезть в int
		grossWin := decimal.NewFromInt(int64(stake)).Mul(multiplier).Floor()
		headroom := decimal.NewFromInt(int64(stake + rules.MaxDailyEarnings - state.DailyEarnings))
		if grossWin.LessThanOrEqual(headroom) {
			payout = int(grossWin.IntPart())
		} else {
			payout = stake + (rules.MaxDailyEarnings - state.DailyEarnings)
			capped = true
		}
	}

	state.Balance += payout
	if payout > stake {
		state.DailyEarnings += payout - stake
	}

	return model.Outcome{
		Multiplier:        multiplier,
		StakeDebited:      stake,
		Payout:            payout,
		IsWin:             payout > stake,
		Suppressed:        suppressed,
		Capped:            capped,
		Timestamp:         now,
		Balance:           state.Balance,
		DailyEarnings:     state.DailyEarnings,
		DailyLimitReached: DailyLimitReached(*state, rules.MaxDailyEarnings),
	}
}

// ResetDaily обнуляет дневной выигрыш один раз за календарные сутки в loc.
// Повторный вызов в те же сутки ничего не делает. Возвращает true, если сброс был.
func ResetDaily(state *model.RoundState, now time.Time, loc *time.Location) bool {
	if !state.LastReset.IsZero() && sameDay(state.LastReset, now, loc) {
		return false
	}
	state.DailyEarnings = 0
	state.LastReset = now
	return true
}

// TheoreticalRTP ожидаемый возврат игроку в процентах без учета дневного лимита
func TheoreticalRTP(rules Rules) float64 {
	var total, expected float64
	for _, seg := range rules.Segments {
		total += seg.Weight
		if rules.SuppressedThreshold.IsPositive() && seg.Multiplier.GreaterThanOrEqual(rules.SuppressedThreshold) {
			continue
		}
		expected += seg.Weight * seg.Multiplier.InexactFloat64()
	}
	if total == 0 {
		return 0
	}
	return expected / total * 100
}

func sameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
