package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Segment одна секция колеса: множитель ставки и относительный вес выпадения
type Segment struct {
	Multiplier decimal.Decimal // 0 - проигрыш
	Weight     float64         // > 0, нормируется на сумму весов
}

// WheelTable таблица колеса и лимиты, которые видит клиент
type WheelTable struct {
	Segments            []Segment
	MinimumStake        int
	MaxDailyEarnings    int
	MaxBalance          int
	SuppressedThreshold decimal.Decimal
	HistorySize         int
}

// RoundState состояние игрока внутри сессии
type RoundState struct {
	Balance       int
	DailyEarnings int       // Чистый выигрыш с последнего сброса
	LastReset     time.Time // Момент последнего дневного сброса, zero - сброса не было
}

type WheelSpin struct {
	Stake int
}

type Deposit struct {
	Amount int
}

// Outcome результат одного раунда
type Outcome struct {
	RoundID      string
	Multiplier   decimal.Decimal // На каком множителе остановилось колесо
	StakeDebited int
	Payout       int
	IsWin        bool // Payout > StakeDebited
	Suppressed   bool // Множитель >= порога, выплата обнулена
	Capped       bool // Выплата урезана дневным лимитом
	Timestamp    time.Time

	Balance           int // Баланс после раунда
	DailyEarnings     int // Дневной выигрыш после раунда
	DailyLimitReached bool
}

// Snapshot состояние сессии для отображения
type Snapshot struct {
	Balance           int
	DailyEarnings     int
	MaxDailyEarnings  int
	Remaining         int // Сколько еще можно выиграть сегодня
	DailyLimitReached bool
	TotalSpins        int
	History           []Outcome // Последние раунды, новые первыми
}
