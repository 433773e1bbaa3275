package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type EntryKind string

const (
	EntryKindDeposit EntryKind = "DEPOSIT"
	EntryKindStake   EntryKind = "STAKE"
	EntryKindPayout  EntryKind = "PAYOUT"
)

// LedgerEntry одна запись журнала движения средств сессии
type LedgerEntry struct {
	ID           string
	SessionID    string
	RoundID      string // Пусто для депозитов
	Kind         EntryKind
	Amount       int // Положительное для зачислений, отрицательное для списаний
	BalanceAfter int
	Multiplier   decimal.Decimal
	CreatedAt    time.Time
}
