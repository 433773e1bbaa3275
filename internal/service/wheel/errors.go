package wheel

import "errors"

var (
	ErrInvalidStake        = errors.New("stake is below minimum or not positive")
	ErrInsufficientBalance = errors.New("not enough balance")
	ErrDailyLimitReached   = errors.New("daily earnings limit reached")
	ErrRoundInProgress     = errors.New("previous round is not settled yet")
	ErrSessionNotFound     = errors.New("session not found")
	ErrInvalidAmount       = errors.New("amount must be positive")
)
