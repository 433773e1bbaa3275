package api

import (
	"errors"
	"log/slog"
	"net/http"

	"spinwin_backend/internal/service/wheel"
)

// StatusFromError http статус для ошибки сервиса колеса
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, wheel.ErrInvalidStake), errors.Is(err, wheel.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, wheel.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	case errors.Is(err, wheel.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, wheel.ErrRoundInProgress):
		return http.StatusConflict
	case errors.Is(err, wheel.ErrDailyLimitReached):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// WriteError пишет ошибку клиенту. Внутренние ошибки логируются, клиенту уходит только статус
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFromError(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "err", err)
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}
