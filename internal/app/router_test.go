package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sessionDTO "spinwin_backend/internal/api/dto/session"
	wheelDTO "spinwin_backend/internal/api/dto/wheel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Колесо из одной секции 2x: исход раунда известен заранее
const testWheel = `
wheel:
  minimum_stake: 10
  max_daily_earnings: 200
  suppressed_threshold: 15
  timezone: UTC
  segments:
    - { multiplier: 2, weight: 1 }
`

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	path := filepath.Join(t.TempDir(), "wheel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testWheel), 0o600))

	t.Setenv("WHEEL_CONFIG_PATH", path)
	t.Setenv("PG_DSN", "")
	t.Setenv("WHEEL_SEED", "7")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("SESSION_TOKEN_SECRET", "test-secret")
	t.Setenv("SESSION_TOKEN_DURATION", "1h")

	return newServiceProvider().Router(context.Background())
}

func do(t *testing.T, h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestRouter_SessionRoundTrip(t *testing.T) {
	h := newTestRouter(t)

	w := do(t, h, http.MethodPost, "/sessions", "", "")
	require.Equal(t, http.StatusCreated, w.Code)
	var sess sessionDTO.OpenResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&sess))
	require.NotEmpty(t, sess.Token)
	assert.Equal(t, 0, sess.Balance)

	w = do(t, h, http.MethodPost, "/wheel/spin", sess.Token, `{"stake": 10}`)
	assert.Equal(t, http.StatusPaymentRequired, w.Code)

	w = do(t, h, http.MethodPost, "/wheel/deposit", sess.Token, `{"amount": 100}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodPost, "/wheel/spin", sess.Token, `{"stake": 10}`)
	require.Equal(t, http.StatusOK, w.Code)
	var spin wheelDTO.SpinResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&spin))
	assert.Equal(t, "2", spin.Multiplier)
	assert.Equal(t, 20, spin.Payout)
	assert.Equal(t, 110, spin.Balance)
	assert.Equal(t, 10, spin.DailyEarnings)

	w = do(t, h, http.MethodGet, "/wheel/state", sess.Token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var state wheelDTO.StateResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&state))
	assert.Equal(t, 110, state.Balance)
	assert.Equal(t, 190, state.Remaining)
	require.Len(t, state.History, 1)

	w = do(t, h, http.MethodGet, "/wheel/ledger", sess.Token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var ledger wheelDTO.LedgerResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&ledger))
	require.Len(t, ledger.Entries, 3)
	assert.Equal(t, "PAYOUT", ledger.Entries[0].Kind)
	assert.Equal(t, "STAKE", ledger.Entries[1].Kind)
	assert.Equal(t, "DEPOSIT", ledger.Entries[2].Kind)

	w = do(t, h, http.MethodDelete, "/sessions", sess.Token, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, h, http.MethodGet, "/wheel/state", sess.Token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_RequiresToken(t *testing.T) {
	h := newTestRouter(t)

	assert.Equal(t, http.StatusUnauthorized, do(t, h, http.MethodGet, "/wheel/state", "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, h, http.MethodPost, "/wheel/spin", "garbage", `{"stake": 10}`).Code)
}

func TestRouter_PublicEndpoints(t *testing.T) {
	h := newTestRouter(t)

	w := do(t, h, http.MethodGet, "/wheel/config", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var cfg wheelDTO.ConfigResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&cfg))
	require.Len(t, cfg.Segments, 1)
	assert.Equal(t, 200, cfg.MaxDailyEarnings)

	w = do(t, h, http.MethodGet, "/stats", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var stats wheelDTO.StatsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&stats))
	assert.InDelta(t, 200.0, stats.TheoreticalRTP, 1e-9)

	w = do(t, h, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "wheel_open_sessions")
}
