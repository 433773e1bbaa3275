package memory_ledger_repo

import (
	"context"
	"sync"

	"spinwin_backend/internal/model"
	"spinwin_backend/internal/repository"
)

// repo журнал в памяти процесса, используется когда PG_DSN не задан
type repo struct {
	mtx     sync.RWMutex
	entries map[string][]model.LedgerEntry
}

func NewLedgerRepository() repository.LedgerRepository {
	return &repo{
		entries: make(map[string][]model.LedgerEntry),
	}
}

func (r *repo) Append(_ context.Context, entry *model.LedgerEntry) error {
	if entry == nil || entry.ID == "" || entry.SessionID == "" {
		return repository.ErrEntryInvalid
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.entries[entry.SessionID] = append(r.entries[entry.SessionID], *entry)
	return nil
}

func (r *repo) ListBySession(_ context.Context, sessionID string, limit int) ([]model.LedgerEntry, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	stored := r.entries[sessionID]
	n := len(stored)
	if limit > 0 && limit < n {
		n = limit
	}

	// Новые первыми
	out := make([]model.LedgerEntry, 0, n)
	for i := len(stored) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, stored[i])
	}
	return out, nil
}
