package memory_ledger_repo

import (
	"context"
	"testing"

	"spinwin_backend/internal/model"
	"spinwin_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_AppendAndList(t *testing.T) {
	ctx := context.Background()
	r := NewLedgerRepository()

	for i, id := range []string{"a", "b", "c"} {
		err := r.Append(ctx, &model.LedgerEntry{ID: id, SessionID: "s1", Kind: model.EntryKindDeposit, Amount: 100, BalanceAfter: 100 * (i + 1)})
		require.NoError(t, err)
	}
	require.NoError(t, r.Append(ctx, &model.LedgerEntry{ID: "x", SessionID: "s2", Kind: model.EntryKindDeposit, Amount: 5}))

	all, err := r.ListBySession(ctx, "s1", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].ID)
	assert.Equal(t, "a", all[2].ID)

	limited, err := r.ListBySession(ctx, "s1", 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, []string{"c", "b"}, []string{limited[0].ID, limited[1].ID})

	empty, err := r.ListBySession(ctx, "unknown", 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestLedger_AppendInvalid(t *testing.T) {
	r := NewLedgerRepository()

	assert.ErrorIs(t, r.Append(context.Background(), nil), repository.ErrEntryInvalid)
	assert.ErrorIs(t, r.Append(context.Background(), &model.LedgerEntry{SessionID: "s"}), repository.ErrEntryInvalid)
}
