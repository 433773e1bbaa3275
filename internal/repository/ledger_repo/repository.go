package ledger_repo

import (
	"context"

	"spinwin_backend/internal/model"
	"spinwin_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	table           = "wheel_ledger"
	colID           = "id"
	colSessionID    = "session_id"
	colRoundID      = "round_id"
	colKind         = "kind"
	colAmount       = "amount"
	colBalanceAfter = "balance_after"
	colMultiplier   = "multiplier"
	colCreatedAt    = "created_at"
	colSeq          = "seq" // Порядок вставки, при равном created_at
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewLedgerRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.LedgerRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// Append - пишет запись журнала.
// Внутри txManager.Do запрос уходит в текущую транзакцию
func (r *repo) Append(ctx context.Context, entry *model.LedgerEntry) error {
	if entry == nil || entry.ID == "" || entry.SessionID == "" {
		return repository.ErrEntryInvalid
	}

	query := insertQuery(entry)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// ListBySession - последние limit записей сессии, новые первыми. limit <= 0 - все
func (r *repo) ListBySession(ctx context.Context, sessionID string, limit int) ([]model.LedgerEntry, error) {
	query := listQuery(sessionID, limit)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]model.LedgerEntry, 0, max(limit, 0))
	for rows.Next() {
		var (
			e          model.LedgerEntry
			kind       string
			multiplier string
		)
		err = rows.Scan(&e.ID, &e.SessionID, &e.RoundID, &kind, &e.Amount, &e.BalanceAfter, &multiplier, &e.CreatedAt)
		if err != nil {
			return nil, err
		}

		e.Kind = model.EntryKind(kind)
		e.Multiplier, err = decimal.NewFromString(multiplier)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func insertQuery(entry *model.LedgerEntry) sq.InsertBuilder {
	return sq.Insert(table).
		Columns(colID, colSessionID, colRoundID, colKind, colAmount, colBalanceAfter, colMultiplier, colCreatedAt).
		Values(
			entry.ID,
			entry.SessionID,
			entry.RoundID,
			string(entry.Kind),
			entry.Amount,
			entry.BalanceAfter,
			entry.Multiplier.String(),
			entry.CreatedAt,
		).
		PlaceholderFormat(sq.Dollar)
}

func listQuery(sessionID string, limit int) sq.SelectBuilder {
	query := sq.Select(colID, colSessionID, colRoundID, colKind, colAmount, colBalanceAfter, colMultiplier, colCreatedAt).
		From(table).
		Where(sq.Eq{colSessionID: sessionID}).
		OrderBy(colSeq + " DESC").
		PlaceholderFormat(sq.Dollar)
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	return query
}
