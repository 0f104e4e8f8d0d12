package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/customer_ledger_api/internal/core/domain"
	portsrepo "github.com/SscSPs/customer_ledger_api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerReader = (*PgxLedgerRepository)(nil)

// ListEntriesByAccount returns entries after afterID in id order. A NULL limit
// means no limit to Postgres.
func (r *PgxLedgerRepository) ListEntriesByAccount(ctx context.Context, accountID int64, afterID int64, limit int) ([]domain.LedgerEntry, error) {
	query := `
		SELECT id, account_id, transaction_type, amount, details, created_at
		FROM ledger_entries
		WHERE account_id = $1 AND id > $2
		ORDER BY id
		LIMIT $3;
	`
	var limitArg *int
	if limit > 0 {
		limitArg = &limit
	}

	rows, err := r.Pool.Query(ctx, query, accountID, afterID, limitArg)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries for account %d: %w", accountID, err)
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(&e.EntryID, &e.AccountID, &e.TransactionType, &e.Amount, &e.Details, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger entry rows: %w", err)
	}
	return entries, nil
}

// pgxLedgerTxStore appends entries inside one transaction.
type pgxLedgerTxStore struct {
	tx pgx.Tx
}

var _ portsrepo.LedgerTxStore = (*pgxLedgerTxStore)(nil)

func (s *pgxLedgerTxStore) Append(ctx context.Context, entries []domain.LedgerEntry) ([]domain.LedgerEntry, error) {
	if len(entries) == 0 {
		return []domain.LedgerEntry{}, nil
	}

	query := `
		INSERT INTO ledger_entries (account_id, transaction_type, amount, details)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
	`
	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(query, e.AccountID, e.TransactionType, e.Amount, e.Details)
	}

	br := s.tx.SendBatch(ctx, batch)
	defer br.Close()

	out := make([]domain.LedgerEntry, len(entries))
	for i, e := range entries {
		if err := br.QueryRow().Scan(&e.EntryID, &e.CreatedAt); err != nil {
			return nil, mapPgError(err, fmt.Sprintf("failed to append ledger entry for account %d", e.AccountID))
		}
		out[i] = e
	}
	return out, nil
}
