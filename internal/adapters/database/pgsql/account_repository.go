package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/customer_ledger_api/internal/apperrors"
	"github.com/SscSPs/customer_ledger_api/internal/core/domain"
	portsrepo "github.com/SscSPs/customer_ledger_api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `id, customer_id, account_type, balance, opening_balance, account_number, routing_number, status, active, version, created_at`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.AccountID,
		&a.CustomerID,
		&a.AccountType,
		&a.Balance,
		&a.OpeningBalance,
		&a.AccountNumber,
		&a.RoutingNumber,
		&a.Status,
		&a.Active,
		&a.Version,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// SaveAccount inserts a new account. The opening balance is recorded alongside the balance.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (customer_id, account_type, balance, opening_balance, account_number, routing_number, status, active)
		VALUES ($1, $2, $3, $3, $4, $5, $6, $7)
		RETURNING ` + accountColumns + `;
	`
	saved, err := scanAccount(r.Pool.QueryRow(ctx, query,
		account.CustomerID,
		account.AccountType,
		account.Balance,
		account.AccountNumber,
		account.RoutingNumber,
		account.Status,
		account.Active,
	))
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to save account %s", account.AccountNumber))
	}
	return saved, nil
}

// FindAccount retrieves an account by id, scoped to its owner.
func (r *PgxAccountRepository) FindAccount(ctx context.Context, customerID, accountID int64) (*domain.Account, error) {
	return findAccount(ctx, r.Pool, customerID, accountID, false)
}

// ListAccountsByCustomer retrieves every account of a customer ordered by id.
func (r *PgxAccountRepository) ListAccountsByCustomer(ctx context.Context, customerID int64) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE customer_id = $1 ORDER BY id;`
	rows, err := r.Pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for customer %d: %w", customerID, err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// UpdateAccount updates an existing account in the database. Balance and
// version are never touched here.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	query := `
		UPDATE accounts
		SET account_type = $3, account_number = $4, routing_number = $5, status = $6, active = $7
		WHERE id = $1 AND customer_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		account.AccountID,
		account.CustomerID,
		account.AccountType,
		account.AccountNumber,
		account.RoutingNumber,
		account.Status,
		account.Active,
	)
	if err != nil {
		return mapPgError(err, fmt.Sprintf("failed to update account %d", account.AccountID))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %d for customer %d", apperrors.ErrNotFound, account.AccountID, account.CustomerID)
	}
	return nil
}

func findAccount(ctx context.Context, q querier, customerID, accountID int64, forUpdate bool) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 AND customer_id = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	a, err := scanAccount(q.QueryRow(ctx, query, accountID, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %d for customer %d", apperrors.ErrNotFound, accountID, customerID)
		}
		return nil, mapPgError(err, fmt.Sprintf("failed to find account %d", accountID))
	}
	return a, nil
}

// pgxAccountTxStore is the account store bound to one transaction.
type pgxAccountTxStore struct {
	tx pgx.Tx
}

var _ portsrepo.AccountTxStore = (*pgxAccountTxStore)(nil)

// GetForUpdate reads the account and locks its row until the transaction ends.
func (s *pgxAccountTxStore) GetForUpdate(ctx context.Context, customerID, accountID int64) (*domain.Account, error) {
	return findAccount(ctx, s.tx, customerID, accountID, true)
}

// CommitBalances writes every change in one batch. Each update is guarded by
// the expected version; a guard that matches no row is a concurrency conflict.
func (s *pgxAccountTxStore) CommitBalances(ctx context.Context, changes []domain.BalanceChange) error {
	if len(changes) == 0 {
		return nil
	}

	query := `
		UPDATE accounts
		SET balance = $2, version = version + 1
		WHERE id = $1 AND version = $3;
	`
	batch := &pgx.Batch{}
	for _, c := range changes {
		batch.Queue(query, c.AccountID, c.NewBalance, c.ExpectedVersion)
	}

	br := s.tx.SendBatch(ctx, batch)
	var batchErr error
	for _, c := range changes {
		ct, err := br.Exec()
		if err != nil {
			if batchErr == nil {
				batchErr = mapPgError(err, fmt.Sprintf("failed to update balance for account %d", c.AccountID))
			}
		} else if ct.RowsAffected() == 0 && batchErr == nil {
			batchErr = fmt.Errorf("%w: account %d is no longer at version %d",
				apperrors.ErrConcurrencyConflict, c.AccountID, c.ExpectedVersion)
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = mapPgError(err, "failed to close balance update batch")
	}
	return batchErr
}
