package pgsql

import (
	"context"

	portsrepo "github.com/SscSPs/customer_ledger_api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTransactionManager opens units of work backed by a pgx transaction.
type PgxTransactionManager struct {
	BaseRepository
}

func newPgxTransactionManager(pool *pgxpool.Pool) *PgxTransactionManager {
	return &PgxTransactionManager{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionManager = (*PgxTransactionManager)(nil)

func (m *PgxTransactionManager) Begin(ctx context.Context) (portsrepo.UnitOfWork, error) {
	tx, err := m.BaseRepository.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return &pgxUnitOfWork{
		base:     m.BaseRepository,
		tx:       tx,
		accounts: &pgxAccountTxStore{tx: tx},
		ledger:   &pgxLedgerTxStore{tx: tx},
	}, nil
}

type pgxUnitOfWork struct {
	base     BaseRepository
	tx       pgx.Tx
	accounts *pgxAccountTxStore
	ledger   *pgxLedgerTxStore
}

var _ portsrepo.UnitOfWork = (*pgxUnitOfWork)(nil)

func (u *pgxUnitOfWork) Accounts() portsrepo.AccountTxStore { return u.accounts }
func (u *pgxUnitOfWork) Ledger() portsrepo.LedgerTxStore    { return u.ledger }

func (u *pgxUnitOfWork) Commit(ctx context.Context) error {
	return u.base.Commit(ctx, u.tx)
}

func (u *pgxUnitOfWork) Rollback(ctx context.Context) error {
	return u.base.Rollback(ctx, u.tx)
}
