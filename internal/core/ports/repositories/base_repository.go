package repositories

import "context"

// UnitOfWork scopes the stores mutated by one request to a single atomic unit.
// Exactly one of Commit or Rollback takes effect; Rollback after Commit is a no-op,
// so callers defer Rollback unconditionally.
type UnitOfWork interface {
	Accounts() AccountTxStore
	Ledger() LedgerTxStore
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager starts units of work.
type TransactionManager interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}
