package repositories

import (
	"context"

	"github.com/SscSPs/customer_ledger_api/internal/core/domain"
)

// AccountReader defines read operations for account data.
// Reads never take locks and only observe committed balances.
type AccountReader interface {
	// FindAccount retrieves an account owned by customerID. ErrNotFound when the
	// account does not exist or belongs to another customer.
	FindAccount(ctx context.Context, customerID, accountID int64) (*domain.Account, error)

	// ListAccountsByCustomer retrieves every account of a customer ordered by id.
	ListAccountsByCustomer(ctx context.Context, customerID int64) ([]domain.Account, error)
}

// AccountWriter defines CRUD write operations for account data. Balance is only
// ever written at creation; afterwards it belongs to AccountTxStore.
type AccountWriter interface {
	// SaveAccount persists a new account and returns it with its assigned id.
	SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error)

	// UpdateAccount updates the non-balance fields of an existing account.
	UpdateAccount(ctx context.Context, account domain.Account) error
}

// AccountTxStore is the account side of a unit of work.
type AccountTxStore interface {
	// GetForUpdate reads an account owned by customerID and holds exclusive
	// access to it until the unit of work commits or rolls back.
	GetForUpdate(ctx context.Context, customerID, accountID int64) (*domain.Account, error)

	// CommitBalances writes new balances. A change whose ExpectedVersion no longer
	// matches yields ErrConcurrencyConflict and nothing is applied.
	CommitBalances(ctx context.Context, changes []domain.BalanceChange) error
}

// AccountRepositoryFacade combines the account read and write interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
