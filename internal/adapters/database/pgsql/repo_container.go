package pgsql

import (
	portsrepo "github.com/SscSPs/customer_ledger_api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryOption configures NewRepositoryProvider.
type RepositoryOption func(*repositoryOptions)

type repositoryOptions struct {
	cipher FieldCipher
}

// WithFieldCipher encrypts customer PII columns with cipher.
func WithFieldCipher(cipher FieldCipher) RepositoryOption {
	return func(o *repositoryOptions) {
		o.cipher = cipher
	}
}

func NewRepositoryProvider(dbPool *pgxpool.Pool, opts ...RepositoryOption) portsrepo.RepositoryProvider {
	var o repositoryOptions
	for _, opt := range opts {
		opt(&o)
	}

	return portsrepo.RepositoryProvider{
		AccountRepo:  newPgxAccountRepository(dbPool),
		CustomerRepo: newPgxCustomerRepository(dbPool, o.cipher),
		LedgerRepo:   newPgxLedgerRepository(dbPool),
		TxManager:    newPgxTransactionManager(dbPool),
	}
}
