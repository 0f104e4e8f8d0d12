package memory

import (
	portsrepo "github.com/SscSPs/customer_ledger_api/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository to one shared store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:  &accountRepository{store: store},
		CustomerRepo: &customerRepository{store: store},
		LedgerRepo:   &ledgerRepository{store: store},
		TxManager:    &transactionManager{store: store},
	}
}
