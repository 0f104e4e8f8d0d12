package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/customer_ledger_api/internal/apperrors"
	"github.com/SscSPs/customer_ledger_api/internal/core/domain"
	portsrepo "github.com/SscSPs/customer_ledger_api/internal/core/ports/repositories"
)

type accountRepository struct {
	store *Store
}

var _ portsrepo.AccountRepositoryFacade = (*accountRepository)(nil)

func (r *accountRepository) SaveAccount(_ context.Context, account domain.Account) (*domain.Account, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[account.CustomerID]; !ok {
		return nil, fmt.Errorf("%w: customer %d", apperrors.ErrNotFound, account.CustomerID)
	}
	if _, taken := s.numbers[account.AccountNumber]; taken {
		return nil, fmt.Errorf("%w: account number %s already exists", apperrors.ErrDuplicate, account.AccountNumber)
	}

	s.nextAccountID++
	account.AccountID = s.nextAccountID
	account.Version = 0
	account.CreatedAt = s.now()
	s.accounts[account.AccountID] = account
	s.numbers[account.AccountNumber] = account.AccountID
	return &account, nil
}

func (r *accountRepository) FindAccount(_ context.Context, customerID, accountID int64) (*domain.Account, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ownedAccount(customerID, accountID)
}

func (r *accountRepository) ListAccountsByCustomer(_ context.Context, customerID int64) ([]domain.Account, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Account{}
	for _, a := range s.accounts {
		if a.CustomerID == customerID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountID < out[j].AccountID })
	return out, nil
}

// UpdateAccount waits for any unit of work holding the account, so a status
// change never lands between a transfer's check and its commit.
func (r *accountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	s := r.store
	if err := s.lockAccount(ctx, account.AccountID); err != nil {
		return err
	}
	defer s.unlockAccount(account.AccountID)

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.ownedAccount(account.CustomerID, account.AccountID)
	if err != nil {
		return err
	}
	if owner, taken := s.numbers[account.AccountNumber]; taken && owner != account.AccountID {
		return fmt.Errorf("%w: account number %s already exists", apperrors.ErrDuplicate, account.AccountNumber)
	}

	delete(s.numbers, existing.AccountNumber)
	s.numbers[account.AccountNumber] = account.AccountID

	existing.AccountType = account.AccountType
	existing.AccountNumber = account.AccountNumber
	existing.RoutingNumber = account.RoutingNumber
	existing.Status = account.Status
	existing.Active = account.Active
	s.accounts[account.AccountID] = *existing
	return nil
}

// ownedAccount must be called with s.mu held.
func (s *Store) ownedAccount(customerID, accountID int64) (*domain.Account, error) {
	a, ok := s.accounts[accountID]
	if !ok || a.CustomerID != customerID {
		return nil, fmt.Errorf("%w: account %d for customer %d", apperrors.ErrNotFound, accountID, customerID)
	}
	return &a, nil
}
