package memory

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/customer_ledger_api/internal/apperrors"
	"github.com/SscSPs/customer_ledger_api/internal/core/domain"
	portsrepo "github.com/SscSPs/customer_ledger_api/internal/core/ports/repositories"
)

var errUnitFinished = errors.New("unit of work already finished")

type transactionManager struct {
	store *Store
}

var _ portsrepo.TransactionManager = (*transactionManager)(nil)

func (m *transactionManager) Begin(_ context.Context) (portsrepo.UnitOfWork, error) {
	return &unitOfWork{store: m.store, held: make(map[int64]bool)}, nil
}

// unitOfWork buffers balance changes and entries and publishes them together on
// Commit. Readers never observe a partially applied unit.
type unitOfWork struct {
	store    *Store
	held     map[int64]bool
	changes  []domain.BalanceChange
	appended []domain.LedgerEntry
	finished bool
}

var (
	_ portsrepo.UnitOfWork     = (*unitOfWork)(nil)
	_ portsrepo.AccountTxStore = (*unitOfWork)(nil)
	_ portsrepo.LedgerTxStore  = (*unitOfWork)(nil)
)

func (u *unitOfWork) Accounts() portsrepo.AccountTxStore { return u }
func (u *unitOfWork) Ledger() portsrepo.LedgerTxStore    { return u }

func (u *unitOfWork) GetForUpdate(ctx context.Context, customerID, accountID int64) (*domain.Account, error) {
	if u.finished {
		return nil, errUnitFinished
	}
	if !u.held[accountID] {
		if err := u.store.lockAccount(ctx, accountID); err != nil {
			return nil, err
		}
		u.held[accountID] = true
	}

	u.store.mu.RLock()
	defer u.store.mu.RUnlock()
	return u.store.ownedAccount(customerID, accountID)
}

func (u *unitOfWork) CommitBalances(_ context.Context, changes []domain.BalanceChange) error {
	if u.finished {
		return errUnitFinished
	}
	u.store.mu.RLock()
	defer u.store.mu.RUnlock()
	for _, c := range changes {
		a, ok := u.store.accounts[c.AccountID]
		if !ok {
			return fmt.Errorf("%w: account %d", apperrors.ErrNotFound, c.AccountID)
		}
		if a.Version != c.ExpectedVersion {
			return fmt.Errorf("%w: account %d is at version %d, expected %d",
				apperrors.ErrConcurrencyConflict, c.AccountID, a.Version, c.ExpectedVersion)
		}
	}
	u.changes = append(u.changes, changes...)
	return nil
}

func (u *unitOfWork) Append(_ context.Context, entries []domain.LedgerEntry) ([]domain.LedgerEntry, error) {
	if u.finished {
		return nil, errUnitFinished
	}
	s := u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.LedgerEntry, len(entries))
	now := s.now()
	for i, e := range entries {
		if _, ok := s.accounts[e.AccountID]; !ok {
			return nil, fmt.Errorf("%w: account %d", apperrors.ErrNotFound, e.AccountID)
		}
		s.nextEntryID++
		e.EntryID = s.nextEntryID
		e.CreatedAt = now
		out[i] = e
	}
	u.appended = append(u.appended, out...)
	return out, nil
}

func (u *unitOfWork) Commit(_ context.Context) error {
	if u.finished {
		return errUnitFinished
	}
	defer u.release()

	s := u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	// versions are verified again because CommitBalances ran under a read lock
	for _, c := range u.changes {
		if s.accounts[c.AccountID].Version != c.ExpectedVersion {
			return fmt.Errorf("%w: account %d changed before commit", apperrors.ErrConcurrencyConflict, c.AccountID)
		}
	}
	for _, c := range u.changes {
		a := s.accounts[c.AccountID]
		a.Balance = c.NewBalance
		a.Version++
		s.accounts[c.AccountID] = a
	}
	for _, e := range u.appended {
		s.entries[e.AccountID] = append(s.entries[e.AccountID], e)
	}
	return nil
}

func (u *unitOfWork) Rollback(_ context.Context) error {
	if u.finished {
		return nil
	}
	u.release()
	return nil
}

func (u *unitOfWork) release() {
	u.finished = true
	for id := range u.held {
		u.store.unlockAccount(id)
	}
	u.held = nil
	u.changes = nil
	u.appended = nil
}
