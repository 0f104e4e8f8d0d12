// Package memory is an in-process implementation of the repository ports.
// Committed state lives behind one RWMutex; accounts taken by a unit of work
// are additionally held by a per-account lock until it finishes.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/customer_ledger_api/internal/core/domain"
)

// Store holds every table of the in-memory backend.
type Store struct {
	mu        sync.RWMutex
	customers map[int64]domain.Customer
	accounts  map[int64]domain.Account
	entries   map[int64][]domain.LedgerEntry // by account id, ascending entry id
	numbers   map[string]int64               // account number -> account id

	nextCustomerID int64
	nextAccountID  int64
	nextEntryID    int64

	locksMu sync.Mutex
	locks   map[int64]chan struct{}

	now func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		customers: make(map[int64]domain.Customer),
		accounts:  make(map[int64]domain.Account),
		entries:   make(map[int64][]domain.LedgerEntry),
		numbers:   make(map[string]int64),
		locks:     make(map[int64]chan struct{}),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) accountLock(accountID int64) chan struct{} {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	l, ok := s.locks[accountID]
	if !ok {
		l = make(chan struct{}, 1)
		s.locks[accountID] = l
	}
	return l
}

// lockAccount blocks until the account lock is held or ctx is done.
func (s *Store) lockAccount(ctx context.Context, accountID int64) error {
	l := s.accountLock(accountID)
	select {
	case l <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) unlockAccount(accountID int64) {
	<-s.accountLock(accountID)
}
