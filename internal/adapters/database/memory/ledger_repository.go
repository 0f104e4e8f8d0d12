package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/customer_ledger_api/internal/core/domain"
	portsrepo "github.com/SscSPs/customer_ledger_api/internal/core/ports/repositories"
)

type ledgerRepository struct {
	store *Store
}

var _ portsrepo.LedgerReader = (*ledgerRepository)(nil)

func (r *ledgerRepository) ListEntriesByAccount(_ context.Context, accountID int64, afterID int64, limit int) ([]domain.LedgerEntry, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.entries[accountID]
	start := sort.Search(len(all), func(i int) bool { return all[i].EntryID > afterID })
	rest := all[start:]
	if limit > 0 && len(rest) > limit {
		rest = rest[:limit]
	}
	out := make([]domain.LedgerEntry, len(rest))
	copy(out, rest)
	return out, nil
}
