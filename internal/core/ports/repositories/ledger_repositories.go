package repositories

import (
	"context"

	"github.com/SscSPs/customer_ledger_api/internal/core/domain"
)

// LedgerReader defines read operations for ledger entries.
type LedgerReader interface {
	// ListEntriesByAccount returns the account's entries in creation order, starting
	// after afterID (0 for the beginning). limit <= 0 returns every remaining entry.
	ListEntriesByAccount(ctx context.Context, accountID int64, afterID int64, limit int) ([]domain.LedgerEntry, error)
}

// LedgerTxStore is the ledger side of a unit of work. Entries are append-only.
type LedgerTxStore interface {
	// Append writes entries and returns them with ids and creation time assigned.
	Append(ctx context.Context, entries []domain.LedgerEntry) ([]domain.LedgerEntry, error)
}
