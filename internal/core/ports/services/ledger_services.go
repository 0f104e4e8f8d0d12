package services

import (
	"context"

	"github.com/SscSPs/customer_ledger_api/internal/core/domain"
	"github.com/SscSPs/customer_ledger_api/internal/dto"
)

// LedgerReaderSvc is the read model over committed ledger entries. It never mutates.
type LedgerReaderSvc interface {
	// GetLedger returns the account's entries in creation order.
	GetLedger(ctx context.Context, customerID, accountID int64, params dto.ListLedgerParams) (*dto.ListLedgerResponse, error)

	// Reconcile compares the account balance with its opening balance plus ledger.
	Reconcile(ctx context.Context, customerID, accountID int64) (*domain.Reconciliation, error)
}
