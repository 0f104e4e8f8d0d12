package services

import (
	"context"

	"github.com/SscSPs/customer_ledger_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransferSvc moves funds between two accounts of the same customer as one atomic unit.
type TransferSvc interface {
	Transfer(ctx context.Context, customerID, fromAccountID, toAccountID int64, amount decimal.Decimal) (*domain.TransferReceipt, error)
}
