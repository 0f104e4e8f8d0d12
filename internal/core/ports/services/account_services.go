package services

import (
	"context"

	"github.com/SscSPs/customer_ledger_api/internal/core/domain"
	"github.com/SscSPs/customer_ledger_api/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccount retrieves an account owned by the customer.
	GetAccount(ctx context.Context, customerID, accountID int64) (*domain.Account, error)

	// ListAccounts retrieves every account owned by the customer.
	ListAccounts(ctx context.Context, customerID int64) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount opens a new account for the customer.
	CreateAccount(ctx context.Context, customerID int64, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount updates an existing account's non-balance fields.
	UpdateAccount(ctx context.Context, customerID, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
