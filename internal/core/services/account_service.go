package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/customer_ledger_api/internal/apperrors"
	"github.com/SscSPs/customer_ledger_api/internal/core/domain"
	portsrepo "github.com/SscSPs/customer_ledger_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/customer_ledger_api/internal/core/ports/services"
	"github.com/SscSPs/customer_ledger_api/internal/dto"
)

type accountService struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	customerRepo portsrepo.CustomerReader
}

// NewAccountService creates a new account service. Every operation first
// resolves the customer so a missing customer is reported as not found.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, customerRepo portsrepo.CustomerReader) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo, customerRepo: customerRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) requireCustomer(ctx context.Context, customerID int64) error {
	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find customer", slog.Int64("customer_id", customerID))
		}
		return err
	}
	return nil
}

func (s *accountService) CreateAccount(ctx context.Context, customerID int64, req dto.CreateAccountRequest) (*domain.Account, error) {
	if err := s.requireCustomer(ctx, customerID); err != nil {
		return nil, err
	}

	account := domain.Account{
		CustomerID:     customerID,
		AccountType:    req.AccountType,
		Balance:        req.Balance,
		OpeningBalance: req.Balance,
		AccountNumber:  req.AccountNumber,
		RoutingNumber:  req.RoutingNumber,
		Status:         req.Status,
		Active:         req.Active,
	}
	if err := account.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	saved, err := s.accountRepo.SaveAccount(ctx, account)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save account in repository", slog.Int64("customer_id", customerID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.Int64("customer_id", customerID),
		slog.Int64("account_id", saved.AccountID))
	return saved, nil
}

func (s *accountService) GetAccount(ctx context.Context, customerID, accountID int64) (*domain.Account, error) {
	if err := s.requireCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	account, err := s.accountRepo.FindAccount(ctx, customerID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account",
				slog.Int64("customer_id", customerID),
				slog.Int64("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, customerID int64) ([]domain.Account, error) {
	if err := s.requireCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.ListAccountsByCustomer(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.Int64("customer_id", customerID))
		return nil, err
	}
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, customerID, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.GetAccount(ctx, customerID, accountID)
	if err != nil {
		return nil, err
	}

	req.Apply(account)
	if err := account.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to update account in repository", slog.Int64("account_id", accountID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account updated successfully", slog.Int64("account_id", accountID))
	// re-read so the returned balance is the committed one
	return s.accountRepo.FindAccount(ctx, customerID, accountID)
}
