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
	"github.com/SscSPs/customer_ledger_api/internal/utils/accounting"
	"github.com/SscSPs/customer_ledger_api/internal/utils/pagination"
)

type ledgerService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	ledgerRepo  portsrepo.LedgerReader
	txManager   portsrepo.TransactionManager
}

func NewLedgerService(accountRepo portsrepo.AccountReader, ledgerRepo portsrepo.LedgerReader, txManager portsrepo.TransactionManager) portssvc.LedgerReaderSvc {
	return &ledgerService{accountRepo: accountRepo, ledgerRepo: ledgerRepo, txManager: txManager}
}

var _ portssvc.LedgerReaderSvc = (*ledgerService)(nil)

func (s *ledgerService) findAccount(ctx context.Context, customerID, accountID int64) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccount(ctx, customerID, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account for ledger",
				slog.Int64("customer_id", customerID),
				slog.Int64("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

// GetLedger returns one page of entries. One extra row is fetched to learn
// whether a next page exists.
func (s *ledgerService) GetLedger(ctx context.Context, customerID, accountID int64, params dto.ListLedgerParams) (*dto.ListLedgerResponse, error) {
	if _, err := s.findAccount(ctx, customerID, accountID); err != nil {
		return nil, err
	}

	var afterID int64
	if params.NextToken != nil && *params.NextToken != "" {
		decoded, err := pagination.DecodeCursorToken(*params.NextToken, accountID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		afterID = decoded
	}

	fetch := 0
	if params.Limit > 0 {
		fetch = params.Limit + 1
	}
	entries, err := s.ledgerRepo.ListEntriesByAccount(ctx, accountID, afterID, fetch)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries", slog.Int64("account_id", accountID))
		return nil, err
	}

	resp := &dto.ListLedgerResponse{}
	if params.Limit > 0 && len(entries) > params.Limit {
		entries = entries[:params.Limit]
		token := pagination.EncodeCursorToken(accountID, entries[len(entries)-1].EntryID)
		resp.NextToken = &token
	}
	resp.Entries = dto.ToLedgerEntryResponses(entries)
	return resp, nil
}

// Reconcile holds the account lock while reading the ledger, so no transfer can
// commit between the balance read and the entry read. Nothing is written.
func (s *ledgerService) Reconcile(ctx context.Context, customerID, accountID int64) (*domain.Reconciliation, error) {
	if _, err := s.findAccount(ctx, customerID, accountID); err != nil {
		return nil, err
	}

	uow, err := s.txManager.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin reconciliation", slog.Int64("account_id", accountID))
		return nil, err
	}
	defer uow.Rollback(ctx)

	account, err := uow.Accounts().GetForUpdate(ctx, customerID, accountID)
	if err != nil {
		return nil, err
	}
	entries, err := s.ledgerRepo.ListEntriesByAccount(ctx, accountID, 0, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries for reconciliation", slog.Int64("account_id", accountID))
		return nil, err
	}

	r := accounting.Reconcile(*account, entries)
	if !r.Consistent {
		s.LogWarn(ctx, "Account balance does not match its ledger",
			slog.Int64("account_id", accountID),
			slog.String("balance", r.Balance.String()),
			slog.String("expected", r.Expected.String()))
	}
	return &r, nil
}
