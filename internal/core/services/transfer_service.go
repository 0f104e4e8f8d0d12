package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SscSPs/customer_ledger_api/internal/apperrors"
	"github.com/SscSPs/customer_ledger_api/internal/core/domain"
	portsrepo "github.com/SscSPs/customer_ledger_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/customer_ledger_api/internal/core/ports/services"
	"github.com/SscSPs/customer_ledger_api/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// TransferCompletedEvent is the analytics event sent after a committed transfer.
const TransferCompletedEvent = "transfer_completed"

// EventTracker receives analytics events. Implementations must not block.
type EventTracker interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}

type transferService struct {
	BaseService
	customerRepo portsrepo.CustomerReader
	accountRepo  portsrepo.AccountReader
	txManager    portsrepo.TransactionManager
	tracker      EventTracker
	maxRetries   int
	backoff      time.Duration
}

// TransferOption is a functional option for configuring the transfer service
type TransferOption func(*transferService)

// WithRetryPolicy sets how often a transfer that lost a concurrency race is
// retried, and the initial backoff which doubles on every attempt.
func WithRetryPolicy(maxRetries int, backoff time.Duration) TransferOption {
	return func(s *transferService) {
		s.maxRetries = maxRetries
		s.backoff = backoff
	}
}

// WithEventTracker adds an analytics sink for completed transfers.
func WithEventTracker(tracker EventTracker) TransferOption {
	return func(s *transferService) {
		s.tracker = tracker
	}
}

// NewTransferService creates the transfer engine.
func NewTransferService(repos portsrepo.RepositoryProvider, options ...TransferOption) portssvc.TransferSvc {
	svc := &transferService{
		customerRepo: repos.CustomerRepo,
		accountRepo:  repos.AccountRepo,
		txManager:    repos.TxManager,
		maxRetries:   3,
		backoff:      10 * time.Millisecond,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransferSvc = (*transferService)(nil)

// Transfer validates the request against committed state, then moves the funds in
// one unit of work. Both accounts are locked in ascending id order and every
// precondition is checked again on the locked rows before anything is written.
func (s *transferService) Transfer(ctx context.Context, customerID, fromAccountID, toAccountID int64, amount decimal.Decimal) (*domain.TransferReceipt, error) {
	logger := s.GetLogger(ctx).With(
		slog.Int64("customer_id", customerID),
		slog.Int64("from_account_id", fromAccountID),
		slog.Int64("to_account_id", toAccountID),
		slog.String("amount", amount.String()),
	)

	if !domain.ValidAmount(amount) {
		return nil, fmt.Errorf("%w: got %s", apperrors.ErrInvalidAmount, amount.String())
	}
	if fromAccountID == toAccountID {
		return nil, fmt.Errorf("%w: source and destination are the same account", apperrors.ErrInvalidTransfer)
	}

	if err := s.precheck(ctx, customerID, fromAccountID, toAccountID, amount); err != nil {
		if isUnexpected(err) {
			logger.Error("Transfer precheck failed", slog.String("error", err.Error()))
		} else {
			logger.Info("Transfer rejected", slog.String("reason", err.Error()))
		}
		return nil, err
	}

	var err error
	attempts := 0
	for {
		attempts++
		err = s.transferOnce(ctx, customerID, fromAccountID, toAccountID, amount)
		if err == nil || !errors.Is(err, apperrors.ErrConcurrencyConflict) || attempts > s.maxRetries {
			break
		}
		wait := s.backoff << (attempts - 1)
		logger.Warn("Transfer lost a concurrency race, retrying",
			slog.Int("attempt", attempts),
			slog.Duration("backoff", wait))
		if sleepErr := sleepCtx(ctx, wait); sleepErr != nil {
			err = sleepErr
			break
		}
	}

	if err != nil {
		if errors.Is(err, apperrors.ErrConcurrencyConflict) {
			logger.Error("Transfer abandoned after repeated conflicts", slog.Int("attempts", attempts))
			return nil, fmt.Errorf("%w: transfer abandoned after %d attempts: %v", apperrors.ErrInternal, attempts, err)
		}
		if isUnexpected(err) {
			logger.Error("Transfer failed", slog.String("error", err.Error()), slog.Int("attempts", attempts))
		} else {
			logger.Info("Transfer rejected", slog.String("reason", err.Error()))
		}
		return nil, err
	}

	logger.Info("Transfer committed", slog.Int("attempts", attempts))
	if s.tracker != nil {
		s.tracker.Enqueue(strconv.FormatInt(customerID, 10), TransferCompletedEvent, map[string]any{
			"amount":   amount.String(),
			"attempts": attempts,
		})
	}

	return &domain.TransferReceipt{
		FromAccountID: fromAccountID,
		ToAccountID:   toAccountID,
		Amount:        amount,
	}, nil
}

// precheck runs the cheap rejections on unlocked reads in a fixed order so
// callers see a deterministic error for a request that is wrong in several ways.
func (s *transferService) precheck(ctx context.Context, customerID, fromAccountID, toAccountID int64, amount decimal.Decimal) error {
	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		return err
	}
	from, err := s.accountRepo.FindAccount(ctx, customerID, fromAccountID)
	if err != nil {
		return err
	}
	to, err := s.accountRepo.FindAccount(ctx, customerID, toAccountID)
	if err != nil {
		return err
	}
	_, err = accounting.ApplyTransfer(*from, *to, amount)
	return err
}

func (s *transferService) transferOnce(ctx context.Context, customerID, fromAccountID, toAccountID int64, amount decimal.Decimal) error {
	uow, err := s.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer uow.Rollback(ctx)

	// Ascending id order keeps two opposite transfers from deadlocking.
	firstID, secondID := fromAccountID, toAccountID
	if secondID < firstID {
		firstID, secondID = secondID, firstID
	}
	locked := make(map[int64]*domain.Account, 2)
	for _, id := range []int64{firstID, secondID} {
		a, err := uow.Accounts().GetForUpdate(ctx, customerID, id)
		if err != nil {
			return err
		}
		locked[id] = a
	}
	from, to := *locked[fromAccountID], *locked[toAccountID]

	changes, err := accounting.ApplyTransfer(from, to, amount)
	if err != nil {
		return err
	}
	if err := uow.Accounts().CommitBalances(ctx, changes); err != nil {
		return err
	}
	if _, err := uow.Ledger().Append(ctx, domain.TransferEntries(from, to, amount)); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

// isUnexpected reports whether err is not one of the business rejections.
func isUnexpected(err error) bool {
	for _, known := range []error{
		apperrors.ErrNotFound,
		apperrors.ErrInsufficientFunds,
		apperrors.ErrAccountNotTransferable,
		apperrors.ErrValidation,
		apperrors.ErrInvalidAmount,
		context.Canceled,
		context.DeadlineExceeded,
	} {
		if errors.Is(err, known) {
			return false
		}
	}
	return true
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
