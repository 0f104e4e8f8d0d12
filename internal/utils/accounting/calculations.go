package accounting

import (
	"fmt"

	"github.com/SscSPs/customer_ledger_api/internal/apperrors"
	"github.com/SscSPs/customer_ledger_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ApplyTransfer computes the balance changes for moving amount between two locked accounts.
// Each change expects the version the account was read at and carries the debited or
// credited balance. Funds and status are re-checked here because the accounts are locked.
func ApplyTransfer(from, to domain.Account, amount decimal.Decimal) ([]domain.BalanceChange, error) {
	if !from.CanDebit(amount) {
		return nil, fmt.Errorf("%w: account %d", apperrors.ErrInsufficientFunds, from.AccountID)
	}
	if !from.Transferable() {
		return nil, fmt.Errorf("%w: account %d", apperrors.ErrAccountNotTransferable, from.AccountID)
	}
	if !to.Transferable() {
		return nil, fmt.Errorf("%w: account %d", apperrors.ErrAccountNotTransferable, to.AccountID)
	}
	credited := to.Balance.Add(amount)
	if !domain.Representable(credited) {
		return nil, fmt.Errorf("%w: balance of account %d would exceed the storable range", apperrors.ErrValidation, to.AccountID)
	}
	return []domain.BalanceChange{
		{AccountID: from.AccountID, NewBalance: from.Balance.Sub(amount), ExpectedVersion: from.Version},
		{AccountID: to.AccountID, NewBalance: credited, ExpectedVersion: to.Version},
	}, nil
}

// Reconcile folds entries onto the account's opening balance and compares the
// result with the stored balance.
func Reconcile(account domain.Account, entries []domain.LedgerEntry) domain.Reconciliation {
	credits, debits := decimal.Zero, decimal.Zero
	for _, e := range entries {
		switch e.TransactionType {
		case domain.Credit:
			credits = credits.Add(e.Amount)
		case domain.Debit:
			debits = debits.Add(e.Amount)
		}
	}
	expected := account.OpeningBalance.Add(credits).Sub(debits)
	return domain.Reconciliation{
		AccountID:      account.AccountID,
		OpeningBalance: account.OpeningBalance,
		Credits:        credits,
		Debits:         debits,
		Expected:       expected,
		Balance:        account.Balance,
		EntryCount:     len(entries),
		Consistent:     expected.Equal(account.Balance),
	}
}

// SumSigned returns the net effect of entries on a balance.
func SumSigned(entries []domain.LedgerEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.SignedAmount())
	}
	return total
}
