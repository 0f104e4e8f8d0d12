package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a ledger entry debits or credits its account.
type TransactionType string

const (
	Debit  TransactionType = "debit"
	Credit TransactionType = "credit"
)

// EntryDetails is the category of a ledger entry.
type EntryDetails string

const (
	DebitCardPurchase EntryDetails = "debit_card_purchase"
	DirectDeposit     EntryDetails = "direct_deposit"
	TransferIn        EntryDetails = "transfer_in"
	CashedCheck       EntryDetails = "cashed_check"
	TransferAway      EntryDetails = "transfer_away"
	CashDeposit       EntryDetails = "cash_deposit"
)

// Valid reports whether d is one of the known categories.
func (d EntryDetails) Valid() bool {
	switch d {
	case DebitCardPurchase, DirectDeposit, TransferIn, CashedCheck, TransferAway, CashDeposit:
		return true
	}
	return false
}

// LedgerEntry is an immutable record of one effect on exactly one account.
// Amount is always positive; the direction is carried by TransactionType.
type LedgerEntry struct {
	EntryID         int64           `json:"id"`
	AccountID       int64           `json:"account_id"`
	TransactionType TransactionType `json:"transaction_type"`
	Amount          decimal.Decimal `json:"amount"`
	Details         EntryDetails    `json:"details"`
	CreatedAt       time.Time       `json:"created_at"`
}

// SignedAmount returns the entry's effect on the account balance.
func (e LedgerEntry) SignedAmount() decimal.Decimal {
	if e.TransactionType == Debit {
		return e.Amount.Neg()
	}
	return e.Amount
}

// Reconciliation compares an account balance with the sum of its ledger.
type Reconciliation struct {
	AccountID      int64           `json:"account_id"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Credits        decimal.Decimal `json:"credits"`
	Debits         decimal.Decimal `json:"debits"`
	Expected       decimal.Decimal `json:"expected_balance"`
	Balance        decimal.Decimal `json:"balance"`
	EntryCount     int             `json:"entry_count"`
	Consistent     bool            `json:"consistent"`
}
