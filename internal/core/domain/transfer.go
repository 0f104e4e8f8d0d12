package domain

import "github.com/shopspring/decimal"

// TransferReceipt is returned after a transfer has committed.
type TransferReceipt struct {
	FromAccountID int64           `json:"from_account"`
	ToAccountID   int64           `json:"to_account"`
	Amount        decimal.Decimal `json:"amount"`
}

// BalanceChange is a compare-and-swap of one account balance. The write only
// applies while the stored version still equals ExpectedVersion.
type BalanceChange struct {
	AccountID       int64
	NewBalance      decimal.Decimal
	ExpectedVersion int64
}

// TransferEntries builds the double entry for moving amount from one account to another.
// The credit leg is listed first, matching the order both entries are appended in.
func TransferEntries(from, to Account, amount decimal.Decimal) []LedgerEntry {
	return []LedgerEntry{
		{AccountID: to.AccountID, TransactionType: Credit, Amount: amount, Details: TransferIn},
		{AccountID: from.AccountID, TransactionType: Debit, Amount: amount, Details: TransferAway},
	}
}
