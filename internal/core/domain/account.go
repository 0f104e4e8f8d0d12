package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType is the product category of an account.
type AccountType string

const (
	Checking   AccountType = "checking"
	Savings    AccountType = "savings"
	Mortgage   AccountType = "mortgage"
	Retirement AccountType = "retirement"
	Investing  AccountType = "investing"
)

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	switch t {
	case Checking, Savings, Mortgage, Retirement, Investing:
		return true
	}
	return false
}

// AccountStatus is the lifecycle state of an account. Accounts are never
// deleted; closure is modelled by status.
type AccountStatus string

const (
	StatusOpened    AccountStatus = "opened"
	StatusClosed    AccountStatus = "closed"
	StatusLocked    AccountStatus = "locked"
	StatusAbandoned AccountStatus = "abandoned"
)

// Valid reports whether s is one of the known account statuses.
func (s AccountStatus) Valid() bool {
	switch s {
	case StatusOpened, StatusClosed, StatusLocked, StatusAbandoned:
		return true
	}
	return false
}

// Account represents a customer account within the core domain.
type Account struct {
	AccountID      int64           `json:"id"`
	CustomerID     int64           `json:"customer_id"`
	AccountType    AccountType     `json:"account_type"`
	Balance        decimal.Decimal `json:"balance"`         // Never negative
	OpeningBalance decimal.Decimal `json:"opening_balance"` // Balance at creation, immutable
	AccountNumber  string          `json:"account_number"`  // Unique across all accounts
	RoutingNumber  string          `json:"routing_number"`
	Status         AccountStatus   `json:"status"`
	Active         bool            `json:"active"`
	Version        int64           `json:"-"` // Incremented on every balance commit
	CreatedAt      time.Time       `json:"created_at"`
}

// Transferable reports whether the account may take part in a transfer.
// Status and the active flag gate independently.
func (a Account) Transferable() bool {
	return a.Status == StatusOpened && a.Active
}

// CanDebit reports whether the balance covers amount without going negative.
func (a Account) CanDebit(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}

// Validate checks the fields an account must carry before it is persisted.
func (a Account) Validate() error {
	if !a.AccountType.Valid() {
		return fmt.Errorf("unknown account type %q", a.AccountType)
	}
	if !a.Status.Valid() {
		return fmt.Errorf("unknown account status %q", a.Status)
	}
	if a.AccountNumber == "" {
		return fmt.Errorf("account number is required")
	}
	if a.Balance.IsNegative() {
		return fmt.Errorf("balance must not be negative")
	}
	if !Representable(a.Balance) {
		return fmt.Errorf("balance must have at most %d integer and %d fractional digits", MoneyIntegerDigits, MoneyScale)
	}
	return nil
}
