package testutil

import (
	"github.com/SscSPs/customer_ledger_api/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewCustomer returns an active customer ready to be saved.
func NewCustomer() domain.Customer {
	return domain.Customer{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		PhoneNumber: "555-0100",
		Email:       "ada@example.com",
		SSN:         "123-45-6789",
		Active:      true,
	}
}

// NewAccount returns an opened, active checking account for customerID with a
// unique account number.
func NewAccount(customerID int64, balance string) domain.Account {
	b := decimal.RequireFromString(balance)
	return domain.Account{
		CustomerID:     customerID,
		AccountType:    domain.Checking,
		Balance:        b,
		OpeningBalance: b,
		AccountNumber:  uuid.NewString()[:18],
		RoutingNumber:  "021000021",
		Status:         domain.StatusOpened,
		Active:         true,
	}
}
