package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccount_Transferable(t *testing.T) {
	tests := []struct {
		name   string
		status AccountStatus
		active bool
		want   bool
	}{
		{"opened and active", StatusOpened, true, true},
		{"opened but inactive", StatusOpened, false, false},
		{"closed", StatusClosed, true, false},
		{"locked", StatusLocked, true, false},
		{"abandoned", StatusAbandoned, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Account{Status: tt.status, Active: tt.active}
			assert.Equal(t, tt.want, a.Transferable())
		})
	}
}

func TestAccount_CanDebit(t *testing.T) {
	a := Account{Balance: decimal.RequireFromString("10.00")}
	assert.True(t, a.CanDebit(decimal.RequireFromString("10")))
	assert.True(t, a.CanDebit(decimal.RequireFromString("0.01")))
	assert.False(t, a.CanDebit(decimal.RequireFromString("10.01")))
}

func TestAccount_Validate(t *testing.T) {
	valid := Account{
		AccountType:   Checking,
		Status:        StatusOpened,
		AccountNumber: "0001",
		Balance:       decimal.RequireFromString("10.000"),
	}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.AccountType = "brokerage"
	assert.Error(t, bad.Validate())

	bad = valid
	bad.Status = "frozen"
	assert.Error(t, bad.Validate())

	bad = valid
	bad.AccountNumber = ""
	assert.Error(t, bad.Validate())

	bad = valid
	bad.Balance = decimal.RequireFromString("-1")
	assert.Error(t, bad.Validate())

	bad = valid
	bad.Balance = decimal.RequireFromString("1.005")
	assert.Error(t, bad.Validate())

	bad = valid
	bad.Balance = decimal.RequireFromString("100000000000000000")
	assert.Error(t, bad.Validate())
}

func TestValidAmount(t *testing.T) {
	assert.True(t, ValidAmount(decimal.RequireFromString("0.01")))
	assert.True(t, ValidAmount(decimal.RequireFromString("50")))
	assert.False(t, ValidAmount(decimal.Zero))
	assert.False(t, ValidAmount(decimal.RequireFromString("-5")))
	assert.False(t, ValidAmount(decimal.RequireFromString("1.001")))
	assert.True(t, ValidAmount(decimal.RequireFromString("99999999999999999.99")))
	assert.False(t, ValidAmount(decimal.RequireFromString("100000000000000000")))
}

func TestTransferEntries(t *testing.T) {
	from := Account{AccountID: 1}
	to := Account{AccountID: 2}
	entries := TransferEntries(from, to, decimal.RequireFromString("5"))

	assert.Len(t, entries, 2)
	assert.Equal(t, int64(2), entries[0].AccountID)
	assert.Equal(t, Credit, entries[0].TransactionType)
	assert.Equal(t, TransferIn, entries[0].Details)
	assert.Equal(t, int64(1), entries[1].AccountID)
	assert.Equal(t, Debit, entries[1].TransactionType)
	assert.Equal(t, TransferAway, entries[1].Details)
	assert.True(t, entries[0].SignedAmount().Add(entries[1].SignedAmount()).IsZero())
}
