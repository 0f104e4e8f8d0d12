package utils

import (
	"github.com/SscSPs/customer_ledger_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatAmount formats an amount with the ledger's fixed precision, e.g. 50 -> "50.00".
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(domain.MoneyScale)
}

