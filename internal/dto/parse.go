package dto

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/customer_ledger_api/internal/apperrors"
	"github.com/SscSPs/customer_ledger_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ParseID parses a positive integer identifier. Signs, whitespace and fractions are rejected.
func ParseID(name, raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: %s", apperrors.ErrMissingParameter, name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 || strings.HasPrefix(raw, "+") {
		return 0, fmt.Errorf("%w: %s must be a positive integer", apperrors.ErrValidation, name)
	}
	return id, nil
}

// maxDecimalLen bounds the raw text of an amount or balance: 17 integer digits,
// a point, 2 fractional digits and a few spare for signs and trailing zeros.
const maxDecimalLen = 24

// plainDecimal rejects text the decimal parser would expand, such as exponents.
func plainDecimal(raw string) bool {
	return len(raw) <= maxDecimalLen && !strings.ContainsAny(raw, "eE")
}

// ParseAmount parses a transfer amount. Anything other than a positive plain decimal
// with at most 17 integer and two fractional digits is ErrInvalidAmount.
func ParseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: amount", apperrors.ErrMissingParameter)
	}
	raw = strings.TrimSpace(raw)
	if !plainDecimal(raw) {
		return decimal.Zero, fmt.Errorf("%w: amount must be a plain decimal of at most %d characters", apperrors.ErrInvalidAmount, maxDecimalLen)
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a decimal", apperrors.ErrInvalidAmount, raw)
	}
	if !domain.ValidAmount(amount) {
		return decimal.Zero, fmt.Errorf("%w: got %s", apperrors.ErrInvalidAmount, amount.String())
	}
	return amount, nil
}

// ParseBalance parses an opening balance, which may be zero but never negative.
func ParseBalance(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if !plainDecimal(raw) {
		return decimal.Zero, fmt.Errorf("%w: balance must be a plain decimal of at most %d characters", apperrors.ErrValidation, maxDecimalLen)
	}
	balance, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: balance %q is not a decimal", apperrors.ErrValidation, raw)
	}
	if balance.IsNegative() || !domain.Representable(balance) {
		return decimal.Zero, fmt.Errorf("%w: balance must be non-negative with at most %d integer and %d fractional digits", apperrors.ErrValidation, domain.MoneyIntegerDigits, domain.MoneyScale)
	}
	return balance, nil
}

// ParseBool accepts only the spellings strconv.ParseBool understands, so "false"
// is false and "no" is an error rather than a truthy string.
func ParseBool(name, raw string) (bool, error) {
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be true or false", apperrors.ErrValidation, name)
	}
	return b, nil
}

func parseOptionalBool(name string, raw *string) (*bool, error) {
	if raw == nil {
		return nil, nil
	}
	b, err := ParseBool(name, *raw)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
