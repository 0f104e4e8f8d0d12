package domain

import "github.com/shopspring/decimal"

// MoneyScale is the number of fractional digits stored for every amount and balance.
const MoneyScale = 2

// MoneyIntegerDigits is the number of integer digits a stored amount may carry (NUMERIC(19,2)).
const MoneyIntegerDigits = 17

// MaxMoney is the smallest magnitude that no longer fits a stored amount.
var MaxMoney = decimal.New(1, MoneyIntegerDigits)

// Representable reports whether value fits the stored money column: fewer than
// MoneyIntegerDigits+1 integer digits and no digits past MoneyScale.
func Representable(value decimal.Decimal) bool {
	if !value.Abs().LessThan(MaxMoney) {
		return false
	}
	return value.Equal(value.Truncate(MoneyScale))
}

// ValidAmount reports whether amount is strictly positive and representable at MoneyScale.
// Trailing zeros do not count, so 10.500 is accepted while 10.005 is not.
func ValidAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && Representable(amount)
}
