package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// minorUnitPlaces is the number of decimal places of the currency minor unit.
const minorUnitPlaces = 2

// Money is an immutable value object for monetary amounts.
// All amounts are in the platform's single settlement currency.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates Money from a decimal amount
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// NewMoneyFromFloat creates Money from a float64 value
func NewMoneyFromFloat(amount float64) Money {
	return Money{amount: decimal.NewFromFloat(amount)}
}

// NewMoneyFromString creates Money from a string representation
func NewMoneyFromString(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount string: %w", err)
	}
	return Money{amount: d}, nil
}

// Zero returns a zero-valued Money
func Zero() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the underlying decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two Money values
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two Money values
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Percent returns the given integer percentage of the amount,
// rounded half-up to the currency minor unit.
func (m Money) Percent(pct int) Money {
	share := m.amount.Mul(decimal.NewFromInt(int64(pct))).Div(decimal.NewFromInt(100))
	return Money{amount: share.Round(minorUnitPlaces)}
}

// Round returns the amount rounded half-up to the currency minor unit
func (m Money) Round() Money {
	return Money{amount: m.amount.Round(minorUnitPlaces)}
}

// IsNegative reports whether the amount is negative
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether the amount is zero
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equals reports whether two Money values are equal
func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the amount formatted to the currency minor unit
func (m Money) String() string {
	return m.amount.StringFixed(minorUnitPlaces)
}
