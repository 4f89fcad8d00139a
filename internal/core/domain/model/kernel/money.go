package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Money represents a monetary amount in integer minor-currency units (e.g. paise).
// It is an immutable value object; arithmetic produces new values.
//
// Amounts supplied from outside the domain (order value, costs, fees) must be
// non-negative and are created via NewMoney. Derived amounts such as profit may
// legitimately be negative and are produced by Sub.
//
// Example:
//
//	value, _ := kernel.NewMoney(10000)
//	cost, _ := kernel.NewMoney(4000)
//	margin := value.Sub(cost) // Money worth 6000 minor units
type Money struct {
	amount int64
}

// NewMoney creates a Money value from an amount of minor-currency units.
// Returns an error if the amount is negative.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount",
			fmt.Errorf("%d is negative", amount))
	}
	return Money{amount: amount}, nil
}

// MoneyFromInt64 creates a Money value without the non-negativity check.
// It is intended for reconstructing persisted amounts and for derived values
// that may be negative (e.g. a loss-making profit figure).
func MoneyFromInt64(amount int64) Money {
	return Money{amount: amount}
}

// Amount returns the amount in minor-currency units.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two monetary amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Sub returns the difference of two monetary amounts. The result may be negative.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount - other.amount}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount < 0
}

// IsEqual compares two monetary amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String returns the amount in minor units as a decimal string.
func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}
