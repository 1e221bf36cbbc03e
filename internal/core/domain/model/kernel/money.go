package kernel

import (
	"github.com/shopspring/decimal"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

// MoneyScale is the number of fractional digits every derived monetary
// value is rounded to.
const MoneyScale = 2

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money must be created via NewMoney, MoneyFromString, or ZeroMoney to ensure validity.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, MoneyFromString, or ZeroMoney constructors")

// Money represents a non-negative monetary amount backed by an exact
// fixed-point decimal. Binary floating point is never used, so repeated
// additions do not accumulate rounding drift.
//
// Money is an immutable value object. The zero value is invalid and will
// fail validation - use the constructors to create instances.
//
// Example:
//
//	price, err := kernel.MoneyFromString("3.56")
//	if err != nil {
//	    // Handle validation error
//	}
//	total := price.MultiplyBy(2) // 7.12
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money from an exact decimal amount.
// The amount must not be negative.
//
// Returns:
//   - Money: A valid money instance
//   - error: Validation error if the amount is negative
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			errs.NewValueIsRequiredError("amount must not be negative"))
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromString creates a Money from its exact decimal string
// representation, such as "3.56" or "0.00".
//
// Returns:
//   - Money: A valid money instance
//   - error: Validation error if the string is not a decimal or is negative
func MoneyFromString(value string) (Money, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}

	return NewMoney(amount)
}

// ZeroMoney creates a Money holding exactly zero.
// Fresh orders start their running total and tax from this value.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate checks if the Money was properly constructed using a constructor.
// The zero value of Money is invalid and will fail this validation.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Add returns the exact sum of this amount and the other amount.
// No rounding is applied; both operands already carry at most MoneyScale
// fractional digits.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// MultiplyBy returns this amount multiplied by a whole quantity, rounded
// half-up to MoneyScale fractional digits. Rounding happens once per derived
// value, immediately after the multiplication.
func (m Money) MultiplyBy(quantity int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))).Round(MoneyScale),
		guard:  guard.NewConstructorGuard(),
	}
}

// IsEqual compares two monetary amounts by numeric value, so "7.8" and
// "7.80" are equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying exact decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the amount formatted with exactly MoneyScale fractional
// digits, e.g. "7.84". This is the canonical persistence format.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}
