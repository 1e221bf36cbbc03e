package kernel

import (
	"github.com/shopspring/decimal"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

// ErrTaxPercentageIsNotConstructed is returned when attempting to use an improperly
// initialized TaxPercentage. Use NewTaxPercentage or TaxPercentageFromString.
var ErrTaxPercentageIsNotConstructed = errs.NewValueIsRequiredError(
	"tax percentage must be created via NewTaxPercentage or TaxPercentageFromString constructors")

// TaxPercentage represents a tax rate as an exact decimal percentage in the
// range [0,100]. It is an immutable value object; the zero value is invalid
// and will fail validation.
//
// Example:
//
//	rate, err := kernel.TaxPercentageFromString("10")
//	if err != nil {
//	    // Handle validation error
//	}
//	base, _ := kernel.MoneyFromString("3.56")
//	tax := rate.TaxOn(base) // 0.36
type TaxPercentage struct { //nolint:recvcheck //using for validation
	value decimal.Decimal
	guard guard.ConstructorGuard
}

// NewTaxPercentage creates a TaxPercentage from an exact decimal value.
// The value must lie in [0,100].
//
// Returns:
//   - TaxPercentage: A valid tax percentage instance
//   - error: Out-of-range error if the value is below 0 or above 100
func NewTaxPercentage(value decimal.Decimal) (TaxPercentage, error) {
	if value.IsNegative() || value.GreaterThan(decimal.NewFromInt(100)) {
		return TaxPercentage{}, errs.NewValueIsOutOfRangeError("taxPercentage", value.String(), "0", "100")
	}

	return TaxPercentage{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// TaxPercentageFromString creates a TaxPercentage from its decimal string
// representation, such as "10" or "22.5".
func TaxPercentageFromString(value string) (TaxPercentage, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return TaxPercentage{}, errs.NewValueIsInvalidErrorWithCause("taxPercentage", err)
	}

	return NewTaxPercentage(d)
}

// Validate checks if the TaxPercentage was properly constructed using a constructor.
func (p TaxPercentage) Validate() error {
	return p.guard.Validate(ErrTaxPercentageIsNotConstructed)
}

// TaxOn computes the tax owed on the given base amount:
// round(amount × percentage / 100, MoneyScale, half-up).
// Rounding is applied here, at the unit level, before any multiplication
// by quantity happens downstream.
func (p TaxPercentage) TaxOn(amount Money) Money {
	tax := amount.Decimal().Mul(p.value).Div(decimal.NewFromInt(100)).Round(MoneyScale)
	return Money{
		amount: tax,
		guard:  guard.NewConstructorGuard(),
	}
}

// IsEqual compares two tax percentages by numeric value.
func (p TaxPercentage) IsEqual(other TaxPercentage) bool {
	return p.value.Equal(other.value)
}

// Decimal returns the underlying exact decimal value.
func (p TaxPercentage) Decimal() decimal.Decimal {
	return p.value
}

// String returns the percentage as a plain decimal string, e.g. "10".
func (p TaxPercentage) String() string {
	return p.value.String()
}
