package product

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

// ErrPriceIsNotConstructed is returned when attempting to use an improperly
// initialized Price. Prices must be created via NewPrice.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"price must be created via NewPrice constructor")

// Price represents what a product costs: a base amount and the tax
// percentage applied on top of it. Price is an immutable value object.
//
// Derived values:
//   - UnitTax = round(amount × taxPercentage / 100, 2, half-up)
//   - UnitTaxedAmount = amount + UnitTax
//
// Per-quantity amounts are rounded again after multiplying, so the order of
// rounding is fixed: once at the unit level, once per derived quantity value.
type Price struct { //nolint:recvcheck //using for validation
	amount        kernel.Money
	taxPercentage kernel.TaxPercentage

	guard guard.ConstructorGuard
}

// NewPrice creates a Price from a base amount and a tax percentage.
// Both components must themselves be properly constructed.
func NewPrice(amount kernel.Money, taxPercentage kernel.TaxPercentage) (Price, error) {
	if err := errors.Join(amount.Validate(), taxPercentage.Validate()); err != nil {
		return Price{}, err
	}

	return Price{
		amount:        amount,
		taxPercentage: taxPercentage,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Price was properly constructed via NewPrice.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// Amount returns the untaxed base amount.
func (p Price) Amount() kernel.Money {
	return p.amount
}

// TaxPercentage returns the tax rate applied to the base amount.
func (p Price) TaxPercentage() kernel.TaxPercentage {
	return p.taxPercentage
}

// UnitTax returns the tax owed on a single unit, rounded half-up to two
// fractional digits.
func (p Price) UnitTax() kernel.Money {
	return p.taxPercentage.TaxOn(p.amount)
}

// UnitTaxedAmount returns the tax-inclusive amount for a single unit.
func (p Price) UnitTaxedAmount() kernel.Money {
	return p.amount.Add(p.UnitTax())
}

// TaxedAmountFor returns the tax-inclusive amount for the given quantity,
// rounded half-up to two fractional digits after the multiplication.
func (p Price) TaxedAmountFor(quantity int) kernel.Money {
	return p.UnitTaxedAmount().MultiplyBy(quantity)
}

// TaxAmountFor returns the tax owed for the given quantity, rounded half-up
// to two fractional digits after the multiplication.
func (p Price) TaxAmountFor(quantity int) kernel.Money {
	return p.UnitTax().MultiplyBy(quantity)
}

// IsEqual compares two prices by amount and tax percentage.
func (p Price) IsEqual(other Price) bool {
	return p.amount.IsEqual(other.amount) && p.taxPercentage.IsEqual(other.taxPercentage)
}
