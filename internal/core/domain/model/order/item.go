package order

import (
	"errors"
	"fmt"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/product"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when attempting to use an improperly
// initialized Item. Items must be created via NewItem or RestoreItem.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError(
	"order item must be created via NewItem or RestoreItem constructors")

// Item is a computed order line: a product, a quantity, and the taxed amount
// and tax amount resulting from that quantity. The amounts are derived once,
// when the product is added to the order, and never change afterwards.
type Item struct { //nolint:recvcheck //using for validation
	product     product.Product
	quantity    int
	taxedAmount kernel.Money
	taxAmount   kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates an Item for the given product and quantity, deriving the
// line's taxed amount and tax amount from the product's price.
// Quantity must be at least 1.
func NewItem(p product.Product, quantity int) (Item, error) {
	if err := p.Validate(); err != nil {
		return Item{}, err
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not at least 1", quantity))
	}

	return Item{
		product:     p,
		quantity:    quantity,
		taxedAmount: p.Price().TaxedAmountFor(quantity),
		taxAmount:   p.Price().TaxAmountFor(quantity),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreItem rehydrates an Item from persistence with its already computed
// amounts. Use NewItem for new lines so the amounts are derived from the price.
func RestoreItem(p product.Product, quantity int, taxedAmount, taxAmount kernel.Money) (Item, error) {
	if err := errors.Join(p.Validate(), taxedAmount.Validate(), taxAmount.Validate()); err != nil {
		return Item{}, err
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not at least 1", quantity))
	}

	return Item{
		product:     p,
		quantity:    quantity,
		taxedAmount: taxedAmount,
		taxAmount:   taxAmount,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Item was properly constructed via a constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Product returns the catalog product this line sells.
func (i Item) Product() product.Product {
	return i.product
}

// Quantity returns the number of units sold on this line.
func (i Item) Quantity() int {
	return i.quantity
}

// TaxedAmount returns the tax-inclusive amount for the whole line.
func (i Item) TaxedAmount() kernel.Money {
	return i.taxedAmount
}

// TaxAmount returns the tax owed for the whole line.
func (i Item) TaxAmount() kernel.Money {
	return i.taxAmount
}
