package product

import (
	"errors"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var (
	// ErrProductIsNotConstructed is returned when attempting to use an
	// improperly initialized Product. Products must be created via NewProduct.
	ErrProductIsNotConstructed = errs.NewValueIsRequiredError(
		"product must be created via NewProduct constructor")

	// ErrProductNameIsRequired is returned when a product is constructed
	// with an empty name.
	ErrProductNameIsRequired = errs.NewValueIsRequiredError("product name")
)

// Product represents a sellable catalog entry: a name, unique within a
// catalog snapshot, and its price. Product is immutable once constructed.
type Product struct { //nolint:recvcheck //using for validation
	name  string
	price Price

	guard guard.ConstructorGuard
}

// NewProduct creates a Product from a non-empty name and a valid price.
func NewProduct(name string, price Price) (Product, error) {
	if name == "" {
		return Product{}, ErrProductNameIsRequired
	}
	if err := errors.Join(price.Validate()); err != nil {
		return Product{}, err
	}

	return Product{
		name:  name,
		price: price,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Product was properly constructed via NewProduct.
func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// Name returns the product's catalog name.
func (p Product) Name() string {
	return p.name
}

// Price returns the product's price.
func (p Product) Price() Price {
	return p.price
}

// Matches reports whether the product carries exactly the given name.
func (p Product) Matches(name string) bool {
	return p.name == name
}

// IsEqual compares two products by name and price.
func (p Product) IsEqual(other Product) bool {
	return p.name == other.name && p.price.IsEqual(other.price)
}
