package product

import "errors"

// ErrUnknownProduct is returned when a catalog snapshot is built from an
// empty list or a list containing an unresolved product. It marks a
// construction-time failure: no snapshot with unknown entries ever exists.
var ErrUnknownProduct = errors.New("unknown product")

// Products is an order-preserving catalog snapshot of known products.
// Construction validates every entry, so holders of a Products value can
// rely on all of its products being resolved and well-formed.
type Products struct {
	values []Product
}

// NewProducts creates a catalog snapshot from the given list.
// Returns ErrUnknownProduct if the list is empty or any entry was never
// properly constructed (an unresolved catalog lookup).
func NewProducts(values []Product) (Products, error) {
	if len(values) == 0 {
		return Products{}, ErrUnknownProduct
	}
	for _, p := range values {
		if err := p.Validate(); err != nil {
			return Products{}, ErrUnknownProduct
		}
	}

	return Products{values: append([]Product(nil), values...)}, nil
}

// FirstWith returns the first product carrying exactly the given name.
// The second return value reports whether a match was found.
func (ps Products) FirstWith(name string) (Product, bool) {
	for _, p := range ps.values {
		if p.Matches(name) {
			return p, true
		}
	}
	return Product{}, false
}

// All returns the snapshot's products in their original order.
func (ps Products) All() []Product {
	return append([]Product(nil), ps.values...)
}
