package ports

import (
	"context"

	"sales/internal/core/domain/model/product"
)

// ProductCatalog resolves product names against the catalog of sellable
// products in a single call. The returned snapshot is fully resolved:
// if any requested name is unknown, or the request is empty, the call fails
// with product.ErrUnknownProduct and no snapshot is produced.
type ProductCatalog interface {
	ProductsWith(ctx context.Context, names []string) (product.Products, error)
}
