package productrepo

import (
	"context"
	"fmt"

	"sales/internal/core/domain/model/product"

	"gorm.io/gorm"
)

// GormProductCatalog implements ProductCatalog using GORM.
// Resolution is all-or-nothing: if any requested name has no catalog row,
// the whole call fails with product.ErrUnknownProduct.
type GormProductCatalog struct {
	db *gorm.DB
}

// NewGormProductCatalog creates a new GORM product catalog.
func NewGormProductCatalog(db *gorm.DB) *GormProductCatalog {
	return &GormProductCatalog{db: db}
}

// ProductsWith resolves the requested names against the catalog in one query
// and returns a fully resolved snapshot.
func (c *GormProductCatalog) ProductsWith(ctx context.Context, names []string) (product.Products, error) {
	if len(names) == 0 {
		return product.Products{}, product.ErrUnknownProduct
	}

	var dtos []ProductDTO
	if err := c.db.WithContext(ctx).Find(&dtos, "name IN ?", names).Error; err != nil {
		return product.Products{}, err
	}

	resolved := make(map[string]product.Product, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return product.Products{}, err
		}
		resolved[p.Name()] = p
	}

	products := make([]product.Product, 0, len(names))
	for _, name := range names {
		p, ok := resolved[name]
		if !ok {
			return product.Products{}, fmt.Errorf("%w: %s", product.ErrUnknownProduct, name)
		}
		products = append(products, p)
	}

	return product.NewProducts(products)
}

// Add saves a catalog product. Used for catalog seeding and administration.
func (c *GormProductCatalog) Add(ctx context.Context, p product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	return c.db.WithContext(ctx).Create(&dto).Error
}
