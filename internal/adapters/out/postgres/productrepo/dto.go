// Package productrepo provides the GORM-backed product catalog.
// The catalog is read-mostly reference data; products are identified by name.
package productrepo

import (
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for catalog products.
// Price columns are stored as exact numerics, never floats.
type ProductDTO struct {
	Name          string `gorm:"primaryKey;type:varchar(255)"`
	Price         string `gorm:"type:numeric(12,2)"`
	TaxPercentage string `gorm:"type:numeric(5,2)"`
}

// TableName specifies the database table name for catalog products.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a catalog product to its database representation.
func fromDomain(p product.Product) ProductDTO {
	return ProductDTO{
		Name:          p.Name(),
		Price:         p.Price().Amount().String(),
		TaxPercentage: p.Price().TaxPercentage().String(),
	}
}

// toDomain converts a database DTO to a catalog product.
func toDomain(dto ProductDTO) (product.Product, error) {
	amount, err := kernel.MoneyFromString(dto.Price)
	if err != nil {
		return product.Product{}, err
	}

	taxPercentage, err := kernel.TaxPercentageFromString(dto.TaxPercentage)
	if err != nil {
		return product.Product{}, err
	}

	price, err := product.NewPrice(amount, taxPercentage)
	if err != nil {
		return product.Product{}, err
	}

	return product.NewProduct(dto.Name, price)
}
