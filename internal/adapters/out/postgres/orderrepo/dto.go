// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/model/product"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Money columns are stored as exact numerics, never floats, and the status
// index serves the awaiting-shipment scans.
type OrderDTO struct {
	ID          int    `gorm:"primaryKey"`
	Status      int    `gorm:"index"`
	Currency    string `gorm:"type:varchar(3)"`
	TotalAmount string `gorm:"type:numeric(12,2)"`
	TaxAmount   string `gorm:"type:numeric(12,2)"`

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line. Position preserves insertion order,
// and the line amounts are frozen copies of what the aggregate computed at
// creation time; they are never recomputed on read.
type OrderItemDTO struct {
	OrderID       int    `gorm:"primaryKey"`
	Position      int    `gorm:"primaryKey"`
	ProductName   string `gorm:"type:varchar(255)"`
	UnitPrice     string `gorm:"type:numeric(12,2)"`
	TaxPercentage string `gorm:"type:numeric(5,2)"`
	Quantity      int
	TaxedAmount   string `gorm:"type:numeric(12,2)"`
	TaxAmount     string `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation,
// including its lines in insertion order.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for position, item := range items {
		p := item.Product()
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:       aggregate.ID(),
			Position:      position,
			ProductName:   p.Name(),
			UnitPrice:     p.Price().Amount().String(),
			TaxPercentage: p.Price().TaxPercentage().String(),
			Quantity:      item.Quantity(),
			TaxedAmount:   item.TaxedAmount().String(),
			TaxAmount:     item.TaxAmount().String(),
		})
	}

	return OrderDTO{
		ID:          aggregate.ID(),
		Status:      int(aggregate.Status()),
		Currency:    aggregate.Currency(),
		TotalAmount: aggregate.Total().String(),
		TaxAmount:   aggregate.Tax().String(),
		Items:       itemDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, lines, and totals
// using RestoreOrder, so the guard invariants hold on rehydrated orders too.
func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := itemToDomain(itemDTO)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	total, err := kernel.MoneyFromString(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	tax, err := kernel.MoneyFromString(dto.TaxAmount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(dto.ID, order.Status(dto.Status), items, dto.Currency, total, tax)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	unitPrice, err := kernel.MoneyFromString(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}

	taxPercentage, err := kernel.TaxPercentageFromString(dto.TaxPercentage)
	if err != nil {
		return order.Item{}, err
	}

	price, err := product.NewPrice(unitPrice, taxPercentage)
	if err != nil {
		return order.Item{}, err
	}

	p, err := product.NewProduct(dto.ProductName, price)
	if err != nil {
		return order.Item{}, err
	}

	taxedAmount, err := kernel.MoneyFromString(dto.TaxedAmount)
	if err != nil {
		return order.Item{}, err
	}

	taxAmount, err := kernel.MoneyFromString(dto.TaxAmount)
	if err != nil {
		return order.Item{}, err
	}

	return order.RestoreItem(p, dto.Quantity, taxedAmount, taxAmount)
}
