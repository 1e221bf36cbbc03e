package commands

import (
	"context"

	"sales/internal/core/domain/model/order"
	"sales/internal/core/domain/model/product"
	"sales/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves every requested product name against the catalog in one call,
// builds a fresh order from a Created/zero state, and persists it.
// If any name is unknown, the use case fails before an order exists, so no
// partial order is ever persisted.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog)
//	item, _ := NewSellItem("salad", 2)
//	cmd, _ := NewCreateOrderCommand(1, []SellItem{item})
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.ProductCatalog
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and a
// ProductCatalog for name resolution.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, catalog ports.ProductCatalog) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the order creation command.
// Catalog resolution happens before any transaction is opened; an
// unresolved product aborts the use case with product.ErrUnknownProduct.
// Items are added in input order so the persisted order mirrors the request.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	products, err := h.catalog.ProductsWith(ctx, cmd.ProductNames())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID())
	if err != nil {
		return err
	}

	for _, item := range cmd.Items() {
		p, ok := products.FirstWith(item.ProductName())
		if !ok {
			// The catalog guarantees resolution; a miss here means the
			// snapshot and the request disagree.
			return product.ErrUnknownProduct
		}

		if err = newOrder.Add(p, item.Quantity()); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
