package ports

import (
	"context"

	"sales/internal/core/domain/model/order"
)

// ShipmentService dispatches an order to the physical carrier.
// As part of fulfilling the dispatch it performs the order's Ship transition
// itself, so the transition authority stays with the order's status; the
// caller persists the order afterwards to capture the Shipped state.
// A failed dispatch propagates before anything is persisted.
type ShipmentService interface {
	Ship(ctx context.Context, aggregate *order.Order) error
}
