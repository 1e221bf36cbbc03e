package commands

import (
	"context"

	"sales/internal/core/ports"
)

// ShipOrderCommandHandler orchestrates order shipment. It loads the order
// and hands it to the shipment service, which performs the Ship transition
// itself as part of dispatching to the carrier; the handler then persists
// the post-shipment state. A refused or failed dispatch propagates before
// any save happens.
//
// Example:
//
//	handler := NewShipOrderCommandHandler(uowFactory, shipmentService)
//	cmd, _ := NewShipOrderCommand(42)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrOrderNotReadyForShipment):
//	    log.Println("Order has not been approved yet")
//	case errors.Is(err, order.ErrOrderCannotBeShippedTwice):
//	    log.Println("Order already left the warehouse")
//	case err != nil:
//	    log.Printf("Shipment failed: %v", err)
//	}
type ShipOrderCommandHandler struct {
	uowFactory      OrderUoWFactory
	shipmentService ports.ShipmentService
}

// NewShipOrderCommandHandler creates a handler for order shipment operations.
// Requires an OrderUoWFactory for persistence and a ShipmentService for
// carrier dispatch.
func NewShipOrderCommandHandler(
	uowFactory OrderUoWFactory,
	shipmentService ports.ShipmentService,
) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		uowFactory:      uowFactory,
		shipmentService: shipmentService,
	}
}

// Handle processes the shipment command.
// Loads the order, dispatches it through the shipment service (which runs
// the Ship transition), and updates the order so the persisted state
// reflects Shipped.
func (h ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.shipmentService.Ship(ctx, aggregate); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
