package queries

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
)

var (
	ErrGetAwaitingShipmentOrdersQueryIsNotConstructed = errors.New(
		"GetAwaitingShipmentOrdersQuery must be created via NewGetAwaitingShipmentOrdersQuery constructor",
	)
)

// GetAwaitingShipmentOrdersQuery retrieves all approved orders that have not
// left the warehouse yet. Feeds the dispatch job and the monitoring endpoint.
//
// Example:
//
//	query := NewGetAwaitingShipmentOrdersQuery()
//	handler := NewGetAwaitingShipmentOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get orders awaiting shipment: %w", err)
//	}
//
//	fmt.Printf("%d orders ready to ship\n", len(orders))
type GetAwaitingShipmentOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAwaitingShipmentOrdersQuery creates a query to retrieve approved orders.
// This is a parameterless query.
func NewGetAwaitingShipmentOrdersQuery() GetAwaitingShipmentOrdersQuery {
	return GetAwaitingShipmentOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAwaitingShipmentOrdersQueryIsNotConstructed if validation fails.
func (q GetAwaitingShipmentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAwaitingShipmentOrdersQueryIsNotConstructed)
}

// GetAwaitingShipmentOrdersQueryResponse represents one order ready for
// carrier dispatch.
type GetAwaitingShipmentOrdersQueryResponse struct {
	ID       int
	Currency string
	Total    kernel.Money
}
