package queries

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrGetOrderQueryIDIsInvalid = errors.New("order id must be greater than 0")
)

// GetOrderQuery retrieves a single sales order with its lines and totals.
//
// Example:
//
//	query, _ := NewGetOrderQuery(42)
//	handler := NewGetOrderQueryHandler(db)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//
//	fmt.Printf("Order %d is %s, total %s %s\n",
//	    resp.ID, resp.Status, resp.Total, resp.Currency)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID int

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve the order with the given id.
// Validates that the id is positive.
func NewGetOrderQuery(orderID int) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, ErrGetOrderQueryIDIsInvalid
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() int {
	return q.orderID
}

// GetOrderQueryItemResponse represents one order line in the read model:
// the resolved product name and the amounts frozen at creation time.
type GetOrderQueryItemResponse struct {
	ProductName string
	Quantity    int
	TaxedAmount kernel.Money
	TaxAmount   kernel.Money
}

// GetOrderQueryResponse represents full order information for presentation.
// Lines appear in the order they were added.
type GetOrderQueryResponse struct {
	ID       int
	Status   order.Status
	Currency string
	Total    kernel.Money
	Tax      kernel.Money
	Items    []GetOrderQueryItemResponse
}
