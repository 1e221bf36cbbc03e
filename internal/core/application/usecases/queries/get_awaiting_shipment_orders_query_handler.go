package queries

import (
	"context"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetAwaitingShipmentOrdersQueryHandler retrieves approved orders from the
// database. An approved order is the only kind the carrier will accept.
//
// Example:
//
//	handler := NewGetAwaitingShipmentOrdersQueryHandler(db)
//	query := NewGetAwaitingShipmentOrdersQuery()
//
//	pending, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get orders awaiting shipment: %v", err)
//	    return err
//	}
type GetAwaitingShipmentOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAwaitingShipmentOrdersQueryHandler creates a handler for
// awaiting-shipment order queries.
// Requires a GORM database connection for query execution.
func NewGetAwaitingShipmentOrdersQueryHandler(db *gorm.DB) GetAwaitingShipmentOrdersQueryHandler {
	return GetAwaitingShipmentOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all approved orders.
// Results are sorted by order id for consistent output.
func (h GetAwaitingShipmentOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAwaitingShipmentOrdersQuery,
) ([]GetAwaitingShipmentOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAwaitingShipmentOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			currency,
			total_amount
		FROM orders
		WHERE status = ?
		ORDER BY id
	`, order.Approved).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetAwaitingShipmentOrdersQueryResponse
		var rawTotal string

		if err = rows.Scan(&orderResp.ID, &orderResp.Currency, &rawTotal); err != nil {
			return nil, err
		}

		if orderResp.Total, err = kernel.MoneyFromString(rawTotal); err != nil {
			return nil, err
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
