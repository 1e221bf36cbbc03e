package queries

import (
	"context"
	"database/sql"
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with its lines from the
// database. Reads bypass the aggregate and go straight to SQL.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(42)
//
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order and its lines.
// A missing order fails with errs.ObjectNotFoundError. Lines are returned
// in insertion order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse
	var rawStatus int
	var rawTotal, rawTax string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			currency,
			total_amount,
			tax_amount
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row()

	err := row.Scan(&resp.ID, &rawStatus, &resp.Currency, &rawTotal, &rawTax)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.Status = order.Status(rawStatus)
	if err = resp.Status.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Total, err = kernel.MoneyFromString(rawTotal); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Tax, err = kernel.MoneyFromString(rawTax); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.Items, err = h.orderItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) orderItems(ctx context.Context, orderID int) ([]GetOrderQueryItemResponse, error) {
	items := make([]GetOrderQueryItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_name,
			quantity,
			taxed_amount,
			tax_amount
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderQueryItemResponse
		var rawTaxedAmount, rawTaxAmount string

		if err = rows.Scan(&item.ProductName, &item.Quantity, &rawTaxedAmount, &rawTaxAmount); err != nil {
			return nil, err
		}

		if item.TaxedAmount, err = kernel.MoneyFromString(rawTaxedAmount); err != nil {
			return nil, err
		}
		if item.TaxAmount, err = kernel.MoneyFromString(rawTaxAmount); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
