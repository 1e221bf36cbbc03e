package ports

import (
	"context"

	"sales/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Not-found lookups fail loudly with errs.ObjectNotFoundError; a repository
// never silently hands back a usable order for an unknown id.
type OrderRepository interface {
	// Add persists a new order aggregate to storage, including its items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Items are immutable after creation; an update rewrites the order's
	// status and totals only.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier, rehydrated with
	// its items. Returns errs.ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id int) (*order.Order, error)
}
