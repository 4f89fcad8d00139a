package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for fulfillment order
// aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using a
	// compare-and-swap on the version the aggregate was loaded with.
	// If another writer committed first, the write is not applied and
	// an errs.ConcurrentModificationError is returned; callers reload
	// and retry or surface the conflict.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves all orders that are neither terminal nor
	// failed, ordered by creation time descending.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetActiveNotUpdatedSince retrieves active orders whose last write
	// happened before the cutoff. Used by the delayed-order sweep.
	GetActiveNotUpdatedSince(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
