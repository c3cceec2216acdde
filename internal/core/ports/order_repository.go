package ports

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no order exists for the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order aggregate by its human-facing number.
	GetByNumber(ctx context.Context, number order.Number) (*order.Order, error)

	// NextNumber allocates the next order number. The allocation is
	// serialized against concurrent order creation within the same
	// transaction (advisory lock held until commit), so two concurrent
	// creations can never observe the same number.
	NextNumber(ctx context.Context) (order.Number, error)

	// Delete removes the order row. Callers are responsible for the
	// invoice-reference guard and for tombstoning the order's tasks.
	Delete(ctx context.Context, id kernel.UUID) error
}
