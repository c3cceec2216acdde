package ports

import (
	"context"

	"workshop/internal/core/domain/model/inventory"
	"workshop/internal/core/domain/model/kernel"
)

// InventoryRepository defines the persistence contract for inventory items
// and their consumption ledger.
type InventoryRepository interface {
	// Add persists a new inventory item.
	Add(ctx context.Context, aggregate *inventory.Item) error

	// Update persists changes to an existing item (restock).
	Update(ctx context.Context, aggregate *inventory.Item) error

	// Get retrieves an item by its unique identifier.
	// Returns errs.ObjectNotFoundError when no item exists for the id.
	Get(ctx context.Context, id kernel.UUID) (*inventory.Item, error)

	// Consume decrements the item's stock by quantity as a single
	// conditional update. When the stock is short the update matches no row
	// and inventory.InsufficientStockError is returned with the current
	// availability; the stock is left unchanged. Safe under concurrency.
	Consume(ctx context.Context, itemID kernel.UUID, quantity int) error

	// AddConsumption persists a ledger record for a stock decrement.
	AddConsumption(ctx context.Context, record *inventory.ConsumptionRecord) error

	// GetConsumptionsByTask retrieves the ledger records of a task.
	GetConsumptionsByTask(ctx context.Context, taskID kernel.UUID) ([]*inventory.ConsumptionRecord, error)

	// DeleteConsumptionsByTask removes the ledger records of a task.
	// Used when the task itself is deleted; stock is not restored.
	DeleteConsumptionsByTask(ctx context.Context, taskID kernel.UUID) error
}
