package ports

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/task"
)

// TaskRepository defines the persistence contract for task aggregates.
// Tombstoned tasks stay in storage; deletion is expressed through
// Task.MarkDeleted followed by Update.
type TaskRepository interface {
	// Add persists a new task aggregate to storage.
	Add(ctx context.Context, aggregate *task.Task) error

	// Update persists changes to an existing task aggregate, including the
	// tombstone marker.
	Update(ctx context.Context, aggregate *task.Task) error

	// Get retrieves a task by its unique identifier, tombstoned or not.
	// Returns errs.ObjectNotFoundError when no task exists for the id.
	Get(ctx context.Context, id kernel.UUID) (*task.Task, error)

	// GetByOrder retrieves the complete task set of an order, tombstoned
	// tasks included. Status reconciliation needs the full set.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*task.Task, error)
}
