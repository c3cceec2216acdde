package ports

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/worksession"

	"github.com/shopspring/decimal"
)

// SessionRepository defines the persistence contract for work sessions.
//
// The at-most-one-open-session-per-(task, worker) invariant is enforced by
// the storage layer itself: Add returns worksession.ErrSessionAlreadyOpen
// when an open session for the same pair already exists, even under
// concurrent inserts.
type SessionRepository interface {
	// Add persists a new work session.
	Add(ctx context.Context, aggregate *worksession.Session) error

	// Update persists changes to an existing session (closing it).
	Update(ctx context.Context, aggregate *worksession.Session) error

	// Get retrieves a session by its unique identifier.
	// Returns errs.ObjectNotFoundError when no session exists for the id.
	Get(ctx context.Context, id kernel.UUID) (*worksession.Session, error)

	// GetOpenByTaskAndWorker retrieves the open session for the pair.
	// Returns worksession.ErrSessionNotFound when none is open.
	GetOpenByTaskAndWorker(ctx context.Context, taskID, workerID kernel.UUID) (*worksession.Session, error)

	// GetOpenByTask retrieves all open sessions on a task.
	GetOpenByTask(ctx context.Context, taskID kernel.UUID) ([]*worksession.Session, error)

	// CountOpenByOrder counts open sessions across all tasks of an order,
	// tombstoned tasks included. Input to status reconciliation.
	CountOpenByOrder(ctx context.Context, orderID kernel.UUID) (int, error)

	// GetAllOpen retrieves every open session in the system.
	GetAllOpen(ctx context.Context) ([]*worksession.Session, error)

	// SumClosedHoursByOrder sums the persisted hours of closed sessions
	// across all tasks of an order. Open sessions never contribute; this is
	// the authoritative figure used at invoice generation.
	SumClosedHoursByOrder(ctx context.Context, orderID kernel.UUID) (decimal.Decimal, error)
}
