package queries

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOpenSessionsQueryIsNotConstructed = errors.New(
		"GetOpenSessionsQuery must be created via NewGetOpenSessionsQuery constructor",
	)
)

// GetOpenSessionsQuery retrieves every work session that is still running.
// Consumed by dashboards and the forgotten-timer watchdog.
//
// Example:
//
//	query := NewGetOpenSessionsQuery()
//	handler := NewGetOpenSessionsQueryHandler(db)
//
//	sessions, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get open sessions: %w", err)
//	}
//
//	for _, s := range sessions {
//	    fmt.Printf("%s on %q for %s hours\n", s.WorkerID, s.TaskTitle, s.ElapsedHours)
//	}
type GetOpenSessionsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenSessionsQuery creates a query for all running sessions.
// This is a parameterless query.
func NewGetOpenSessionsQuery() GetOpenSessionsQuery {
	return GetOpenSessionsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenSessionsQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenSessionsQueryIsNotConstructed)
}

// GetOpenSessionsQueryResponse is one running session with its elapsed time.
type GetOpenSessionsQueryResponse struct {
	SessionID    kernel.UUID
	TaskID       kernel.UUID
	TaskTitle    string
	OrderID      kernel.UUID
	WorkerID     kernel.UUID
	StartedAt    time.Time
	ElapsedHours decimal.Decimal
}
