package queries

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/task"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
		"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
	)
)

// GetOrderSummaryQuery retrieves a single order together with its live tasks
// and the hours booked against them.
//
// Example:
//
//	query, err := NewGetOrderSummaryQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderSummaryQueryHandler(db)
//
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order summary: %w", err)
//	}
//
//	fmt.Printf("Order %s: %s closed hours, %s still on the clock\n",
//	    summary.Number, summary.TotalClosedHours, summary.TotalLiveHours)
type GetOrderSummaryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderSummaryQuery creates a query for the given order.
func NewGetOrderSummaryQuery(orderID kernel.UUID) (GetOrderSummaryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderSummaryQuery{}, errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}
	return GetOrderSummaryQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to summarize.
func (q GetOrderSummaryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// TaskSummaryResponse is one live task of the order with its booked hours.
// ClosedHours sums the fixed-point hours of finished timer sessions;
// LiveHours is the elapsed-so-far time of timers still running. The two are
// reported separately because only closed hours ever reach an invoice.
type TaskSummaryResponse struct {
	ID           kernel.UUID
	Title        string
	Status       task.Status
	WorkerID     *kernel.UUID
	ClosedHours  decimal.Decimal
	OpenSessions int
	LiveHours    decimal.Decimal
}

// GetOrderSummaryQueryResponse is the fully-resolved order view consumed by
// dashboards and document generation.
type GetOrderSummaryQueryResponse struct {
	ID          kernel.UUID
	Number      string
	ClientID    kernel.UUID
	Description string
	SaleValue   decimal.Decimal
	Urgency     order.Urgency
	Status      order.Status
	WorkerID    *kernel.UUID
	OpenedAt    time.Time
	Deadline    *time.Time
	InstalledAt *time.Time

	Tasks            []TaskSummaryResponse
	TotalClosedHours decimal.Decimal
	TotalLiveHours   decimal.Decimal
}
