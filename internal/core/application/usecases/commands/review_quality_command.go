package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrReviewQualityCommandIsNotConstructed = errors.New(
	"ReviewQualityCommand must be created via NewReviewQualityCommand constructor",
)

// ReviewQualityCommand represents the quality-gate decision on an order under
// quality control. Approval releases the order for pickup; rejection sends it
// back to production and reopens its completed tasks for rework.
type ReviewQualityCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	approved bool

	guard guard.ConstructorGuard
}

// NewReviewQualityCommand creates a command carrying the review verdict.
func NewReviewQualityCommand(orderID kernel.UUID, approved bool) (ReviewQualityCommand, error) {
	cmd := ReviewQualityCommand{
		approved: approved,
		guard:    guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return ReviewQualityCommand{}, err
	}
	cmd.orderID = orderID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewQualityCommand) Validate() error {
	return c.guard.Validate(ErrReviewQualityCommandIsNotConstructed)
}

// OrderID returns the reviewed order.
func (c ReviewQualityCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Approved returns the review verdict.
func (c ReviewQualityCommand) Approved() bool {
	return c.approved
}
