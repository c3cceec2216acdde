package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrResumeOrderCommandIsNotConstructed = errors.New(
	"ResumeOrderCommand must be created via NewResumeOrderCommand constructor",
)

// ResumeOrderCommand represents a request to return a held or stopped order
// to production.
type ResumeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResumeOrderCommand creates a command to resume an order.
func NewResumeOrderCommand(orderID kernel.UUID) (ResumeOrderCommand, error) {
	cmd := ResumeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return ResumeOrderCommand{}, err
	}
	cmd.orderID = orderID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResumeOrderCommand) Validate() error {
	return c.guard.Validate(ErrResumeOrderCommandIsNotConstructed)
}

// OrderID returns the order to resume.
func (c ResumeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
