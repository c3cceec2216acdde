package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrAssignOrderWorkerCommandIsNotConstructed = errors.New(
	"AssignOrderWorkerCommand must be created via NewAssignOrderWorkerCommand constructor",
)

// AssignOrderWorkerCommand represents a request to assign a worker to an
// order, or to clear the assignment when workerID is nil. Assignment is
// independent of the workflow status.
type AssignOrderWorkerCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	workerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignOrderWorkerCommand creates a command to set or clear the order's
// assigned worker.
func NewAssignOrderWorkerCommand(orderID kernel.UUID, workerID *kernel.UUID) (AssignOrderWorkerCommand, error) {
	cmd := AssignOrderWorkerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return AssignOrderWorkerCommand{}, err
	}
	if err := cmd.setWorkerID(workerID); err != nil {
		return AssignOrderWorkerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderWorkerCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderWorkerCommandIsNotConstructed)
}

// OrderID returns the order to (un)assign.
func (c AssignOrderWorkerCommand) OrderID() kernel.UUID {
	return c.orderID
}

// WorkerID returns the worker to assign, nil to clear the assignment.
func (c AssignOrderWorkerCommand) WorkerID() *kernel.UUID {
	return c.workerID
}

func (c *AssignOrderWorkerCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignOrderWorkerCommand) setWorkerID(workerID *kernel.UUID) error {
	if workerID != nil {
		if err := workerID.Validate(); err != nil {
			return err
		}
	}

	c.workerID = workerID
	return nil
}
