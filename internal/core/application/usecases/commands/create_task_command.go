package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/task"
	"workshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateTaskCommandIsNotConstructed = errors.New(
		"CreateTaskCommand must be created via NewCreateTaskCommand constructor",
	)
	ErrTitleIsRequired = errors.New("title is required")
)

// CreateTaskCommand represents a request to add a production task to an order.
type CreateTaskCommand struct { //nolint:recvcheck //using for validation
	taskID         kernel.UUID
	orderID        kernel.UUID
	title          string
	description    string
	priority       task.Priority
	estimatedHours *decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateTaskCommand creates a command to add a task under an order.
func NewCreateTaskCommand(
	taskID, orderID kernel.UUID,
	title, description string,
	priority task.Priority,
	estimatedHours *decimal.Decimal,
) (CreateTaskCommand, error) {
	cmd := CreateTaskCommand{
		description:    description,
		estimatedHours: estimatedHours,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTaskID(taskID),
		cmd.setOrderID(orderID),
		cmd.setTitle(title),
		cmd.setPriority(priority),
	); err != nil {
		return CreateTaskCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTaskCommand) Validate() error {
	return c.guard.Validate(ErrCreateTaskCommandIsNotConstructed)
}

// TaskID returns the identifier for the new task.
func (c CreateTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// OrderID returns the owning order.
func (c CreateTaskCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Title returns the task title.
func (c CreateTaskCommand) Title() string {
	return c.title
}

// Description returns the optional task description.
func (c CreateTaskCommand) Description() string {
	return c.description
}

// Priority returns the task priority.
func (c CreateTaskCommand) Priority() task.Priority {
	return c.priority
}

// EstimatedHours returns the optional effort estimate.
func (c CreateTaskCommand) EstimatedHours() *decimal.Decimal {
	return c.estimatedHours
}

func (c *CreateTaskCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *CreateTaskCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateTaskCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *CreateTaskCommand) setPriority(priority task.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}
