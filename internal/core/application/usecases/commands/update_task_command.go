package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/task"
	"workshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateTaskCommandIsNotConstructed = errors.New(
	"UpdateTaskCommand must be created via NewUpdateTaskCommand constructor",
)

// UpdateTaskCommand represents a request to edit a task's details.
// The owning order is fixed for the task's life and is not editable.
type UpdateTaskCommand struct { //nolint:recvcheck //using for validation
	taskID         kernel.UUID
	title          string
	description    string
	priority       task.Priority
	estimatedHours *decimal.Decimal

	guard guard.ConstructorGuard
}

// NewUpdateTaskCommand creates a command to edit a task.
func NewUpdateTaskCommand(
	taskID kernel.UUID,
	title, description string,
	priority task.Priority,
	estimatedHours *decimal.Decimal,
) (UpdateTaskCommand, error) {
	cmd := UpdateTaskCommand{
		description:    description,
		estimatedHours: estimatedHours,
		guard:          guard.NewConstructorGuard(),
	}

	if err := taskID.Validate(); err != nil {
		return UpdateTaskCommand{}, err
	}
	if title == "" {
		return UpdateTaskCommand{}, ErrTitleIsRequired
	}
	if err := priority.Validate(); err != nil {
		return UpdateTaskCommand{}, err
	}
	cmd.taskID = taskID
	cmd.title = title
	cmd.priority = priority

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTaskCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTaskCommandIsNotConstructed)
}

// TaskID returns the task to edit.
func (c UpdateTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// Title returns the new title.
func (c UpdateTaskCommand) Title() string {
	return c.title
}

// Description returns the new description.
func (c UpdateTaskCommand) Description() string {
	return c.description
}

// Priority returns the new priority.
func (c UpdateTaskCommand) Priority() task.Priority {
	return c.priority
}

// EstimatedHours returns the new optional estimate.
func (c UpdateTaskCommand) EstimatedHours() *decimal.Decimal {
	return c.estimatedHours
}
