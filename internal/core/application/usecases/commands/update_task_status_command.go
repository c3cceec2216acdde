package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/task"
	"workshop/internal/pkg/guard"
)

var ErrUpdateTaskStatusCommandIsNotConstructed = errors.New(
	"UpdateTaskStatusCommand must be created via NewUpdateTaskStatusCommand constructor",
)

// UpdateTaskStatusCommand represents a validated task status transition.
type UpdateTaskStatusCommand struct { //nolint:recvcheck //using for validation
	taskID kernel.UUID
	target task.Status

	guard guard.ConstructorGuard
}

// NewUpdateTaskStatusCommand creates a command to move a task to the target
// status.
func NewUpdateTaskStatusCommand(taskID kernel.UUID, target task.Status) (UpdateTaskStatusCommand, error) {
	cmd := UpdateTaskStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := taskID.Validate(); err != nil {
		return UpdateTaskStatusCommand{}, err
	}
	if err := target.Validate(); err != nil {
		return UpdateTaskStatusCommand{}, err
	}
	cmd.taskID = taskID
	cmd.target = target

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTaskStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTaskStatusCommandIsNotConstructed)
}

// TaskID returns the task to transition.
func (c UpdateTaskStatusCommand) TaskID() kernel.UUID {
	return c.taskID
}

// Target returns the requested status.
func (c UpdateTaskStatusCommand) Target() task.Status {
	return c.target
}
