package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var (
	ErrDeleteTaskCommandIsNotConstructed = errors.New(
		"DeleteTaskCommand must be created via NewDeleteTaskCommand constructor",
	)

	// ErrTaskHasActiveSession blocks deletion of a task with running timers
	// unless the caller forces it.
	ErrTaskHasActiveSession = errors.New("task has an open work session")
)

// DeleteTaskCommand represents a request to tombstone a task. With force set,
// open sessions on the task are closed first instead of blocking the
// deletion.
type DeleteTaskCommand struct { //nolint:recvcheck //using for validation
	taskID kernel.UUID
	force  bool

	guard guard.ConstructorGuard
}

// NewDeleteTaskCommand creates a command to delete a task.
func NewDeleteTaskCommand(taskID kernel.UUID, force bool) (DeleteTaskCommand, error) {
	cmd := DeleteTaskCommand{
		force: force,
		guard: guard.NewConstructorGuard(),
	}

	if err := taskID.Validate(); err != nil {
		return DeleteTaskCommand{}, err
	}
	cmd.taskID = taskID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteTaskCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTaskCommandIsNotConstructed)
}

// TaskID returns the task to delete.
func (c DeleteTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// Force reports whether open sessions should be closed instead of blocking.
func (c DeleteTaskCommand) Force() bool {
	return c.force
}
