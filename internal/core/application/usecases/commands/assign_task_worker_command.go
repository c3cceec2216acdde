package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrAssignTaskWorkerCommandIsNotConstructed = errors.New(
	"AssignTaskWorkerCommand must be created via NewAssignTaskWorkerCommand constructor",
)

// AssignTaskWorkerCommand represents a request to assign a worker to a task,
// or to clear the assignment when workerID is nil.
type AssignTaskWorkerCommand struct { //nolint:recvcheck //using for validation
	taskID   kernel.UUID
	workerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignTaskWorkerCommand creates a command to set or clear the task's worker.
func NewAssignTaskWorkerCommand(taskID kernel.UUID, workerID *kernel.UUID) (AssignTaskWorkerCommand, error) {
	cmd := AssignTaskWorkerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := taskID.Validate(); err != nil {
		return AssignTaskWorkerCommand{}, err
	}
	if workerID != nil {
		if err := workerID.Validate(); err != nil {
			return AssignTaskWorkerCommand{}, err
		}
	}
	cmd.taskID = taskID
	cmd.workerID = workerID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignTaskWorkerCommand) Validate() error {
	return c.guard.Validate(ErrAssignTaskWorkerCommandIsNotConstructed)
}

// TaskID returns the task to (un)assign.
func (c AssignTaskWorkerCommand) TaskID() kernel.UUID {
	return c.taskID
}

// WorkerID returns the worker to assign, nil to clear the assignment.
func (c AssignTaskWorkerCommand) WorkerID() *kernel.UUID {
	return c.workerID
}
