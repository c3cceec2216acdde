package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrStartSessionCommandIsNotConstructed = errors.New(
	"StartSessionCommand must be created via NewStartSessionCommand constructor",
)

// StartSessionCommand represents a worker opening a timer on a task.
// A worker can hold at most one open session per task.
type StartSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	taskID    kernel.UUID
	workerID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartSessionCommand creates a command to open a work session.
func NewStartSessionCommand(sessionID, taskID, workerID kernel.UUID) (StartSessionCommand, error) {
	cmd := StartSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		sessionID.Validate(),
		taskID.Validate(),
		workerID.Validate(),
	); err != nil {
		return StartSessionCommand{}, err
	}
	cmd.sessionID = sessionID
	cmd.taskID = taskID
	cmd.workerID = workerID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartSessionCommand) Validate() error {
	return c.guard.Validate(ErrStartSessionCommandIsNotConstructed)
}

// SessionID returns the identifier for the new session.
func (c StartSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// TaskID returns the task the timer runs against.
func (c StartSessionCommand) TaskID() kernel.UUID {
	return c.taskID
}

// WorkerID returns the worker opening the timer.
func (c StartSessionCommand) WorkerID() kernel.UUID {
	return c.workerID
}
