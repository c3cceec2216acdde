package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrStopSessionCommandIsNotConstructed = errors.New(
	"StopSessionCommand must be created via NewStopSessionCommand constructor",
)

// StopSessionCommand represents a worker closing their open timer on a task,
// optionally attaching a note about the work done.
type StopSessionCommand struct { //nolint:recvcheck //using for validation
	taskID   kernel.UUID
	workerID kernel.UUID
	note     string

	guard guard.ConstructorGuard
}

// NewStopSessionCommand creates a command to close the worker's open session
// on the task.
func NewStopSessionCommand(taskID, workerID kernel.UUID, note string) (StopSessionCommand, error) {
	cmd := StopSessionCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		taskID.Validate(),
		workerID.Validate(),
	); err != nil {
		return StopSessionCommand{}, err
	}
	cmd.taskID = taskID
	cmd.workerID = workerID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StopSessionCommand) Validate() error {
	return c.guard.Validate(ErrStopSessionCommandIsNotConstructed)
}

// TaskID returns the task whose timer is closing.
func (c StopSessionCommand) TaskID() kernel.UUID {
	return c.taskID
}

// WorkerID returns the worker closing the timer.
func (c StopSessionCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// Note returns the optional closing note.
func (c StopSessionCommand) Note() string {
	return c.note
}
