package commands

import (
	"context"
	"time"
)

// AssignTaskWorkerCommandHandler handles worker assignment on tasks.
type AssignTaskWorkerCommandHandler struct {
	uowFactory TaskUoWFactory
}

// NewAssignTaskWorkerCommandHandler creates a handler for task worker assignment.
func NewAssignTaskWorkerCommandHandler(uowFactory TaskUoWFactory) AssignTaskWorkerCommandHandler {
	return AssignTaskWorkerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle sets or clears the task's assigned worker.
func (h *AssignTaskWorkerCommandHandler) Handle(ctx context.Context, cmd AssignTaskWorkerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	taskRepo := uow.TaskRepository()

	t, err := taskRepo.Get(ctx, cmd.TaskID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if workerID := cmd.WorkerID(); workerID != nil {
		err = t.AssignWorker(*workerID, now)
	} else {
		err = t.UnassignWorker(now)
	}
	if err != nil {
		return err
	}

	if err = taskRepo.Update(ctx, t); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
