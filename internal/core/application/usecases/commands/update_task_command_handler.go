package commands

import (
	"context"
	"time"
)

// UpdateTaskCommandHandler edits a task's details.
type UpdateTaskCommandHandler struct {
	uowFactory TaskUoWFactory
}

// NewUpdateTaskCommandHandler creates a handler for task edits.
func NewUpdateTaskCommandHandler(uowFactory TaskUoWFactory) UpdateTaskCommandHandler {
	return UpdateTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the task edit.
func (h *UpdateTaskCommandHandler) Handle(ctx context.Context, cmd UpdateTaskCommand) error {
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

	if err = t.UpdateDetails(
		cmd.Title(), cmd.Description(),
		cmd.Priority(), cmd.EstimatedHours(),
		time.Now().UTC()); err != nil {
		return err
	}

	if err = taskRepo.Update(ctx, t); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
