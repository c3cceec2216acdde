package commands

import (
	"context"
	"time"
)

// UpdateTaskStatusCommandHandler moves a task through its state machine and
// recomputes the owning order's derived status in the same transaction.
// Completing the last open task is what pushes an order into quality control.
type UpdateTaskStatusCommandHandler struct {
	uowFactory WorkUoWFactory
}

// NewUpdateTaskStatusCommandHandler creates a handler for task status changes.
func NewUpdateTaskStatusCommandHandler(uowFactory WorkUoWFactory) UpdateTaskStatusCommandHandler {
	return UpdateTaskStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition and the post-write reconciliation.
func (h *UpdateTaskStatusCommandHandler) Handle(ctx context.Context, cmd UpdateTaskStatusCommand) error {
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

	if err = t.TransitionTo(cmd.Target(), time.Now().UTC()); err != nil {
		return err
	}

	if err = taskRepo.Update(ctx, t); err != nil {
		return err
	}

	if err = reconcileOrderStatus(ctx, uow, t.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
