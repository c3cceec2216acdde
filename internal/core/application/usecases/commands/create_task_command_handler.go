package commands

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/task"
)

// CreateTaskCommandHandler adds a task to an existing order. Billing-locked
// orders refuse new tasks.
type CreateTaskCommandHandler struct {
	uowFactory TaskUoWFactory
}

// NewCreateTaskCommandHandler creates a handler for task creation.
func NewCreateTaskCommandHandler(uowFactory TaskUoWFactory) CreateTaskCommandHandler {
	return CreateTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the task creation command.
func (h *CreateTaskCommandHandler) Handle(ctx context.Context, cmd CreateTaskCommand) error {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if o.Status().IsBillingLocked() {
		return order.ErrOrderBillingLocked
	}

	newTask, err := task.NewTask(
		cmd.TaskID(), cmd.OrderID(),
		cmd.Title(), cmd.Description(),
		cmd.Priority(), cmd.EstimatedHours(),
		time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.TaskRepository().Add(ctx, newTask); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
