package commands

import (
	"context"
)

// AssignOrderWorkerCommandHandler handles manual worker assignment on orders.
type AssignOrderWorkerCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignOrderWorkerCommandHandler creates a handler for order worker assignment.
func NewAssignOrderWorkerCommandHandler(uowFactory OrderUoWFactory) AssignOrderWorkerCommandHandler {
	return AssignOrderWorkerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle sets or clears the order's assigned worker.
func (h *AssignOrderWorkerCommandHandler) Handle(ctx context.Context, cmd AssignOrderWorkerCommand) error {
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

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if workerID := cmd.WorkerID(); workerID != nil {
		err = o.AssignWorker(*workerID)
	} else {
		err = o.UnassignWorker()
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
