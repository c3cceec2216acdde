package commands

import (
	"context"
	"time"
)

// DeleteOrderCommandHandler removes an order after checking the invoice
// reference guard. The order's tasks are tombstoned, not removed, so their
// sessions and consumption history stay intact.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory UoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion. Returns ErrOrderInvoiced when any invoice
// references the order.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	invoiced, err := uow.InvoiceRepository().ExistsForOrder(ctx, o.ID())
	if err != nil {
		return err
	}
	if invoiced {
		return ErrOrderInvoiced
	}

	taskRepo := uow.TaskRepository()
	tasks, err := taskRepo.GetByOrder(ctx, o.ID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, t := range tasks {
		if t.IsDeleted() {
			continue
		}
		if err = t.MarkDeleted(now); err != nil {
			return err
		}
		if err = taskRepo.Update(ctx, t); err != nil {
			return err
		}
	}

	if err = orderRepo.Delete(ctx, o.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
