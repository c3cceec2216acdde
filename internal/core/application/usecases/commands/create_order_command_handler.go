package commands

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
//
// The order number is allocated inside the transaction: the repository
// serializes the allocation against concurrent creations, so the number is
// unique even when two orders are opened at the same instant.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command: allocates the next order
// number and persists the order in Pending status, atomically.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	number, err := orderRepo.NextNumber(ctx)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), number, cmd.ClientID(),
		cmd.Description(), cmd.SaleValue(), cmd.Urgency(),
		time.Now().UTC(), cmd.Deadline())
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
