package commands

import (
	"context"

	"workshop/internal/core/domain/model/order"
)

// HoldOrderCommandHandler pauses an order's workflow.
type HoldOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewHoldOrderCommandHandler creates a handler for holding orders.
func NewHoldOrderCommandHandler(uowFactory OrderUoWFactory) HoldOrderCommandHandler {
	return HoldOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the hold request.
func (h *HoldOrderCommandHandler) Handle(ctx context.Context, cmd HoldOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applyOrderTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.Hold()
	})
}
