package commands

import (
	"context"

	"workshop/internal/core/domain/model/order"
)

// ConfirmPickupCommandHandler moves a ready order to ToInvoice on pickup.
type ConfirmPickupCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmPickupCommandHandler creates a handler for pickup confirmation.
func NewConfirmPickupCommandHandler(uowFactory OrderUoWFactory) ConfirmPickupCommandHandler {
	return ConfirmPickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup confirmation.
func (h *ConfirmPickupCommandHandler) Handle(ctx context.Context, cmd ConfirmPickupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applyOrderTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.ConfirmPickup()
	})
}
