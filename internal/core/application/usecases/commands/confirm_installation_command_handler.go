package commands

import (
	"context"

	"workshop/internal/core/domain/model/order"
)

// ConfirmInstallationCommandHandler moves an awaiting order to ToInvoice
// after the installation happened.
type ConfirmInstallationCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmInstallationCommandHandler creates a handler for installation confirmation.
func NewConfirmInstallationCommandHandler(uowFactory OrderUoWFactory) ConfirmInstallationCommandHandler {
	return ConfirmInstallationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the installation confirmation.
func (h *ConfirmInstallationCommandHandler) Handle(ctx context.Context, cmd ConfirmInstallationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applyOrderTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.ConfirmInstallation()
	})
}
