package commands

import (
	"context"

	"workshop/internal/core/domain/model/order"
)

// ScheduleInstallationCommandHandler moves a ready order to
// AwaitingInstallation and records the planned date.
type ScheduleInstallationCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewScheduleInstallationCommandHandler creates a handler for installation scheduling.
func NewScheduleInstallationCommandHandler(uowFactory OrderUoWFactory) ScheduleInstallationCommandHandler {
	return ScheduleInstallationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the scheduling request.
func (h *ScheduleInstallationCommandHandler) Handle(ctx context.Context, cmd ScheduleInstallationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applyOrderTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.ScheduleInstallation(cmd.Date())
	})
}
