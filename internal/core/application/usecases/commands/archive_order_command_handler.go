package commands

import (
	"context"

	"workshop/internal/core/domain/model/order"
)

// ArchiveOrderCommandHandler moves an invoiced order to its final Completed
// marker.
type ArchiveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewArchiveOrderCommandHandler creates a handler for archiving orders.
func NewArchiveOrderCommandHandler(uowFactory OrderUoWFactory) ArchiveOrderCommandHandler {
	return ArchiveOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the archival.
func (h *ArchiveOrderCommandHandler) Handle(ctx context.Context, cmd ArchiveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applyOrderTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.Archive()
	})
}
