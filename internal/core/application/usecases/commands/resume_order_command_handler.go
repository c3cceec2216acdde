package commands

import (
	"context"

	"workshop/internal/core/domain/model/order"
)

// ResumeOrderCommandHandler returns a held or stopped order to production.
type ResumeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewResumeOrderCommandHandler creates a handler for resuming orders.
func NewResumeOrderCommandHandler(uowFactory OrderUoWFactory) ResumeOrderCommandHandler {
	return ResumeOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resume request.
func (h *ResumeOrderCommandHandler) Handle(ctx context.Context, cmd ResumeOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applyOrderTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.Resume()
	})
}
