package commands

import (
	"context"
)

// DeleteInvoiceCommandHandler removes an invoice and its lines.
type DeleteInvoiceCommandHandler struct {
	uowFactory BillingUoWFactory
}

// NewDeleteInvoiceCommandHandler creates a handler for invoice deletion.
func NewDeleteInvoiceCommandHandler(uowFactory BillingUoWFactory) DeleteInvoiceCommandHandler {
	return DeleteInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion.
func (h *DeleteInvoiceCommandHandler) Handle(ctx context.Context, cmd DeleteInvoiceCommand) error {
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

	invoiceRepo := uow.InvoiceRepository()

	if _, err := invoiceRepo.Get(ctx, cmd.InvoiceID()); err != nil {
		return err
	}

	if err := invoiceRepo.Delete(ctx, cmd.InvoiceID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
