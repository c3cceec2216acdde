package commands

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/invoice"
	"workshop/internal/core/domain/model/kernel"
)

// GenerateInvoiceCommandHandler aggregates delivered orders into an invoice.
//
// Everything happens in one transaction: every order is transitioned to
// Invoiced, its hours are recomputed from closed sessions, and the invoice is
// persisted. If any order cannot be billed the whole generation rolls back
// and a PartialInvoiceFailureError names the offender; no order keeps a
// half-applied status and no invoice row exists.
type GenerateInvoiceCommandHandler struct {
	uowFactory BillingUoWFactory
}

// NewGenerateInvoiceCommandHandler creates a handler for invoice generation.
func NewGenerateInvoiceCommandHandler(uowFactory BillingUoWFactory) GenerateInvoiceCommandHandler {
	return GenerateInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the generation.
func (h *GenerateInvoiceCommandHandler) Handle(ctx context.Context, cmd GenerateInvoiceCommand) error {
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

	summaries := make([]invoice.OrderSummary, 0, len(cmd.OrderIDs()))
	for _, orderID := range cmd.OrderIDs() {
		summary, err := h.billOrder(ctx, uow, orderID)
		if err != nil {
			return &invoice.PartialInvoiceFailureError{OrderID: orderID, Cause: err}
		}
		summaries = append(summaries, summary)
	}

	inv, err := invoice.NewInvoice(
		cmd.InvoiceID(), cmd.ClientID(),
		cmd.PeriodStart(), cmd.PeriodEnd(),
		summaries, cmd.Extras(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.InvoiceRepository().Add(ctx, inv); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// billOrder transitions one order to Invoiced and builds its summary line.
// The hours on the line come from closed sessions only, summed inside the
// transaction; a cached figure on the order is never trusted.
func (h *GenerateInvoiceCommandHandler) billOrder(
	ctx context.Context,
	uow BillingUoW,
	orderID kernel.UUID,
) (invoice.OrderSummary, error) {
	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return invoice.OrderSummary{}, err
	}

	if err = o.MarkInvoiced(); err != nil {
		return invoice.OrderSummary{}, err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return invoice.OrderSummary{}, err
	}

	hours, err := uow.SessionRepository().SumClosedHoursByOrder(ctx, orderID)
	if err != nil {
		return invoice.OrderSummary{}, err
	}

	return invoice.NewOrderSummary(o.ID(), o.Number(), o.SaleValue(), hours)
}
