package http

import (
	"net/http"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/invoice"
	"workshop/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GenerateInvoice aggregates billable orders into an invoice.
//
//	@Summary	Generate an invoice
//	@Tags		invoices
//	@Accept		json
//	@Produce	json
//	@Param		invoice	body		GenerateInvoiceRequest	true	"Orders and extra charges to bill"
//	@Success	201		{object}	CreatedResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/invoices [post]
func (s *Server) GenerateInvoice(ctx echo.Context) error {
	var request GenerateInvoiceRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	clientID, err := kernel.UUIDFromString(request.ClientID)
	if err != nil {
		return s.badRequest(ctx, "invalid client id: "+err.Error())
	}

	orderIDs := make([]kernel.UUID, len(request.OrderIDs))
	for i, raw := range request.OrderIDs {
		orderIDs[i], err = kernel.UUIDFromString(raw)
		if err != nil {
			return s.badRequest(ctx, "invalid order id: "+err.Error())
		}
	}

	extras := make([]invoice.ExtraCharge, len(request.ExtraCharges))
	for i, raw := range request.ExtraCharges {
		extras[i], err = invoice.NewExtraCharge(raw.Description, raw.Value)
		if err != nil {
			return s.badRequest(ctx, "invalid extra charge: "+err.Error())
		}
	}

	invoiceID := kernel.NewUUID()
	cmd, err := commands.NewGenerateInvoiceCommand(invoiceID, clientID,
		orderIDs, extras, request.PeriodStart, request.PeriodEnd)
	if err != nil {
		return s.badRequest(ctx, "invalid invoice data: "+err.Error())
	}

	if handleErr := s.generateInvoiceHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: invoiceID.Bytes()})
}

// GetInvoiceDetail returns an invoice with all its lines and totals.
//
//	@Summary	Get an invoice
//	@Tags		invoices
//	@Produce	json
//	@Param		id	path		string	true	"Invoice ID"
//	@Success	200	{object}	InvoiceDetailResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/invoices/{id} [get]
func (s *Server) GetInvoiceDetail(ctx echo.Context) error {
	invoiceID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "invalid invoice id: "+err.Error())
	}

	query, err := queries.NewGetInvoiceDetailQuery(invoiceID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	result, err := s.getInvoiceDetailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toInvoiceDetailResponse(result))
}

// DeleteInvoice removes a wrongly issued invoice. Order statuses are left
// untouched; moving them back is a separate human decision.
//
//	@Summary	Delete an invoice
//	@Tags		invoices
//	@Param		id	path	string	true	"Invoice ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/invoices/{id} [delete]
func (s *Server) DeleteInvoice(ctx echo.Context) error {
	invoiceID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "invalid invoice id: "+err.Error())
	}

	cmd, err := commands.NewDeleteInvoiceCommand(invoiceID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if handleErr := s.deleteInvoiceHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}
