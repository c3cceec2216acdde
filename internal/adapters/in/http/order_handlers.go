package http

import (
	"net/http"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder opens a new order.
//
//	@Summary	Open a new order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		order	body		CreateOrderRequest	true	"Order to open"
//	@Success	201		{object}	CreatedResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	clientID, err := kernel.UUIDFromString(request.ClientID)
	if err != nil {
		return s.badRequest(ctx, "invalid client id: "+err.Error())
	}
	urgency, err := order.UrgencyFromString(request.Urgency)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, clientID,
		request.Description, request.SaleValue, urgency, request.Deadline)
	if err != nil {
		return s.badRequest(ctx, "invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.Bytes()})
}

// GetOrderSummary returns the aggregated view of a single order.
//
//	@Summary	Get an order with task and time aggregates
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"Order ID"
//	@Success	200	{object}	OrderSummaryResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders/{id} [get]
func (s *Server) GetOrderSummary(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderSummaryQuery(orderID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	result, err := s.getOrderSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaryResponse(result))
}

// DeleteOrder removes an order that is not referenced by any invoice.
//
//	@Summary	Delete an order
//	@Tags		orders
//	@Param		id	path	string	true	"Order ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/orders/{id} [delete]
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "invalid order id: "+err.Error())
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if handleErr := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignOrderWorker assigns or unassigns the responsible worker.
//
//	@Summary	Assign or unassign the order worker
//	@Tags		orders
//	@Accept		json
//	@Param		id		path	string				true	"Order ID"
//	@Param		worker	body	AssignWorkerRequest	true	"Worker to assign; null unassigns"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders/{id}/worker [patch]
func (s *Server) AssignOrderWorker(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "invalid order id: "+err.Error())
	}

	var request AssignWorkerRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}
	workerID, err := parseOptionalWorker(request.WorkerID)
	if err != nil {
		return s.badRequest(ctx, "invalid worker id: "+err.Error())
	}

	cmd, err := commands.NewAssignOrderWorkerCommand(orderID, workerID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if handleErr := s.assignOrderWorkerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReviewQuality records the quality control verdict for an order.
//
//	@Summary	Approve or reject quality control
//	@Tags		orders
//	@Accept		json
//	@Param		id		path	string					true	"Order ID"
//	@Param		review	body	ReviewQualityRequest	true	"Verdict"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/orders/{id}/review [post]
func (s *Server) ReviewQuality(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "invalid order id: "+err.Error())
	}

	var request ReviewQualityRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewReviewQualityCommand(orderID, request.Approved)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if handleErr := s.reviewQualityHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmPickup marks an approved order as picked up by the client.
//
//	@Summary	Confirm client pickup
//	@Tags		orders
//	@Param		id	path	string	true	"Order ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/orders/{id}/pickup [post]
func (s *Server) ConfirmPickup(ctx echo.Context) error {
	return s.orderTransition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewConfirmPickupCommand(orderID)
		if err != nil {
			return err
		}
		return s.confirmPickupHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// ScheduleInstallation books an installation visit for an approved order.
//
//	@Summary	Schedule an installation
//	@Tags		orders
//	@Accept		json
//	@Param		id			path	string						true	"Order ID"
//	@Param		schedule	body	ScheduleInstallationRequest	true	"Installation date"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/orders/{id}/installation [post]
func (s *Server) ScheduleInstallation(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "invalid order id: "+err.Error())
	}

	var request ScheduleInstallationRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewScheduleInstallationCommand(orderID, request.Date)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if handleErr := s.scheduleInstallationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmInstallation records that the scheduled installation happened.
//
//	@Summary	Confirm an installation
//	@Tags		orders
//	@Param		id	path	string	true	"Order ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/orders/{id}/installation/confirm [post]
func (s *Server) ConfirmInstallation(ctx echo.Context) error {
	return s.orderTransition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewConfirmInstallationCommand(orderID)
		if err != nil {
			return err
		}
		return s.confirmInstallationHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// ArchiveOrder moves an invoiced order to its terminal completed state.
//
//	@Summary	Archive an invoiced order
//	@Tags		orders
//	@Param		id	path	string	true	"Order ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/orders/{id}/archive [post]
func (s *Server) ArchiveOrder(ctx echo.Context) error {
	return s.orderTransition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewArchiveOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.archiveOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// HoldOrder pauses an order at the client's request.
//
//	@Summary	Put an order on hold
//	@Tags		orders
//	@Param		id	path	string	true	"Order ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/orders/{id}/hold [post]
func (s *Server) HoldOrder(ctx echo.Context) error {
	return s.orderTransition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewHoldOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.holdOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// ResumeOrder resumes a held or stopped order.
//
//	@Summary	Resume a held or stopped order
//	@Tags		orders
//	@Param		id	path	string	true	"Order ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/orders/{id}/resume [post]
func (s *Server) ResumeOrder(ctx echo.Context) error {
	return s.orderTransition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewResumeOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.resumeOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CancelOrder cancels an order that was never invoiced.
//
//	@Summary	Cancel an order
//	@Tags		orders
//	@Param		id	path	string	true	"Order ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/orders/{id}/cancel [post]
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.orderTransition(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewCancelOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// orderTransition handles the bodyless status transition routes, which differ
// only in the command they build.
func (s *Server) orderTransition(ctx echo.Context, apply func(orderID kernel.UUID) error) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "invalid order id: "+err.Error())
	}

	if err := apply(orderID); err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
