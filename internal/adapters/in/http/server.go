// Package http exposes the workflow engine over a REST API.
//
// Request and response payloads are hand-written DTOs; domain errors are
// translated to HTTP status codes in one place so every route reports
// conflicts, missing objects and bad input the same way.
package http

import (
	"errors"
	"net/http"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/inventory"
	"workshop/internal/core/domain/model/invoice"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/task"
	"workshop/internal/core/domain/model/worksession"
	"workshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler          commands.CreateOrderCommandHandler
	assignOrderWorkerHandler    commands.AssignOrderWorkerCommandHandler
	reviewQualityHandler        commands.ReviewQualityCommandHandler
	confirmPickupHandler        commands.ConfirmPickupCommandHandler
	scheduleInstallationHandler commands.ScheduleInstallationCommandHandler
	confirmInstallationHandler  commands.ConfirmInstallationCommandHandler
	archiveOrderHandler         commands.ArchiveOrderCommandHandler
	holdOrderHandler            commands.HoldOrderCommandHandler
	resumeOrderHandler          commands.ResumeOrderCommandHandler
	cancelOrderHandler          commands.CancelOrderCommandHandler
	deleteOrderHandler          commands.DeleteOrderCommandHandler
	createTaskHandler           commands.CreateTaskCommandHandler
	updateTaskHandler           commands.UpdateTaskCommandHandler
	assignTaskWorkerHandler     commands.AssignTaskWorkerCommandHandler
	updateTaskStatusHandler     commands.UpdateTaskStatusCommandHandler
	deleteTaskHandler           commands.DeleteTaskCommandHandler
	startSessionHandler         commands.StartSessionCommandHandler
	stopSessionHandler          commands.StopSessionCommandHandler
	addInventoryItemHandler     commands.AddInventoryItemCommandHandler
	restockItemHandler          commands.RestockInventoryItemCommandHandler
	consumeMaterialHandler      commands.ConsumeMaterialCommandHandler
	generateInvoiceHandler      commands.GenerateInvoiceCommandHandler
	deleteInvoiceHandler        commands.DeleteInvoiceCommandHandler

	// Query handlers
	getOrderSummaryHandler  queries.GetOrderSummaryQueryHandler
	getOpenSessionsHandler  queries.GetOpenSessionsQueryHandler
	getInvoiceDetailHandler queries.GetInvoiceDetailQueryHandler
}

// ServerHandlers bundles every command and query handler the server routes to.
type ServerHandlers struct {
	CreateOrder          commands.CreateOrderCommandHandler
	AssignOrderWorker    commands.AssignOrderWorkerCommandHandler
	ReviewQuality        commands.ReviewQualityCommandHandler
	ConfirmPickup        commands.ConfirmPickupCommandHandler
	ScheduleInstallation commands.ScheduleInstallationCommandHandler
	ConfirmInstallation  commands.ConfirmInstallationCommandHandler
	ArchiveOrder         commands.ArchiveOrderCommandHandler
	HoldOrder            commands.HoldOrderCommandHandler
	ResumeOrder          commands.ResumeOrderCommandHandler
	CancelOrder          commands.CancelOrderCommandHandler
	DeleteOrder          commands.DeleteOrderCommandHandler
	CreateTask           commands.CreateTaskCommandHandler
	UpdateTask           commands.UpdateTaskCommandHandler
	AssignTaskWorker     commands.AssignTaskWorkerCommandHandler
	UpdateTaskStatus     commands.UpdateTaskStatusCommandHandler
	DeleteTask           commands.DeleteTaskCommandHandler
	StartSession         commands.StartSessionCommandHandler
	StopSession          commands.StopSessionCommandHandler
	AddInventoryItem     commands.AddInventoryItemCommandHandler
	RestockItem          commands.RestockInventoryItemCommandHandler
	ConsumeMaterial      commands.ConsumeMaterialCommandHandler
	GenerateInvoice      commands.GenerateInvoiceCommandHandler
	DeleteInvoice        commands.DeleteInvoiceCommandHandler

	GetOrderSummary  queries.GetOrderSummaryQueryHandler
	GetOpenSessions  queries.GetOpenSessionsQueryHandler
	GetInvoiceDetail queries.GetInvoiceDetailQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers ServerHandlers) *Server {
	return &Server{
		createOrderHandler:          handlers.CreateOrder,
		assignOrderWorkerHandler:    handlers.AssignOrderWorker,
		reviewQualityHandler:        handlers.ReviewQuality,
		confirmPickupHandler:        handlers.ConfirmPickup,
		scheduleInstallationHandler: handlers.ScheduleInstallation,
		confirmInstallationHandler:  handlers.ConfirmInstallation,
		archiveOrderHandler:         handlers.ArchiveOrder,
		holdOrderHandler:            handlers.HoldOrder,
		resumeOrderHandler:          handlers.ResumeOrder,
		cancelOrderHandler:          handlers.CancelOrder,
		deleteOrderHandler:          handlers.DeleteOrder,
		createTaskHandler:           handlers.CreateTask,
		updateTaskHandler:           handlers.UpdateTask,
		assignTaskWorkerHandler:     handlers.AssignTaskWorker,
		updateTaskStatusHandler:     handlers.UpdateTaskStatus,
		deleteTaskHandler:           handlers.DeleteTask,
		startSessionHandler:         handlers.StartSession,
		stopSessionHandler:          handlers.StopSession,
		addInventoryItemHandler:     handlers.AddInventoryItem,
		restockItemHandler:          handlers.RestockItem,
		consumeMaterialHandler:      handlers.ConsumeMaterial,
		generateInvoiceHandler:      handlers.GenerateInvoice,
		deleteInvoiceHandler:        handlers.DeleteInvoice,
		getOrderSummaryHandler:      handlers.GetOrderSummary,
		getOpenSessionsHandler:      handlers.GetOpenSessions,
		getInvoiceDetailHandler:     handlers.GetInvoiceDetail,
	}
}

// RegisterRoutes mounts every API route plus the swagger UI on the given echo
// instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrderSummary)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.PATCH("/orders/:id/worker", s.AssignOrderWorker)
	api.POST("/orders/:id/review", s.ReviewQuality)
	api.POST("/orders/:id/pickup", s.ConfirmPickup)
	api.POST("/orders/:id/installation", s.ScheduleInstallation)
	api.POST("/orders/:id/installation/confirm", s.ConfirmInstallation)
	api.POST("/orders/:id/archive", s.ArchiveOrder)
	api.POST("/orders/:id/hold", s.HoldOrder)
	api.POST("/orders/:id/resume", s.ResumeOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	api.POST("/tasks", s.CreateTask)
	api.PUT("/tasks/:id", s.UpdateTask)
	api.DELETE("/tasks/:id", s.DeleteTask)
	api.PATCH("/tasks/:id/worker", s.AssignTaskWorker)
	api.PATCH("/tasks/:id/status", s.UpdateTaskStatus)

	api.POST("/tasks/:id/sessions", s.StartSession)
	api.POST("/tasks/:id/sessions/stop", s.StopSession)
	api.GET("/sessions/open", s.GetOpenSessions)

	api.POST("/tasks/:id/consumptions", s.ConsumeMaterial)
	api.POST("/inventory/items", s.AddInventoryItem)
	api.POST("/inventory/items/:id/restock", s.RestockItem)

	api.POST("/invoices", s.GenerateInvoice)
	api.GET("/invoices/:id", s.GetInvoiceDetail)
	api.DELETE("/invoices/:id", s.DeleteInvoice)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

func errorStatus(err error) int {
	var stockErr *inventory.InsufficientStockError

	switch {
	case errors.As(err, &stockErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, worksession.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, task.ErrInvalidTransition),
		errors.Is(err, worksession.ErrSessionAlreadyOpen),
		errors.Is(err, commands.ErrOrderInvoiced),
		errors.Is(err, commands.ErrTaskHasActiveSession),
		errors.Is(err, invoice.ErrPartialInvoiceFailure),
		errors.Is(err, order.ErrSequenceExhausted):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// domainError maps a use case error onto the HTTP status codes of the API.
// Internal failures are not leaked to the client.
func (s *Server) domainError(ctx echo.Context, err error) error {
	status := errorStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
