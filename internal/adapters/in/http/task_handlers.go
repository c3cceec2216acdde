package http

import (
	"net/http"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/task"

	"github.com/labstack/echo/v4"
)

// CreateTask adds a task under an order.
//
//	@Summary	Create a task under an order
//	@Tags		tasks
//	@Accept		json
//	@Produce	json
//	@Param		task	body		CreateTaskRequest	true	"Task to create"
//	@Success	201		{object}	CreatedResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/tasks [post]
func (s *Server) CreateTask(ctx echo.Context) error {
	var request CreateTaskRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(request.OrderID)
	if err != nil {
		return s.badRequest(ctx, "invalid order id: "+err.Error())
	}
	priority, err := task.PriorityFromString(request.Priority)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	taskID := kernel.NewUUID()
	cmd, err := commands.NewCreateTaskCommand(taskID, orderID,
		request.Title, request.Description, priority, request.EstimatedHours)
	if err != nil {
		return s.badRequest(ctx, "invalid task data: "+err.Error())
	}

	if handleErr := s.createTaskHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: taskID.Bytes()})
}

// UpdateTask edits a task's descriptive fields.
//
//	@Summary	Update a task
//	@Tags		tasks
//	@Accept		json
//	@Param		id		path	string				true	"Task ID"
//	@Param		task	body	UpdateTaskRequest	true	"New task fields"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/tasks/{id} [put]
func (s *Server) UpdateTask(ctx echo.Context) error {
	taskID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "invalid task id: "+err.Error())
	}

	var request UpdateTaskRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}
	priority, err := task.PriorityFromString(request.Priority)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdateTaskCommand(taskID,
		request.Title, request.Description, priority, request.EstimatedHours)
	if err != nil {
		return s.badRequest(ctx, "invalid task data: "+err.Error())
	}

	if handleErr := s.updateTaskHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteTask tombstones a task. With force=true an open work session is
// closed instead of blocking the delete.
//
//	@Summary	Delete a task
//	@Tags		tasks
//	@Param		id		path	string	true	"Task ID"
//	@Param		force	query	bool	false	"Close open sessions instead of failing"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/tasks/{id} [delete]
func (s *Server) DeleteTask(ctx echo.Context) error {
	taskID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "invalid task id: "+err.Error())
	}

	force := ctx.QueryParam("force") == "true"

	cmd, err := commands.NewDeleteTaskCommand(taskID, force)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if handleErr := s.deleteTaskHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignTaskWorker assigns or unassigns the worker on a task.
//
//	@Summary	Assign or unassign the task worker
//	@Tags		tasks
//	@Accept		json
//	@Param		id		path	string				true	"Task ID"
//	@Param		worker	body	AssignWorkerRequest	true	"Worker to assign; null unassigns"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/tasks/{id}/worker [patch]
func (s *Server) AssignTaskWorker(ctx echo.Context) error {
	taskID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "invalid task id: "+err.Error())
	}

	var request AssignWorkerRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}
	workerID, err := parseOptionalWorker(request.WorkerID)
	if err != nil {
		return s.badRequest(ctx, "invalid worker id: "+err.Error())
	}

	cmd, err := commands.NewAssignTaskWorkerCommand(taskID, workerID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if handleErr := s.assignTaskWorkerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateTaskStatus moves a task to the requested status and reconciles the
// owning order.
//
//	@Summary	Change a task's status
//	@Tags		tasks
//	@Accept		json
//	@Param		id		path	string					true	"Task ID"
//	@Param		status	body	UpdateTaskStatusRequest	true	"Target status"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	409	{object}	ErrorResponse
//	@Router		/tasks/{id}/status [patch]
func (s *Server) UpdateTaskStatus(ctx echo.Context) error {
	taskID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "invalid task id: "+err.Error())
	}

	var request UpdateTaskStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}
	target, err := task.StatusFromString(request.Status)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdateTaskStatusCommand(taskID, target)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if handleErr := s.updateTaskStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}
