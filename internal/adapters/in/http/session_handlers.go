package http

import (
	"net/http"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// StartSession starts a work timer for a worker on a task.
//
//	@Summary	Start a work session
//	@Tags		sessions
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Task ID"
//	@Param		session	body		StartSessionRequest	true	"Worker starting the timer"
//	@Success	201		{object}	CreatedResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/tasks/{id}/sessions [post]
func (s *Server) StartSession(ctx echo.Context) error {
	taskID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "invalid task id: "+err.Error())
	}

	var request StartSessionRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}
	workerID, err := kernel.UUIDFromString(request.WorkerID)
	if err != nil {
		return s.badRequest(ctx, "invalid worker id: "+err.Error())
	}

	sessionID := kernel.NewUUID()
	cmd, err := commands.NewStartSessionCommand(sessionID, taskID, workerID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if handleErr := s.startSessionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: sessionID.Bytes()})
}

// StopSession stops the open timer for a worker on a task.
//
//	@Summary	Stop a work session
//	@Tags		sessions
//	@Accept		json
//	@Param		id		path	string				true	"Task ID"
//	@Param		session	body	StopSessionRequest	true	"Worker stopping the timer"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/tasks/{id}/sessions/stop [post]
func (s *Server) StopSession(ctx echo.Context) error {
	taskID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "invalid task id: "+err.Error())
	}

	var request StopSessionRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "invalid request body")
	}
	workerID, err := kernel.UUIDFromString(request.WorkerID)
	if err != nil {
		return s.badRequest(ctx, "invalid worker id: "+err.Error())
	}

	cmd, err := commands.NewStopSessionCommand(taskID, workerID, request.Note)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if handleErr := s.stopSessionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOpenSessions lists all running work timers across the workshop.
//
//	@Summary	List open work sessions
//	@Tags		sessions
//	@Produce	json
//	@Success	200	{array}	OpenSessionResponse
//	@Router		/sessions/open [get]
func (s *Server) GetOpenSessions(ctx echo.Context) error {
	result, err := s.getOpenSessionsHandler.Handle(ctx.Request().Context(),
		queries.NewGetOpenSessionsQuery())
	if err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOpenSessionResponses(result))
}
