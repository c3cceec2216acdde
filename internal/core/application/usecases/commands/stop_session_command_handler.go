package commands

import (
	"context"
	"time"
)

// StopSessionCommandHandler closes the worker's open session on a task.
// Hours are computed once at close from the persisted start instant, and the
// order's derived status is recomputed in the same transaction: other open
// sessions keep it in Production, otherwise it falls back to Stopped (or
// moves on to quality control when the tasks are all done).
type StopSessionCommandHandler struct {
	uowFactory WorkUoWFactory
}

// NewStopSessionCommandHandler creates a handler for closing sessions.
func NewStopSessionCommandHandler(uowFactory WorkUoWFactory) StopSessionCommandHandler {
	return StopSessionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle closes the session and reconciles the order status.
// Returns worksession.ErrSessionNotFound when the worker has no open session
// on the task.
func (h *StopSessionCommandHandler) Handle(ctx context.Context, cmd StopSessionCommand) error {
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

	sessionRepo := uow.SessionRepository()

	session, err := sessionRepo.GetOpenByTaskAndWorker(ctx, cmd.TaskID(), cmd.WorkerID())
	if err != nil {
		return err
	}

	if err = session.Close(time.Now().UTC(), cmd.Note()); err != nil {
		return err
	}
	if err = sessionRepo.Update(ctx, session); err != nil {
		return err
	}

	t, err := uow.TaskRepository().Get(ctx, cmd.TaskID())
	if err != nil {
		return err
	}

	if err = reconcileOrderStatus(ctx, uow, t.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
