package commands

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/task"
	"workshop/internal/core/domain/model/worksession"
)

// StartSessionCommandHandler opens a work session on a task. In the same
// transaction the task is marked in progress if still pending and the order
// is pushed into Production. The storage layer's uniqueness guarantee turns
// a concurrent duplicate open into worksession.ErrSessionAlreadyOpen.
type StartSessionCommandHandler struct {
	uowFactory WorkUoWFactory
}

// NewStartSessionCommandHandler creates a handler for opening sessions.
func NewStartSessionCommandHandler(uowFactory WorkUoWFactory) StartSessionCommandHandler {
	return StartSessionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle opens the session and applies the derived transitions.
func (h *StartSessionCommandHandler) Handle(ctx context.Context, cmd StartSessionCommand) error {
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

	taskRepo := uow.TaskRepository()

	t, err := taskRepo.Get(ctx, cmd.TaskID())
	if err != nil {
		return err
	}
	if t.IsDeleted() {
		return task.ErrTaskDeleted
	}

	now := time.Now().UTC()

	session, err := worksession.NewSession(cmd.SessionID(), cmd.TaskID(), cmd.WorkerID(), now)
	if err != nil {
		return err
	}
	if err = uow.SessionRepository().Add(ctx, session); err != nil {
		return err
	}

	if t.Status() == task.Pending {
		if err = t.Start(now); err != nil {
			return err
		}
		if err = taskRepo.Update(ctx, t); err != nil {
			return err
		}
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, t.OrderID())
	if err != nil {
		return err
	}
	if err = o.StartWork(); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
