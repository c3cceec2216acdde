package commands

import (
	"context"
	"errors"
	"time"

	"workshop/internal/core/domain/services"
)

// DeleteTaskCommandHandler tombstones a task. Open sessions block the
// deletion unless forced, in which case they are closed in the same
// transaction. The task's consumption records are removed; its time sessions
// are kept for history. Consumed stock is not restored.
type DeleteTaskCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteTaskCommandHandler creates a handler for task deletion.
func NewDeleteTaskCommandHandler(uowFactory UoWFactory) DeleteTaskCommandHandler {
	return DeleteTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion. Returns ErrTaskHasActiveSession when the
// task has open sessions and force is not set.
func (h *DeleteTaskCommandHandler) Handle(ctx context.Context, cmd DeleteTaskCommand) error {
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

	now := time.Now().UTC()
	if err = h.closeOpenSessions(ctx, uow, cmd, now); err != nil {
		return err
	}

	if err = t.MarkDeleted(now); err != nil {
		return err
	}
	if err = taskRepo.Update(ctx, t); err != nil {
		return err
	}

	if err = uow.InventoryRepository().DeleteConsumptionsByTask(ctx, t.ID()); err != nil {
		return err
	}

	// Removing the last live task leaves nothing to derive a status from;
	// the order keeps its current status then.
	if err = reconcileOrderStatus(ctx, uow, t.OrderID()); err != nil &&
		!errors.Is(err, services.ErrInconsistentDerivedState) {
		return err
	}

	return uow.Commit(ctx)
}

func (h *DeleteTaskCommandHandler) closeOpenSessions(
	ctx context.Context,
	uow UoW,
	cmd DeleteTaskCommand,
	now time.Time,
) error {
	sessionRepo := uow.SessionRepository()

	open, err := sessionRepo.GetOpenByTask(ctx, cmd.TaskID())
	if err != nil {
		return err
	}
	if len(open) == 0 {
		return nil
	}
	if !cmd.Force() {
		return ErrTaskHasActiveSession
	}

	for _, s := range open {
		if err = s.Close(now, "closed on task deletion"); err != nil {
			return err
		}
		if err = sessionRepo.Update(ctx, s); err != nil {
			return err
		}
	}

	return nil
}
