package commands

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/task"
)

// ReviewQualityCommandHandler resolves the quality gate. On rejection the
// order returns to production and every completed task of the order is
// reopened for rework, all within one transaction.
type ReviewQualityCommandHandler struct {
	uowFactory WorkUoWFactory
}

// NewReviewQualityCommandHandler creates a handler for quality reviews.
func NewReviewQualityCommandHandler(uowFactory WorkUoWFactory) ReviewQualityCommandHandler {
	return ReviewQualityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review verdict.
func (h *ReviewQualityCommandHandler) Handle(ctx context.Context, cmd ReviewQualityCommand) error {
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

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.ReviewQuality(cmd.Approved()); err != nil {
		return err
	}

	if !cmd.Approved() {
		if err = h.reopenCompletedTasks(ctx, uow, cmd); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *ReviewQualityCommandHandler) reopenCompletedTasks(
	ctx context.Context,
	uow WorkUoW,
	cmd ReviewQualityCommand,
) error {
	taskRepo := uow.TaskRepository()

	tasks, err := taskRepo.GetByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, t := range tasks {
		if t.IsDeleted() || t.Status() != task.Completed {
			continue
		}
		if err = t.Reopen(now); err != nil {
			return err
		}
		if err = taskRepo.Update(ctx, t); err != nil {
			return err
		}
	}

	return nil
}
