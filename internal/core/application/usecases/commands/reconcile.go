package commands

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/services"
)

// reconcileOrderStatus recomputes the order's derived status from its tasks
// and open sessions and persists it when it changed. Runs inside the caller's
// transaction, immediately after the write that may have invalidated the
// status. There is no background sweep; this post-write hook is the only
// place derived transitions happen.
func reconcileOrderStatus(ctx context.Context, uow WorkUoW, orderID kernel.UUID) error {
	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	tasks, err := uow.TaskRepository().GetByOrder(ctx, orderID)
	if err != nil {
		return err
	}

	openSessions, err := uow.SessionRepository().CountOpenByOrder(ctx, orderID)
	if err != nil {
		return err
	}

	previous := o.Status()
	current, err := services.NewStatusReconciler().Reconcile(o, tasks, openSessions)
	if err != nil {
		return err
	}

	if current == previous {
		return nil
	}
	return orderRepo.Update(ctx, o)
}
