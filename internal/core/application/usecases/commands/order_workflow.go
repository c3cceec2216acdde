package commands

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
)

// applyOrderTransition loads an order, applies a workflow transition and
// persists the result in one transaction. Shared by the handlers whose whole
// job is a single manual status change.
func applyOrderTransition(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	apply func(*order.Order) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = apply(o); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
