package commands

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/inventory"
	"workshop/internal/core/domain/model/task"
)

// ConsumeMaterialCommandHandler decrements stock for a task and writes the
// matching ledger record. The decrement is a single conditional update: under
// concurrent consumption the stock never goes negative, a shortfall leaves
// both the stock and the ledger untouched.
type ConsumeMaterialCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewConsumeMaterialCommandHandler creates a handler for material consumption.
func NewConsumeMaterialCommandHandler(uowFactory InventoryUoWFactory) ConsumeMaterialCommandHandler {
	return ConsumeMaterialCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the consumption. Returns inventory.InsufficientStockError
// when the stock cannot cover the requested quantity.
func (h *ConsumeMaterialCommandHandler) Handle(ctx context.Context, cmd ConsumeMaterialCommand) error {
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

	t, err := uow.TaskRepository().Get(ctx, cmd.TaskID())
	if err != nil {
		return err
	}
	if t.IsDeleted() {
		return task.ErrTaskDeleted
	}

	inventoryRepo := uow.InventoryRepository()

	if err = inventoryRepo.Consume(ctx, cmd.ItemID(), cmd.Quantity()); err != nil {
		return err
	}

	record, err := inventory.NewConsumptionRecord(
		cmd.RecordID(), cmd.TaskID(), cmd.ItemID(), cmd.Quantity(), time.Now().UTC())
	if err != nil {
		return err
	}
	if err = inventoryRepo.AddConsumption(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
