package commands

import (
	"context"
)

// RestockInventoryItemCommandHandler adds inbound stock to an item.
type RestockInventoryItemCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewRestockInventoryItemCommandHandler creates a handler for restocking.
func NewRestockInventoryItemCommandHandler(uowFactory InventoryUoWFactory) RestockInventoryItemCommandHandler {
	return RestockInventoryItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restock.
func (h *RestockInventoryItemCommandHandler) Handle(ctx context.Context, cmd RestockInventoryItemCommand) error {
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

	inventoryRepo := uow.InventoryRepository()

	item, err := inventoryRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = item.Restock(cmd.Quantity()); err != nil {
		return err
	}

	if err = inventoryRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
