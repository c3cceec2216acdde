package commands

import (
	"context"

	"workshop/internal/core/domain/model/inventory"
)

// AddInventoryItemCommandHandler registers a new stock item.
type AddInventoryItemCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewAddInventoryItemCommandHandler creates a handler for item registration.
func NewAddInventoryItemCommandHandler(uowFactory InventoryUoWFactory) AddInventoryItemCommandHandler {
	return AddInventoryItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration.
func (h *AddInventoryItemCommandHandler) Handle(ctx context.Context, cmd AddInventoryItemCommand) error {
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

	item, err := inventory.NewItem(cmd.ItemID(), cmd.Name(), cmd.Quantity(), cmd.UnitPrice())
	if err != nil {
		return err
	}

	if err = uow.InventoryRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
