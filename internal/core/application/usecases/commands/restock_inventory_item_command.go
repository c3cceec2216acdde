package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var (
	ErrRestockInventoryItemCommandIsNotConstructed = errors.New(
		"RestockInventoryItemCommand must be created via NewRestockInventoryItemCommand constructor",
	)
	ErrQuantityIsNotPositive = errors.New("quantity must be greater than 0")
)

// RestockInventoryItemCommand represents inbound stock for an item.
type RestockInventoryItemCommand struct { //nolint:recvcheck //using for validation
	itemID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewRestockInventoryItemCommand creates a command to add stock to an item.
func NewRestockInventoryItemCommand(itemID kernel.UUID, quantity int) (RestockInventoryItemCommand, error) {
	cmd := RestockInventoryItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := itemID.Validate(); err != nil {
		return RestockInventoryItemCommand{}, err
	}
	if quantity <= 0 {
		return RestockInventoryItemCommand{}, ErrQuantityIsNotPositive
	}
	cmd.itemID = itemID
	cmd.quantity = quantity

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RestockInventoryItemCommand) Validate() error {
	return c.guard.Validate(ErrRestockInventoryItemCommandIsNotConstructed)
}

// ItemID returns the item to restock.
func (c RestockInventoryItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Quantity returns the inbound quantity.
func (c RestockInventoryItemCommand) Quantity() int {
	return c.quantity
}
