package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrAddInventoryItemCommandIsNotConstructed = errors.New(
		"AddInventoryItemCommand must be created via NewAddInventoryItemCommand constructor",
	)
	ErrItemNameIsRequired  = errors.New("item name is required")
	ErrQuantityIsNegative  = errors.New("quantity must not be negative")
	ErrUnitPriceIsNegative = errors.New("unit price must not be negative")
)

// AddInventoryItemCommand represents a request to register a new stock item.
type AddInventoryItemCommand struct { //nolint:recvcheck //using for validation
	itemID    kernel.UUID
	name      string
	quantity  int
	unitPrice decimal.Decimal

	guard guard.ConstructorGuard
}

// NewAddInventoryItemCommand creates a command to register a stock item.
func NewAddInventoryItemCommand(
	itemID kernel.UUID,
	name string,
	quantity int,
	unitPrice decimal.Decimal,
) (AddInventoryItemCommand, error) {
	cmd := AddInventoryItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := itemID.Validate(); err != nil {
		return AddInventoryItemCommand{}, err
	}
	if name == "" {
		return AddInventoryItemCommand{}, ErrItemNameIsRequired
	}
	if quantity < 0 {
		return AddInventoryItemCommand{}, ErrQuantityIsNegative
	}
	if unitPrice.IsNegative() {
		return AddInventoryItemCommand{}, ErrUnitPriceIsNegative
	}
	cmd.itemID = itemID
	cmd.name = name
	cmd.quantity = quantity
	cmd.unitPrice = unitPrice

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddInventoryItemCommand) Validate() error {
	return c.guard.Validate(ErrAddInventoryItemCommandIsNotConstructed)
}

// ItemID returns the identifier for the new item.
func (c AddInventoryItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the item name.
func (c AddInventoryItemCommand) Name() string {
	return c.name
}

// Quantity returns the initial stock level.
func (c AddInventoryItemCommand) Quantity() int {
	return c.quantity
}

// UnitPrice returns the item's unit price.
func (c AddInventoryItemCommand) UnitPrice() decimal.Decimal {
	return c.unitPrice
}
