package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrConsumeMaterialCommandIsNotConstructed = errors.New(
	"ConsumeMaterialCommand must be created via NewConsumeMaterialCommand constructor",
)

// ConsumeMaterialCommand represents a task drawing material from stock.
type ConsumeMaterialCommand struct { //nolint:recvcheck //using for validation
	recordID kernel.UUID
	taskID   kernel.UUID
	itemID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewConsumeMaterialCommand creates a command to consume stock for a task.
func NewConsumeMaterialCommand(recordID, taskID, itemID kernel.UUID, quantity int) (ConsumeMaterialCommand, error) {
	cmd := ConsumeMaterialCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		recordID.Validate(),
		taskID.Validate(),
		itemID.Validate(),
	); err != nil {
		return ConsumeMaterialCommand{}, err
	}
	if quantity <= 0 {
		return ConsumeMaterialCommand{}, ErrQuantityIsNotPositive
	}
	cmd.recordID = recordID
	cmd.taskID = taskID
	cmd.itemID = itemID
	cmd.quantity = quantity

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConsumeMaterialCommand) Validate() error {
	return c.guard.Validate(ErrConsumeMaterialCommandIsNotConstructed)
}

// RecordID returns the identifier for the ledger record.
func (c ConsumeMaterialCommand) RecordID() kernel.UUID {
	return c.recordID
}

// TaskID returns the consuming task.
func (c ConsumeMaterialCommand) TaskID() kernel.UUID {
	return c.taskID
}

// ItemID returns the consumed item.
func (c ConsumeMaterialCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Quantity returns the consumed quantity.
func (c ConsumeMaterialCommand) Quantity() int {
	return c.quantity
}
