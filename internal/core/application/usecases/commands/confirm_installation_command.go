package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrConfirmInstallationCommandIsNotConstructed = errors.New(
	"ConfirmInstallationCommand must be created via NewConfirmInstallationCommand constructor",
)

// ConfirmInstallationCommand represents a carried-out installation,
// releasing the order for invoicing.
type ConfirmInstallationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmInstallationCommand creates a command to confirm an installation.
func NewConfirmInstallationCommand(orderID kernel.UUID) (ConfirmInstallationCommand, error) {
	cmd := ConfirmInstallationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return ConfirmInstallationCommand{}, err
	}
	cmd.orderID = orderID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmInstallationCommand) Validate() error {
	return c.guard.Validate(ErrConfirmInstallationCommandIsNotConstructed)
}

// OrderID returns the installed order.
func (c ConfirmInstallationCommand) OrderID() kernel.UUID {
	return c.orderID
}
