package commands

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrScheduleInstallationCommandIsNotConstructed = errors.New(
	"ScheduleInstallationCommand must be created via NewScheduleInstallationCommand constructor",
)

// ScheduleInstallationCommand represents a request to schedule an on-site
// installation for a ready order instead of a client pickup.
type ScheduleInstallationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	date    time.Time

	guard guard.ConstructorGuard
}

// NewScheduleInstallationCommand creates a command to schedule an installation.
func NewScheduleInstallationCommand(orderID kernel.UUID, date time.Time) (ScheduleInstallationCommand, error) {
	cmd := ScheduleInstallationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return ScheduleInstallationCommand{}, err
	}
	if date.IsZero() {
		return ScheduleInstallationCommand{}, errs.NewValueIsRequiredError("date")
	}
	cmd.orderID = orderID
	cmd.date = date

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ScheduleInstallationCommand) Validate() error {
	return c.guard.Validate(ErrScheduleInstallationCommandIsNotConstructed)
}

// OrderID returns the order to install.
func (c ScheduleInstallationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Date returns the planned installation date.
func (c ScheduleInstallationCommand) Date() time.Time {
	return c.date
}
