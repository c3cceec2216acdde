package commands

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/invoice"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var (
	ErrGenerateInvoiceCommandIsNotConstructed = errors.New(
		"GenerateInvoiceCommand must be created via NewGenerateInvoiceCommand constructor",
	)
	ErrNoOrdersToInvoice = errors.New("at least one order is required")
)

// GenerateInvoiceCommand represents a request to aggregate one or more
// delivered orders plus ad-hoc extra charges into a single invoice for a
// billing period.
type GenerateInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID   kernel.UUID
	clientID    kernel.UUID
	orderIDs    []kernel.UUID
	extras      []invoice.ExtraCharge
	periodStart time.Time
	periodEnd   time.Time

	guard guard.ConstructorGuard
}

// NewGenerateInvoiceCommand creates a command to generate an invoice.
// Extra charges must be built through invoice.NewExtraCharge.
func NewGenerateInvoiceCommand(
	invoiceID, clientID kernel.UUID,
	orderIDs []kernel.UUID,
	extras []invoice.ExtraCharge,
	periodStart, periodEnd time.Time,
) (GenerateInvoiceCommand, error) {
	cmd := GenerateInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		invoiceID.Validate(),
		clientID.Validate(),
	); err != nil {
		return GenerateInvoiceCommand{}, err
	}
	if len(orderIDs) == 0 {
		return GenerateInvoiceCommand{}, ErrNoOrdersToInvoice
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return GenerateInvoiceCommand{}, err
		}
	}
	if periodStart.IsZero() || periodEnd.IsZero() {
		return GenerateInvoiceCommand{}, errs.NewValueIsRequiredError("billing period")
	}
	if periodEnd.Before(periodStart) {
		return GenerateInvoiceCommand{}, errs.NewValueIsInvalidError("billing period")
	}

	cmd.invoiceID = invoiceID
	cmd.clientID = clientID
	cmd.orderIDs = make([]kernel.UUID, len(orderIDs))
	copy(cmd.orderIDs, orderIDs)
	cmd.extras = make([]invoice.ExtraCharge, len(extras))
	copy(cmd.extras, extras)
	cmd.periodStart = periodStart
	cmd.periodEnd = periodEnd

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrGenerateInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the identifier for the new invoice.
func (c GenerateInvoiceCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// ClientID returns the billed client.
func (c GenerateInvoiceCommand) ClientID() kernel.UUID {
	return c.clientID
}

// OrderIDs returns the orders to aggregate.
func (c GenerateInvoiceCommand) OrderIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(c.orderIDs))
	copy(out, c.orderIDs)
	return out
}

// Extras returns the ad-hoc charges.
func (c GenerateInvoiceCommand) Extras() []invoice.ExtraCharge {
	out := make([]invoice.ExtraCharge, len(c.extras))
	copy(out, c.extras)
	return out
}

// PeriodStart returns the start of the billing period.
func (c GenerateInvoiceCommand) PeriodStart() time.Time {
	return c.periodStart
}

// PeriodEnd returns the end of the billing period.
func (c GenerateInvoiceCommand) PeriodEnd() time.Time {
	return c.periodEnd
}
