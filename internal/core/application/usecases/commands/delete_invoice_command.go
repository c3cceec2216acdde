package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrDeleteInvoiceCommandIsNotConstructed = errors.New(
	"DeleteInvoiceCommand must be created via NewDeleteInvoiceCommand constructor",
)

// DeleteInvoiceCommand represents a request to remove an invoice. The
// referenced orders keep their Invoiced status; deletion does not unwind the
// billing transition.
type DeleteInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteInvoiceCommand creates a command to delete an invoice.
func NewDeleteInvoiceCommand(invoiceID kernel.UUID) (DeleteInvoiceCommand, error) {
	cmd := DeleteInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := invoiceID.Validate(); err != nil {
		return DeleteInvoiceCommand{}, err
	}
	cmd.invoiceID = invoiceID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrDeleteInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the invoice to delete.
func (c DeleteInvoiceCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}
