package ports

import (
	"context"

	"workshop/internal/core/domain/model/invoice"
	"workshop/internal/core/domain/model/kernel"
)

// InvoiceRepository defines the persistence contract for invoices.
// Invoices are immutable: there is no Update.
type InvoiceRepository interface {
	// Add persists a new invoice with its order summaries and extra charges.
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	// Get retrieves an invoice by its unique identifier.
	// Returns errs.ObjectNotFoundError when no invoice exists for the id.
	Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error)

	// Delete removes an invoice and its lines. Order statuses are not
	// touched; that asymmetry is deliberate.
	Delete(ctx context.Context, id kernel.UUID) error

	// ExistsForOrder reports whether any invoice references the order.
	// Guard for order deletion.
	ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error)
}
