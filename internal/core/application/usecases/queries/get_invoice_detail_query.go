package queries

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetInvoiceDetailQueryIsNotConstructed = errors.New(
		"GetInvoiceDetailQuery must be created via NewGetInvoiceDetailQuery constructor",
	)
)

// GetInvoiceDetailQuery retrieves a fully-resolved invoice with its per-order
// summaries and extra charges.
type GetInvoiceDetailQuery struct {
	invoiceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetInvoiceDetailQuery creates a query for the given invoice.
func NewGetInvoiceDetailQuery(invoiceID kernel.UUID) (GetInvoiceDetailQuery, error) {
	if err := invoiceID.Validate(); err != nil {
		return GetInvoiceDetailQuery{}, errs.NewValueIsInvalidErrorWithCause("invoiceID", err)
	}
	return GetInvoiceDetailQuery{invoiceID: invoiceID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInvoiceDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoiceDetailQueryIsNotConstructed)
}

// InvoiceID returns the identifier of the invoice to resolve.
func (q GetInvoiceDetailQuery) InvoiceID() kernel.UUID {
	return q.invoiceID
}

// InvoiceOrderSummaryResponse is one billed order line of the invoice,
// frozen at generation time.
type InvoiceOrderSummaryResponse struct {
	OrderID    kernel.UUID
	Number     string
	SaleValue  decimal.Decimal
	TotalHours decimal.Decimal
}

// InvoiceExtraChargeResponse is one ad-hoc charge line of the invoice.
type InvoiceExtraChargeResponse struct {
	Description string
	Value       decimal.Decimal
}

// GetInvoiceDetailQueryResponse is the resolved invoice document.
type GetInvoiceDetailQueryResponse struct {
	ID          kernel.UUID
	ClientID    kernel.UUID
	PeriodStart time.Time
	PeriodEnd   time.Time
	TotalValue  decimal.Decimal
	TotalTime   decimal.Decimal
	CreatedAt   time.Time

	Orders       []InvoiceOrderSummaryResponse
	ExtraCharges []InvoiceExtraChargeResponse
}
