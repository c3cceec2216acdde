// Package invoicerepo provides data transfer objects and mapping functions
// for invoice persistence. An invoice spans three tables: the invoice row
// itself plus its per-order summary lines and its extra charge lines. All
// three are written and removed together.
package invoicerepo

import (
	"time"

	"workshop/internal/core/domain/model/invoice"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceDTO represents the database structure for persisting invoices.
// Totals are stored for query convenience; the domain recomputes them from
// the lines on restore.
type InvoiceDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID    uuid.UUID `gorm:"type:uuid;index"`
	PeriodStart time.Time
	PeriodEnd   time.Time
	TotalValue  decimal.Decimal `gorm:"type:numeric"`
	TotalTime   decimal.Decimal `gorm:"type:numeric"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for invoice entities.
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// OrderSummaryDTO is one billed order line, frozen at generation time.
type OrderSummaryDTO struct {
	InvoiceID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Number     string
	SaleValue  decimal.Decimal `gorm:"type:numeric"`
	TotalHours decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for invoice order summaries.
func (OrderSummaryDTO) TableName() string {
	return "invoice_order_summaries"
}

// ExtraChargeDTO is one ad-hoc charge line. Seq preserves the order the
// charges were submitted in.
type ExtraChargeDTO struct {
	InvoiceID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq         int       `gorm:"primaryKey"`
	Description string
	Value       decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for invoice extra charges.
func (ExtraChargeDTO) TableName() string {
	return "invoice_extra_charges"
}

func fromDomain(aggregate *invoice.Invoice) (InvoiceDTO, []OrderSummaryDTO, []ExtraChargeDTO) {
	invoiceID := aggregate.ID().Bytes()

	dto := InvoiceDTO{
		ID:          invoiceID,
		ClientID:    aggregate.ClientID().Bytes(),
		PeriodStart: aggregate.PeriodStart(),
		PeriodEnd:   aggregate.PeriodEnd(),
		TotalValue:  aggregate.TotalValue(),
		TotalTime:   aggregate.TotalTime(),
		CreatedAt:   aggregate.CreatedAt(),
	}

	summaries := make([]OrderSummaryDTO, 0, len(aggregate.OrderSummaries()))
	for _, summary := range aggregate.OrderSummaries() {
		summaries = append(summaries, OrderSummaryDTO{
			InvoiceID:  invoiceID,
			OrderID:    summary.OrderID.Bytes(),
			Number:     summary.Number.String(),
			SaleValue:  summary.SaleValue,
			TotalHours: summary.TotalHours,
		})
	}

	extras := make([]ExtraChargeDTO, 0, len(aggregate.ExtraCharges()))
	for i, extra := range aggregate.ExtraCharges() {
		extras = append(extras, ExtraChargeDTO{
			InvoiceID:   invoiceID,
			Seq:         i + 1,
			Description: extra.Description,
			Value:       extra.Value,
		})
	}

	return dto, summaries, extras
}

func toDomain(
	dto InvoiceDTO,
	summaryDTOs []OrderSummaryDTO,
	extraDTOs []ExtraChargeDTO,
) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	summaries := make([]invoice.OrderSummary, 0, len(summaryDTOs))
	for _, s := range summaryDTOs {
		orderID, summaryErr := kernel.UUIDFromBytes(s.OrderID[:])
		if summaryErr != nil {
			return nil, summaryErr
		}

		number, summaryErr := order.ParseNumber(s.Number)
		if summaryErr != nil {
			return nil, summaryErr
		}

		summary, summaryErr := invoice.NewOrderSummary(orderID, number, s.SaleValue, s.TotalHours)
		if summaryErr != nil {
			return nil, summaryErr
		}
		summaries = append(summaries, summary)
	}

	extras := make([]invoice.ExtraCharge, 0, len(extraDTOs))
	for _, e := range extraDTOs {
		extra, extraErr := invoice.NewExtraCharge(e.Description, e.Value)
		if extraErr != nil {
			return nil, extraErr
		}
		extras = append(extras, extra)
	}

	return invoice.RestoreInvoice(
		id,
		clientID,
		dto.PeriodStart,
		dto.PeriodEnd,
		summaries,
		extras,
		dto.CreatedAt,
	)
}
