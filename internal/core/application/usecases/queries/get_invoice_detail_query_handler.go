package queries

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetInvoiceDetailQueryHandler resolves an invoice together with the order
// summaries and extra charges frozen into it at generation time.
type GetInvoiceDetailQueryHandler struct {
	db *gorm.DB
}

// NewGetInvoiceDetailQueryHandler creates a handler for invoice detail queries.
func NewGetInvoiceDetailQueryHandler(db *gorm.DB) GetInvoiceDetailQueryHandler {
	return GetInvoiceDetailQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when no invoice
// exists under the requested identifier.
func (h GetInvoiceDetailQueryHandler) Handle(
	ctx context.Context,
	query GetInvoiceDetailQuery,
) (*GetInvoiceDetailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	resp, err := h.loadInvoice(ctx, query.InvoiceID())
	if err != nil {
		return nil, err
	}
	if err = h.loadOrderSummaries(ctx, resp); err != nil {
		return nil, err
	}
	if err = h.loadExtraCharges(ctx, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (h GetInvoiceDetailQueryHandler) loadInvoice(
	ctx context.Context,
	invoiceID kernel.UUID,
) (*GetInvoiceDetailQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			period_start,
			period_end,
			total_value,
			total_time,
			created_at
		FROM invoices
		WHERE id = ?
	`, invoiceID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("invoice", invoiceID)
	}

	var (
		resp     GetInvoiceDetailQueryResponse
		id       uuid.UUID
		clientID uuid.UUID
	)
	err = rows.Scan(
		&id,
		&clientID,
		&resp.PeriodStart,
		&resp.PeriodEnd,
		&resp.TotalValue,
		&resp.TotalTime,
		&resp.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return nil, err
	}
	if resp.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (h GetInvoiceDetailQueryHandler) loadOrderSummaries(
	ctx context.Context,
	resp *GetInvoiceDetailQueryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT order_id, number, sale_value, total_hours
		FROM invoice_order_summaries
		WHERE invoice_id = ?
		ORDER BY number
	`, resp.ID.Bytes()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	resp.Orders = make([]InvoiceOrderSummaryResponse, 0)
	for rows.Next() {
		var (
			summary InvoiceOrderSummaryResponse
			orderID uuid.UUID
		)
		err = rows.Scan(&orderID, &summary.Number, &summary.SaleValue, &summary.TotalHours)
		if err != nil {
			return err
		}

		if summary.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return err
		}
		resp.Orders = append(resp.Orders, summary)
	}
	return rows.Err()
}

func (h GetInvoiceDetailQueryHandler) loadExtraCharges(
	ctx context.Context,
	resp *GetInvoiceDetailQueryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT description, value
		FROM invoice_extra_charges
		WHERE invoice_id = ?
		ORDER BY description
	`, resp.ID.Bytes()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	resp.ExtraCharges = make([]InvoiceExtraChargeResponse, 0)
	for rows.Next() {
		var charge InvoiceExtraChargeResponse
		if err = rows.Scan(&charge.Description, &charge.Value); err != nil {
			return err
		}
		resp.ExtraCharges = append(resp.ExtraCharges, charge)
	}
	return rows.Err()
}
