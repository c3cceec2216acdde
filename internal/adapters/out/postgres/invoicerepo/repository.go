package invoicerepo

import (
	"context"
	"errors"

	"workshop/internal/core/domain/model/invoice"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInvoiceRepository implements ports.InvoiceRepository using GORM.
// Invoices are immutable; there is no Update.
type GormInvoiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInvoiceRepository creates a new GORM invoice repository.
func NewGormInvoiceRepository(db *gorm.DB, tracker aggregateTracker) *GormInvoiceRepository {
	return &GormInvoiceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists the invoice row with its summary and extra charge lines.
func (r *GormInvoiceRepository) Add(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, summaries, extras := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	if err := db.Create(&dto).Error; err != nil {
		return err
	}
	if len(summaries) > 0 {
		if err := db.Create(&summaries).Error; err != nil {
			return err
		}
	}
	if len(extras) > 0 {
		if err := db.Create(&extras).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an invoice with all of its lines.
func (r *GormInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)

	var dto InvoiceDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invoice", id.String())
		}
		return nil, err
	}

	var summaries []OrderSummaryDTO
	if err := db.Order("number").Find(&summaries, "invoice_id = ?", id.Bytes()).Error; err != nil {
		return nil, err
	}

	var extras []ExtraChargeDTO
	if err := db.Order("seq").Find(&extras, "invoice_id = ?", id.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, summaries, extras)
}

// Delete removes an invoice and its lines. Order statuses are not touched;
// that asymmetry is deliberate.
func (r *GormInvoiceRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	if err := db.Delete(&ExtraChargeDTO{}, "invoice_id = ?", id.Bytes()).Error; err != nil {
		return err
	}
	if err := db.Delete(&OrderSummaryDTO{}, "invoice_id = ?", id.Bytes()).Error; err != nil {
		return err
	}

	result := db.Delete(&InvoiceDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("invoice", id.String())
	}
	return nil
}

// ExistsForOrder reports whether any invoice references the order. Guard
// for order deletion.
func (r *GormInvoiceRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}

	var exists bool
	err := r.db.WithContext(ctx).
		Raw("SELECT EXISTS(SELECT 1 FROM invoice_order_summaries WHERE order_id = ?)",
			orderID.Bytes()).
		Row().Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}
