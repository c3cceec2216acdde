package orderrepo

import (
	"context"
	"database/sql"
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// orderNumberLockID keys the Postgres advisory lock that serializes order
// number allocation. The lock is transaction-scoped: it is released at
// commit or rollback, so two concurrent creations can never read the same
// sequence maxima.
const orderNumberLockID int64 = 0x6F72646572 // "order"

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByNumber retrieves an order by its human-facing number.
func (r *GormOrderRepository) GetByNumber(ctx context.Context, number order.Number) (*order.Order, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "number = ?", number.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", number.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// NextNumber allocates the next order number from the stored sequence maxima.
// Must run inside a transaction: the advisory lock it takes is held until
// that transaction ends, which is what serializes concurrent creations.
func (r *GormOrderRepository) NextNumber(ctx context.Context) (order.Number, error) {
	db := r.db.WithContext(ctx)

	if err := db.Exec("SELECT pg_advisory_xact_lock(?)", orderNumberLockID).Error; err != nil {
		return order.Number{}, err
	}

	var maxBase sql.NullInt64
	err := db.Raw(`
		SELECT MAX(CAST(substring(number from 3 for 4) AS integer))
		FROM orders
	`).Row().Scan(&maxBase)
	if err != nil {
		return order.Number{}, err
	}

	var maxRevision sql.NullInt64
	err = db.Raw(`
		SELECT MAX(CAST(split_part(number, '-', 2) AS integer))
		FROM orders
		WHERE substring(number from 3 for 4) = lpad(?::text, 4, '0')
	`, maxBase.Int64+1).Row().Scan(&maxRevision)
	if err != nil {
		return order.Number{}, err
	}

	return order.NextNumber(int(maxBase.Int64), int(maxRevision.Int64))
}

// Delete removes the order row. Tombstoning the order's tasks and checking
// for invoice references is the caller's responsibility.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return nil
}
