package inventoryrepo

import (
	"context"
	"database/sql"
	"errors"

	"workshop/internal/core/domain/model/inventory"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInventoryRepository implements ports.InventoryRepository using GORM.
type GormInventoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB, tracker aggregateTracker) *GormInventoryRepository {
	return &GormInventoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new inventory item to the database.
func (r *GormInventoryRepository) Add(ctx context.Context, aggregate *inventory.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing inventory item to the database.
func (r *GormInventoryRepository) Update(ctx context.Context, aggregate *inventory.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ItemDTO{}).
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

// Get retrieves an inventory item by ID.
func (r *GormInventoryRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inventory item", id.String())
		}
		return nil, err
	}

	return itemToDomain(dto)
}

// Consume decrements the item's stock as a single conditional update, so a
// shortfall can never be produced by interleaved readers. When the update
// matches no row the current availability is read back and returned inside
// inventory.InsufficientStockError; the stock stays unchanged.
func (r *GormInventoryRepository) Consume(ctx context.Context, itemID kernel.UUID, quantity int) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE inventory_items
		SET quantity = quantity - ?
		WHERE id = ? AND quantity >= ?
	`, quantity, itemID.Bytes(), quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var available int
	err := r.db.WithContext(ctx).
		Raw("SELECT quantity FROM inventory_items WHERE id = ?", itemID.Bytes()).
		Row().Scan(&available)
	if errors.Is(err, sql.ErrNoRows) {
		return errs.NewObjectNotFoundError("inventory item", itemID.String())
	}
	if err != nil {
		return err
	}

	return &inventory.InsufficientStockError{
		ItemID:    itemID,
		Requested: quantity,
		Available: available,
	}
}

// AddConsumption persists a ledger record for a stock decrement.
func (r *GormInventoryRepository) AddConsumption(
	ctx context.Context,
	record *inventory.ConsumptionRecord,
) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := consumptionFromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetConsumptionsByTask retrieves the ledger records of a task, oldest first.
func (r *GormInventoryRepository) GetConsumptionsByTask(
	ctx context.Context,
	taskID kernel.UUID,
) ([]*inventory.ConsumptionRecord, error) {
	if err := taskID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ConsumptionDTO
	err := r.db.WithContext(ctx).
		Order("recorded_at, id").
		Find(&dtos, "task_id = ?", taskID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	records := make([]*inventory.ConsumptionRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, err := consumptionToDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// DeleteConsumptionsByTask removes the ledger records of a task. Stock is
// not restored; consumed material stays consumed.
func (r *GormInventoryRepository) DeleteConsumptionsByTask(ctx context.Context, taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&ConsumptionDTO{}, "task_id = ?", taskID.Bytes()).Error
}
