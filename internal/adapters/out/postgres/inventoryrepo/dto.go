// Package inventoryrepo provides data transfer objects and mapping functions
// for inventory persistence: the stock items themselves and the consumption
// ledger recording every decrement against a task.
package inventoryrepo

import (
	"time"

	"workshop/internal/core/domain/model/inventory"
	"workshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemDTO represents the database structure for persisting inventory items.
type ItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for inventory items.
func (ItemDTO) TableName() string {
	return "inventory_items"
}

// ConsumptionDTO represents one ledger row: a stock decrement booked
// against a task.
type ConsumptionDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	TaskID     uuid.UUID `gorm:"type:uuid;index"`
	ItemID     uuid.UUID `gorm:"type:uuid;index"`
	Quantity   int
	RecordedAt time.Time
}

// TableName specifies the database table name for consumption records.
func (ConsumptionDTO) TableName() string {
	return "consumption_records"
}

func itemFromDomain(aggregate *inventory.Item) ItemDTO {
	return ItemDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Quantity:  aggregate.Quantity(),
		UnitPrice: aggregate.UnitPrice(),
	}
}

func itemToDomain(dto ItemDTO) (*inventory.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return inventory.RestoreItem(id, dto.Name, dto.Quantity, dto.UnitPrice)
}

func consumptionFromDomain(record *inventory.ConsumptionRecord) ConsumptionDTO {
	return ConsumptionDTO{
		ID:         record.ID().Bytes(),
		TaskID:     record.TaskID().Bytes(),
		ItemID:     record.ItemID().Bytes(),
		Quantity:   record.Quantity(),
		RecordedAt: record.RecordedAt(),
	}
}

func consumptionToDomain(dto ConsumptionDTO) (*inventory.ConsumptionRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	taskID, err := kernel.UUIDFromBytes(dto.TaskID[:])
	if err != nil {
		return nil, err
	}

	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}

	return inventory.RestoreConsumptionRecord(id, taskID, itemID, dto.Quantity, dto.RecordedAt)
}
