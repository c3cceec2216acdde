// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database rows
// and the serialized allocation of order numbers.
package orderrepo

import (
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The human-facing number is stored in its canonical "OS0001-1" string form
// under a unique index; statuses and urgencies are stored as their integer
// values.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number      string    `gorm:"uniqueIndex"`
	ClientID    uuid.UUID `gorm:"type:uuid;index"`
	Description string
	SaleValue   decimal.Decimal `gorm:"type:numeric"`
	Urgency     int
	WorkerID    *uuid.UUID `gorm:"type:uuid;index"`
	Status      int
	OpenedAt    time.Time
	Deadline    *time.Time
	InstalledAt *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var workerID *uuid.UUID
	if id := aggregate.Worker(); id != nil {
		raw := id.Bytes()
		workerID = &raw
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		Number:      aggregate.Number().String(),
		ClientID:    aggregate.ClientID().Bytes(),
		Description: aggregate.Description(),
		SaleValue:   aggregate.SaleValue(),
		Urgency:     int(aggregate.Urgency()),
		WorkerID:    workerID,
		Status:      int(aggregate.Status()),
		OpenedAt:    aggregate.OpenedAt(),
		Deadline:    aggregate.Deadline(),
		InstalledAt: aggregate.InstalledAt(),
	}
}

// toDomain converts a database row back into an order aggregate via
// RestoreOrder, which re-validates the stored status and urgency values.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	number, err := order.ParseNumber(dto.Number)
	if err != nil {
		return nil, err
	}

	var workerID *kernel.UUID
	if dto.WorkerID != nil {
		wID, workerErr := kernel.UUIDFromBytes((*dto.WorkerID)[:])
		if workerErr != nil {
			return nil, workerErr
		}

		workerID = &wID
	}

	return order.RestoreOrder(
		id,
		number,
		clientID,
		dto.Description,
		dto.SaleValue,
		order.Urgency(dto.Urgency),
		workerID,
		order.Status(dto.Status),
		dto.OpenedAt,
		dto.Deadline,
		dto.InstalledAt,
	)
}
