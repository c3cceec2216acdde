// Package taskrepo provides data transfer objects and mapping functions for
// task persistence. Tasks are never physically removed: deletion is a
// tombstone timestamp carried by the row, and reads return tombstoned rows so
// callers can decide what to skip.
package taskrepo

import (
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/task"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaskDTO represents the database structure for persisting task aggregates.
type TaskDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	Title          string
	Description    string
	WorkerID       *uuid.UUID `gorm:"type:uuid;index"`
	Status         int
	Priority       int
	EstimatedHours decimal.NullDecimal `gorm:"type:numeric"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// TableName specifies the database table name for task entities.
func (TaskDTO) TableName() string {
	return "tasks"
}

func fromDomain(aggregate *task.Task) TaskDTO {
	var workerID *uuid.UUID
	if id := aggregate.Worker(); id != nil {
		raw := id.Bytes()
		workerID = &raw
	}

	var estimated decimal.NullDecimal
	if hours := aggregate.EstimatedHours(); hours != nil {
		estimated = decimal.NewNullDecimal(*hours)
	}

	return TaskDTO{
		ID:             aggregate.ID().Bytes(),
		OrderID:        aggregate.OrderID().Bytes(),
		Title:          aggregate.Title(),
		Description:    aggregate.Description(),
		WorkerID:       workerID,
		Status:         int(aggregate.Status()),
		Priority:       int(aggregate.Priority()),
		EstimatedHours: estimated,
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
		DeletedAt:      aggregate.DeletedAt(),
	}
}

func toDomain(dto TaskDTO) (*task.Task, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
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

	var estimated *decimal.Decimal
	if dto.EstimatedHours.Valid {
		estimated = &dto.EstimatedHours.Decimal
	}

	return task.RestoreTask(
		id,
		orderID,
		dto.Title,
		dto.Description,
		workerID,
		task.Status(dto.Status),
		task.Priority(dto.Priority),
		estimated,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.DeletedAt,
	)
}
