// Package sessionrepo provides data transfer objects and mapping functions
// for work session persistence. The at-most-one-open-session invariant per
// (task, worker) pair lives here as a partial unique index over open rows;
// Add translates the resulting unique violation into the domain error.
package sessionrepo

import (
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/worksession"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SessionDTO represents the database structure for persisting work sessions.
// The partial unique index on (task_id, worker_id) WHERE ended_at IS NULL is
// created by the migration step; GORM tags cannot express it.
type SessionDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TaskID      uuid.UUID `gorm:"type:uuid;index"`
	WorkerID    uuid.UUID `gorm:"type:uuid;index"`
	StartedAt   time.Time
	EndedAt     *time.Time
	Note        string
	HoursWorked decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for work session entities.
func (SessionDTO) TableName() string {
	return "work_sessions"
}

func fromDomain(aggregate *worksession.Session) SessionDTO {
	return SessionDTO{
		ID:          aggregate.ID().Bytes(),
		TaskID:      aggregate.TaskID().Bytes(),
		WorkerID:    aggregate.WorkerID().Bytes(),
		StartedAt:   aggregate.StartedAt(),
		EndedAt:     aggregate.EndedAt(),
		Note:        aggregate.Note(),
		HoursWorked: aggregate.HoursWorked(),
	}
}

func toDomain(dto SessionDTO) (*worksession.Session, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	taskID, err := kernel.UUIDFromBytes(dto.TaskID[:])
	if err != nil {
		return nil, err
	}

	workerID, err := kernel.UUIDFromBytes(dto.WorkerID[:])
	if err != nil {
		return nil, err
	}

	return worksession.RestoreSession(
		id,
		taskID,
		workerID,
		dto.StartedAt,
		dto.EndedAt,
		dto.Note,
		dto.HoursWorked,
	)
}
