package sessionrepo

import (
	"context"
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/worksession"
	"workshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormSessionRepository implements ports.SessionRepository using GORM.
type GormSessionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSessionRepository creates a new GORM work session repository.
func NewGormSessionRepository(db *gorm.DB, tracker aggregateTracker) *GormSessionRepository {
	return &GormSessionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new session to the database. A concurrent insert of a second
// open session for the same (task, worker) pair trips the partial unique
// index and surfaces as worksession.ErrSessionAlreadyOpen; gorm's
// TranslateError must be enabled on the connection for the mapping to fire.
func (r *GormSessionRepository) Add(ctx context.Context, aggregate *worksession.Session) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return worksession.ErrSessionAlreadyOpen
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing session to the database.
func (r *GormSessionRepository) Update(ctx context.Context, aggregate *worksession.Session) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&SessionDTO{}).
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

// Get retrieves a session by ID.
func (r *GormSessionRepository) Get(ctx context.Context, id kernel.UUID) (*worksession.Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SessionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("session", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOpenByTaskAndWorker retrieves the open session for the pair. At most one
// can exist; worksession.ErrSessionNotFound is returned when none is open.
func (r *GormSessionRepository) GetOpenByTaskAndWorker(
	ctx context.Context,
	taskID, workerID kernel.UUID,
) (*worksession.Session, error) {
	if err := taskID.Validate(); err != nil {
		return nil, err
	}
	if err := workerID.Validate(); err != nil {
		return nil, err
	}

	var dto SessionDTO
	err := r.db.WithContext(ctx).
		First(&dto, "task_id = ? AND worker_id = ? AND ended_at IS NULL",
			taskID.Bytes(), workerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, worksession.ErrSessionNotFound
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOpenByTask retrieves all open sessions on a task.
func (r *GormSessionRepository) GetOpenByTask(
	ctx context.Context,
	taskID kernel.UUID,
) ([]*worksession.Session, error) {
	if err := taskID.Validate(); err != nil {
		return nil, err
	}

	var dtos []SessionDTO
	err := r.db.WithContext(ctx).
		Order("started_at, id").
		Find(&dtos, "task_id = ? AND ended_at IS NULL", taskID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// CountOpenByOrder counts open sessions across all tasks of an order,
// tombstoned tasks included.
func (r *GormSessionRepository) CountOpenByOrder(ctx context.Context, orderID kernel.UUID) (int, error) {
	if err := orderID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(1)
		FROM work_sessions ws
		JOIN tasks t ON t.id = ws.task_id
		WHERE t.order_id = ? AND ws.ended_at IS NULL
	`, orderID.Bytes()).Row().Scan(&count)
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// GetAllOpen retrieves every open session in the system, oldest first.
func (r *GormSessionRepository) GetAllOpen(ctx context.Context) ([]*worksession.Session, error) {
	var dtos []SessionDTO
	err := r.db.WithContext(ctx).
		Order("started_at, id").
		Find(&dtos, "ended_at IS NULL").Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// SumClosedHoursByOrder sums the persisted hours of closed sessions across
// all tasks of an order. Open sessions never contribute.
func (r *GormSessionRepository) SumClosedHoursByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (decimal.Decimal, error) {
	if err := orderID.Validate(); err != nil {
		return decimal.Zero, err
	}

	var total decimal.Decimal
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(ws.hours_worked), 0)
		FROM work_sessions ws
		JOIN tasks t ON t.id = ws.task_id
		WHERE t.order_id = ? AND ws.ended_at IS NOT NULL
	`, orderID.Bytes()).Row().Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}

	return total, nil
}

func toDomainSlice(dtos []SessionDTO) ([]*worksession.Session, error) {
	sessions := make([]*worksession.Session, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}
