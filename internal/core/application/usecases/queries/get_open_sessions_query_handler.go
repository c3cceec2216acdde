package queries

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenSessionsQueryHandler retrieves all running work sessions with their
// elapsed-so-far hours. Sessions on tombstoned tasks are included: a timer
// left running is exactly what the watchdog needs to see.
type GetOpenSessionsQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenSessionsQueryHandler creates a handler for open session queries.
func NewGetOpenSessionsQueryHandler(db *gorm.DB) GetOpenSessionsQueryHandler {
	return GetOpenSessionsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted oldest first so the longest
// running timer leads the list.
func (h GetOpenSessionsQueryHandler) Handle(
	ctx context.Context,
	query GetOpenSessionsQuery,
) ([]GetOpenSessionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ws.id,
			ws.task_id,
			t.title,
			t.order_id,
			ws.worker_id,
			ws.started_at
		FROM work_sessions ws
		JOIN tasks t ON t.id = ws.task_id
		WHERE ws.ended_at IS NULL
		ORDER BY ws.started_at, ws.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	now := time.Now().UTC()
	sessions := make([]GetOpenSessionsQueryResponse, 0)

	for rows.Next() {
		var (
			sessionResp GetOpenSessionsQueryResponse
			id          uuid.UUID
			taskID      uuid.UUID
			orderID     uuid.UUID
			workerID    uuid.UUID
		)
		err = rows.Scan(
			&id,
			&taskID,
			&sessionResp.TaskTitle,
			&orderID,
			&workerID,
			&sessionResp.StartedAt,
		)
		if err != nil {
			return nil, err
		}

		if sessionResp.SessionID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if sessionResp.TaskID, err = kernel.UUIDFromBytes(taskID[:]); err != nil {
			return nil, err
		}
		if sessionResp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if sessionResp.WorkerID, err = kernel.UUIDFromBytes(workerID[:]); err != nil {
			return nil, err
		}

		sessionResp.ElapsedHours = elapsedHours(sessionResp.StartedAt, now)
		sessions = append(sessions, sessionResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}
