package queries

import (
	"context"
	"database/sql"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/task"
	"workshop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderSummaryQueryHandler resolves one order with its live tasks and the
// hours booked against them. Tombstoned tasks are excluded; closed and live
// hours are reported separately because only closed hours are billable.
type GetOrderSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderSummaryQueryHandler creates a handler for order summary queries.
func NewGetOrderSummaryQueryHandler(db *gorm.DB) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when no order
// exists under the requested identifier.
func (h GetOrderSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummaryQuery,
) (*GetOrderSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	resp, err := h.loadOrder(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.loadTasks(ctx, resp); err != nil {
		return nil, err
	}
	if err = h.loadLiveHours(ctx, resp, time.Now().UTC()); err != nil {
		return nil, err
	}

	for _, t := range resp.Tasks {
		resp.TotalClosedHours = resp.TotalClosedHours.Add(t.ClosedHours)
		resp.TotalLiveHours = resp.TotalLiveHours.Add(t.LiveHours)
	}
	return resp, nil
}

func (h GetOrderSummaryQueryHandler) loadOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (*GetOrderSummaryQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			client_id,
			description,
			sale_value,
			urgency,
			worker_id,
			status,
			opened_at,
			deadline,
			installed_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("order", orderID)
	}

	var (
		resp        GetOrderSummaryQueryResponse
		id          uuid.UUID
		clientID    uuid.UUID
		urgency     int
		workerID    uuid.NullUUID
		status      int
		deadline    sql.NullTime
		installedAt sql.NullTime
	)
	err = rows.Scan(
		&id,
		&resp.Number,
		&clientID,
		&resp.Description,
		&resp.SaleValue,
		&urgency,
		&workerID,
		&status,
		&resp.OpenedAt,
		&deadline,
		&installedAt,
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
	if resp.WorkerID, err = optionalUUID(workerID); err != nil {
		return nil, err
	}

	resp.Urgency = order.Urgency(urgency)
	resp.Status = order.Status(status)
	if err = resp.Status.Validate(); err != nil {
		return nil, err
	}
	if deadline.Valid {
		resp.Deadline = &deadline.Time
	}
	if installedAt.Valid {
		resp.InstalledAt = &installedAt.Time
	}
	return &resp, nil
}

func (h GetOrderSummaryQueryHandler) loadTasks(
	ctx context.Context,
	resp *GetOrderSummaryQueryResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.title,
			t.status,
			t.worker_id,
			COALESCE(SUM(ws.hours_worked) FILTER (WHERE ws.ended_at IS NOT NULL), 0),
			COUNT(ws.id) FILTER (WHERE ws.ended_at IS NULL)
		FROM tasks t
		LEFT JOIN work_sessions ws ON ws.task_id = t.id
		WHERE t.order_id = ? AND t.deleted_at IS NULL
		GROUP BY t.id
		ORDER BY t.created_at, t.id
	`, resp.ID.Bytes()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	resp.Tasks = make([]TaskSummaryResponse, 0)
	for rows.Next() {
		var (
			taskResp TaskSummaryResponse
			id       uuid.UUID
			status   int
			workerID uuid.NullUUID
		)
		err = rows.Scan(
			&id,
			&taskResp.Title,
			&status,
			&workerID,
			&taskResp.ClosedHours,
			&taskResp.OpenSessions,
		)
		if err != nil {
			return err
		}

		if taskResp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return err
		}
		if taskResp.WorkerID, err = optionalUUID(workerID); err != nil {
			return err
		}
		taskResp.Status = task.Status(status)
		if err = taskResp.Status.Validate(); err != nil {
			return err
		}
		taskResp.LiveHours = decimal.Zero
		resp.Tasks = append(resp.Tasks, taskResp)
	}
	return rows.Err()
}

func (h GetOrderSummaryQueryHandler) loadLiveHours(
	ctx context.Context,
	resp *GetOrderSummaryQueryResponse,
	now time.Time,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ws.task_id, ws.started_at
		FROM work_sessions ws
		JOIN tasks t ON t.id = ws.task_id
		WHERE t.order_id = ? AND ws.ended_at IS NULL
	`, resp.ID.Bytes()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	liveByTask := make(map[kernel.UUID]decimal.Decimal)
	for rows.Next() {
		var (
			taskID    uuid.UUID
			startedAt time.Time
		)
		if err = rows.Scan(&taskID, &startedAt); err != nil {
			return err
		}

		id, idErr := kernel.UUIDFromBytes(taskID[:])
		if idErr != nil {
			return idErr
		}
		liveByTask[id] = liveByTask[id].Add(elapsedHours(startedAt, now))
	}
	if err = rows.Err(); err != nil {
		return err
	}

	for i := range resp.Tasks {
		if live, ok := liveByTask[resp.Tasks[i].ID]; ok {
			resp.Tasks[i].LiveHours = live
		}
	}
	return nil
}

// elapsedHours converts a running timer's age into fixed-point hours, the
// same rounding a session applies when it closes.
func elapsedHours(startedAt, now time.Time) decimal.Decimal {
	if now.Before(startedAt) {
		return decimal.Zero
	}
	seconds := decimal.NewFromInt(int64(now.Sub(startedAt) / time.Second))
	return seconds.Div(decimal.NewFromInt(3600)).Round(2)
}

func optionalUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil //nolint:nilnil //absent value, not an error
	}
	converted, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
