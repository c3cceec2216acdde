package http

import (
	"time"

	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrorResponse is the error payload returned by every route.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse carries the identifier of a newly created resource.
type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

// TaskSummary is one task row inside an order summary.
type TaskSummary struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	Status       string          `json:"status"`
	WorkerID     *uuid.UUID      `json:"worker_id,omitempty"`
	ClosedHours  decimal.Decimal `json:"closed_hours"`
	OpenSessions int             `json:"open_sessions"`
	LiveHours    decimal.Decimal `json:"live_hours"`
}

// OrderSummaryResponse is the fully-resolved order view.
type OrderSummaryResponse struct {
	ID          uuid.UUID       `json:"id"`
	Number      string          `json:"number"`
	ClientID    uuid.UUID       `json:"client_id"`
	Description string          `json:"description"`
	SaleValue   decimal.Decimal `json:"sale_value"`
	Urgency     string          `json:"urgency"`
	Status      string          `json:"status"`
	WorkerID    *uuid.UUID      `json:"worker_id,omitempty"`
	OpenedAt    time.Time       `json:"opened_at"`
	Deadline    *time.Time      `json:"deadline,omitempty"`
	InstalledAt *time.Time      `json:"installed_at,omitempty"`

	Tasks            []TaskSummary   `json:"tasks"`
	TotalClosedHours decimal.Decimal `json:"total_closed_hours"`
	TotalLiveHours   decimal.Decimal `json:"total_live_hours"`
}

// OpenSessionResponse is one running work timer.
type OpenSessionResponse struct {
	SessionID    uuid.UUID       `json:"session_id"`
	TaskID       uuid.UUID       `json:"task_id"`
	TaskTitle    string          `json:"task_title"`
	OrderID      uuid.UUID       `json:"order_id"`
	WorkerID     uuid.UUID       `json:"worker_id"`
	StartedAt    time.Time       `json:"started_at"`
	ElapsedHours decimal.Decimal `json:"elapsed_hours"`
}

// InvoiceOrderLine is one billed order inside an invoice.
type InvoiceOrderLine struct {
	OrderID    uuid.UUID       `json:"order_id"`
	Number     string          `json:"number"`
	SaleValue  decimal.Decimal `json:"sale_value"`
	TotalHours decimal.Decimal `json:"total_hours"`
}

// InvoiceExtraChargeLine is one free-form invoice line.
type InvoiceExtraChargeLine struct {
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
}

// InvoiceDetailResponse is an invoice with all its lines and totals.
type InvoiceDetailResponse struct {
	ID           uuid.UUID                `json:"id"`
	ClientID     uuid.UUID                `json:"client_id"`
	PeriodStart  time.Time                `json:"period_start"`
	PeriodEnd    time.Time                `json:"period_end"`
	TotalValue   decimal.Decimal          `json:"total_value"`
	TotalTime    decimal.Decimal          `json:"total_time"`
	CreatedAt    time.Time                `json:"created_at"`
	Orders       []InvoiceOrderLine       `json:"orders"`
	ExtraCharges []InvoiceExtraChargeLine `json:"extra_charges"`
}

func toOrderSummaryResponse(result *queries.GetOrderSummaryQueryResponse) OrderSummaryResponse {
	tasks := make([]TaskSummary, len(result.Tasks))
	for i, t := range result.Tasks {
		tasks[i] = TaskSummary{
			ID:           t.ID.Bytes(),
			Title:        t.Title,
			Status:       t.Status.String(),
			WorkerID:     optionalWorkerID(t.WorkerID),
			ClosedHours:  t.ClosedHours,
			OpenSessions: t.OpenSessions,
			LiveHours:    t.LiveHours,
		}
	}

	return OrderSummaryResponse{
		ID:               result.ID.Bytes(),
		Number:           result.Number,
		ClientID:         result.ClientID.Bytes(),
		Description:      result.Description,
		SaleValue:        result.SaleValue,
		Urgency:          result.Urgency.String(),
		Status:           result.Status.String(),
		WorkerID:         optionalWorkerID(result.WorkerID),
		OpenedAt:         result.OpenedAt,
		Deadline:         result.Deadline,
		InstalledAt:      result.InstalledAt,
		Tasks:            tasks,
		TotalClosedHours: result.TotalClosedHours,
		TotalLiveHours:   result.TotalLiveHours,
	}
}

func toOpenSessionResponses(results []queries.GetOpenSessionsQueryResponse) []OpenSessionResponse {
	response := make([]OpenSessionResponse, len(results))
	for i, s := range results {
		response[i] = OpenSessionResponse{
			SessionID:    s.SessionID.Bytes(),
			TaskID:       s.TaskID.Bytes(),
			TaskTitle:    s.TaskTitle,
			OrderID:      s.OrderID.Bytes(),
			WorkerID:     s.WorkerID.Bytes(),
			StartedAt:    s.StartedAt,
			ElapsedHours: s.ElapsedHours,
		}
	}
	return response
}

func toInvoiceDetailResponse(result *queries.GetInvoiceDetailQueryResponse) InvoiceDetailResponse {
	orders := make([]InvoiceOrderLine, len(result.Orders))
	for i, line := range result.Orders {
		orders[i] = InvoiceOrderLine{
			OrderID:    line.OrderID.Bytes(),
			Number:     line.Number,
			SaleValue:  line.SaleValue,
			TotalHours: line.TotalHours,
		}
	}

	extras := make([]InvoiceExtraChargeLine, len(result.ExtraCharges))
	for i, line := range result.ExtraCharges {
		extras[i] = InvoiceExtraChargeLine{
			Description: line.Description,
			Value:       line.Value,
		}
	}

	return InvoiceDetailResponse{
		ID:           result.ID.Bytes(),
		ClientID:     result.ClientID.Bytes(),
		PeriodStart:  result.PeriodStart,
		PeriodEnd:    result.PeriodEnd,
		TotalValue:   result.TotalValue,
		TotalTime:    result.TotalTime,
		CreatedAt:    result.CreatedAt,
		Orders:       orders,
		ExtraCharges: extras,
	}
}

func optionalWorkerID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	googleUUID := id.Bytes()
	return &googleUUID
}
