package http

import (
	"time"

	"workshop/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the payload for opening a new order.
type CreateOrderRequest struct {
	ClientID    string          `json:"client_id"`
	Description string          `json:"description"`
	SaleValue   decimal.Decimal `json:"sale_value"`
	Urgency     string          `json:"urgency"`
	Deadline    *time.Time      `json:"deadline,omitempty"`
}

// AssignWorkerRequest carries the worker to assign. A null worker_id
// unassigns.
type AssignWorkerRequest struct {
	WorkerID *string `json:"worker_id"`
}

// ReviewQualityRequest records the quality control verdict.
type ReviewQualityRequest struct {
	Approved bool `json:"approved"`
}

// ScheduleInstallationRequest carries the agreed installation date.
type ScheduleInstallationRequest struct {
	Date time.Time `json:"date"`
}

// CreateTaskRequest is the payload for adding a task under an order.
type CreateTaskRequest struct {
	OrderID        string           `json:"order_id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Priority       string           `json:"priority"`
	EstimatedHours *decimal.Decimal `json:"estimated_hours,omitempty"`
}

// UpdateTaskRequest is the payload for editing a task's descriptive fields.
type UpdateTaskRequest struct {
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Priority       string           `json:"priority"`
	EstimatedHours *decimal.Decimal `json:"estimated_hours,omitempty"`
}

// UpdateTaskStatusRequest moves a task to the given status.
type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

// StartSessionRequest starts a work timer on a task for a worker.
type StartSessionRequest struct {
	WorkerID string `json:"worker_id"`
}

// StopSessionRequest stops the open timer for a worker on a task.
type StopSessionRequest struct {
	WorkerID string `json:"worker_id"`
	Note     string `json:"note,omitempty"`
}

// AddInventoryItemRequest registers a stock item.
type AddInventoryItemRequest struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// RestockInventoryItemRequest adds stock to an existing item.
type RestockInventoryItemRequest struct {
	Quantity int `json:"quantity"`
}

// ConsumeMaterialRequest records material usage against a task.
type ConsumeMaterialRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// ExtraChargeRequest is a free-form invoice line such as transport.
type ExtraChargeRequest struct {
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
}

// GenerateInvoiceRequest aggregates orders into an invoice for a client.
type GenerateInvoiceRequest struct {
	ClientID     string               `json:"client_id"`
	OrderIDs     []string             `json:"order_ids"`
	ExtraCharges []ExtraChargeRequest `json:"extra_charges,omitempty"`
	PeriodStart  time.Time            `json:"period_start"`
	PeriodEnd    time.Time            `json:"period_end"`
}

func parseOptionalWorker(raw *string) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil //absent value, not an error
	}
	workerID, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &workerID, nil
}
