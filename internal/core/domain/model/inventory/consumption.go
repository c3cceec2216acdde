package inventory

import (
	"errors"
	"fmt"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
)

// ErrConsumptionIsNotConstructed is returned when a ConsumptionRecord was not
// created through its factory method.
var ErrConsumptionIsNotConstructed = errors.New(
	"ConsumptionRecord must be created via NewConsumptionRecord or RestoreConsumptionRecord")

// ConsumptionRecord is the audit entry pairing a task with the inventory
// drawn down for it. Records are immutable once created.
type ConsumptionRecord struct {
	id         kernel.UUID
	taskID     kernel.UUID
	itemID     kernel.UUID
	quantity   int
	recordedAt time.Time

	isConstructed bool
}

// NewConsumptionRecord creates the audit record for a stock decrement.
func NewConsumptionRecord(
	id, taskID, itemID kernel.UUID,
	quantity int,
	recordedAt time.Time,
) (*ConsumptionRecord, error) {
	r := &ConsumptionRecord{
		recordedAt:    recordedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setTaskID(taskID),
		r.setItemID(itemID),
		r.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	if recordedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("recordedAt")
	}

	return r, nil
}

// RestoreConsumptionRecord reconstructs a record from persistence.
func RestoreConsumptionRecord(
	id, taskID, itemID kernel.UUID,
	quantity int,
	recordedAt time.Time,
) (*ConsumptionRecord, error) {
	return NewConsumptionRecord(id, taskID, itemID, quantity, recordedAt)
}

// Validate ensures the record was constructed through a factory method.
func (r *ConsumptionRecord) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrConsumptionIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (r *ConsumptionRecord) ID() kernel.UUID {
	return r.id
}

// TaskID returns the consuming task.
func (r *ConsumptionRecord) TaskID() kernel.UUID {
	return r.taskID
}

// ItemID returns the consumed inventory item.
func (r *ConsumptionRecord) ItemID() kernel.UUID {
	return r.itemID
}

// Quantity returns the consumed quantity, always positive.
func (r *ConsumptionRecord) Quantity() int {
	return r.quantity
}

// RecordedAt returns the instant of consumption.
func (r *ConsumptionRecord) RecordedAt() time.Time {
	return r.recordedAt
}

func (r *ConsumptionRecord) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *ConsumptionRecord) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}
	r.taskID = taskID
	return nil
}

func (r *ConsumptionRecord) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	r.itemID = itemID
	return nil
}

func (r *ConsumptionRecord) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	r.quantity = quantity
	return nil
}
