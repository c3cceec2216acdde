// Package task provides the task aggregate: a discrete unit of work under a
// service order, assignable to one worker at a time. A task belongs to exactly
// one order for its lifetime. Deletion is modeled as tombstoning so that time
// sessions logged against the task keep their reference for invoice
// recomputation and audit.
package task

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrTaskIsNotConstructed is returned when a Task instance was not created
	// through the NewTask or RestoreTask factory methods.
	ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask or RestoreTask")

	// ErrTaskDeleted is returned when a mutation is attempted on a tombstoned task.
	ErrTaskDeleted = errors.New("task is deleted")
)

// Task is a discrete unit of work under an order.
type Task struct {
	id          kernel.UUID
	orderID     kernel.UUID
	title       string
	description string

	// workerID is the assigned worker's ID (nil if unassigned)
	workerID *kernel.UUID

	status         Status
	priority       Priority
	estimatedHours *decimal.Decimal

	createdAt time.Time
	updatedAt time.Time

	// deletedAt is the tombstone marker; sessions keep referencing the task
	deletedAt *time.Time

	isConstructed bool
}

// NewTask creates a Task in Pending status under the given order.
func NewTask(
	id kernel.UUID,
	orderID kernel.UUID,
	title string,
	description string,
	priority Priority,
	estimatedHours *decimal.Decimal,
	now time.Time,
) (*Task, error) {
	t := &Task{
		status:        Pending,
		description:   description,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setOrderID(orderID),
		t.setTitle(title),
		t.setPriority(priority),
		t.setEstimatedHours(estimatedHours),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTask reconstructs a Task from persistence, including tombstoned ones.
func RestoreTask(
	id kernel.UUID,
	orderID kernel.UUID,
	title string,
	description string,
	workerID *kernel.UUID,
	status Status,
	priority Priority,
	estimatedHours *decimal.Decimal,
	createdAt time.Time,
	updatedAt time.Time,
	deletedAt *time.Time,
) (*Task, error) {
	t := &Task{
		status:        status,
		description:   description,
		workerID:      workerID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		deletedAt:     deletedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setOrderID(orderID),
		t.setTitle(title),
		t.setPriority(priority),
		t.setEstimatedHours(estimatedHours),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if workerID != nil {
		if err := workerID.Validate(); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Validate ensures the Task was constructed through a factory method.
func (t *Task) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTaskIsNotConstructed
	}
	return nil
}

// IsEqual compares two tasks by their unique identifiers.
func (t *Task) IsEqual(other *Task) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the task's unique identifier.
func (t *Task) ID() kernel.UUID {
	return t.id
}

// OrderID returns the owning order. It never changes for the task's lifetime.
func (t *Task) OrderID() kernel.UUID {
	return t.orderID
}

// Title returns the short title of the task.
func (t *Task) Title() string {
	return t.title
}

// Description returns the free-text description.
func (t *Task) Description() string {
	return t.description
}

// Worker returns the assigned worker's ID, nil if unassigned.
func (t *Task) Worker() *kernel.UUID {
	return t.workerID
}

// Status returns the current task status.
func (t *Task) Status() Status {
	return t.status
}

// Priority returns the task priority.
func (t *Task) Priority() Priority {
	return t.priority
}

// EstimatedHours returns the optional estimate as a fixed-point decimal.
func (t *Task) EstimatedHours() *decimal.Decimal {
	return t.estimatedHours
}

// CreatedAt returns the creation instant.
func (t *Task) CreatedAt() time.Time {
	return t.createdAt
}

// UpdatedAt returns the last mutation instant.
func (t *Task) UpdatedAt() time.Time {
	return t.updatedAt
}

// DeletedAt returns the tombstone instant, nil for live tasks.
func (t *Task) DeletedAt() *time.Time {
	return t.deletedAt
}

// IsDeleted reports whether the task was tombstoned.
func (t *Task) IsDeleted() bool {
	return t.deletedAt != nil
}

// AssignWorker assigns the task to a worker.
func (t *Task) AssignWorker(workerID kernel.UUID, now time.Time) error {
	if t.IsDeleted() {
		return ErrTaskDeleted
	}
	if err := workerID.Validate(); err != nil {
		return err
	}

	t.workerID = &workerID
	t.updatedAt = now
	return nil
}

// UnassignWorker clears the worker assignment.
func (t *Task) UnassignWorker(now time.Time) error {
	if t.IsDeleted() {
		return ErrTaskDeleted
	}

	t.workerID = nil
	t.updatedAt = now
	return nil
}

// UpdateDetails replaces title, description, priority and estimate.
func (t *Task) UpdateDetails(
	title, description string,
	priority Priority,
	estimatedHours *decimal.Decimal,
	now time.Time,
) error {
	if t.IsDeleted() {
		return ErrTaskDeleted
	}

	if err := errors.Join(
		t.setTitle(title),
		t.setPriority(priority),
		t.setEstimatedHours(estimatedHours),
	); err != nil {
		return err
	}

	t.description = description
	t.updatedAt = now
	return nil
}

// TransitionTo moves the task to the requested status through the validated
// state machine. Unknown targets and illegal transitions are rejected without
// mutating the task.
func (t *Task) TransitionTo(target Status, now time.Time) error {
	if t.IsDeleted() {
		return ErrTaskDeleted
	}

	var (
		newStatus Status
		err       error
	)

	switch target {
	case InProgress:
		if t.status == Completed {
			newStatus, err = t.status.Reopen()
		} else {
			newStatus, err = t.status.Start()
		}
	case Completed:
		newStatus, err = t.status.Complete()
	case Cancelled:
		newStatus, err = t.status.Cancel()
	default:
		return newTransitionError(t.status, "transition to "+target.String())
	}

	if err != nil {
		return err
	}

	t.status = newStatus
	t.updatedAt = now
	return nil
}

// Start marks the task as being worked on; used when a time session opens on
// a still-pending task.
func (t *Task) Start(now time.Time) error {
	return t.TransitionTo(InProgress, now)
}

// Reopen returns a completed task to InProgress for rework.
func (t *Task) Reopen(now time.Time) error {
	if t.IsDeleted() {
		return ErrTaskDeleted
	}

	newStatus, err := t.status.Reopen()
	if err != nil {
		return err
	}

	t.status = newStatus
	t.updatedAt = now
	return nil
}

// MarkDeleted tombstones the task. Historical time sessions keep their task
// reference; only material-consumption records are cascaded by the caller.
func (t *Task) MarkDeleted(now time.Time) error {
	if t.IsDeleted() {
		return ErrTaskDeleted
	}

	t.deletedAt = &now
	t.updatedAt = now
	return nil
}

func (t *Task) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Task) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	t.orderID = orderID
	return nil
}

func (t *Task) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	t.title = title
	return nil
}

func (t *Task) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	t.priority = priority
	return nil
}

func (t *Task) setEstimatedHours(estimatedHours *decimal.Decimal) error {
	if estimatedHours != nil && estimatedHours.IsNegative() {
		return errs.NewValueIsInvalidError("estimatedHours")
	}
	t.estimatedHours = estimatedHours
	return nil
}
