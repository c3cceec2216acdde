package order

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderBillingLocked is returned when a mutation is attempted on an order
	// that is referenced by a finalized invoice or otherwise terminal.
	ErrOrderBillingLocked = errors.New("order is locked for billing and cannot be modified")
)

// Order represents a unit of billable work for a client. It is the aggregate
// root that owns the canonical workflow status and validates every transition.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, sequence number and client reference
//   - Sale value is a non-negative fixed-point decimal in a single currency
//   - Status transitions follow the workflow defined on Status; an invalid
//     transition mutates no field
//   - May exist without an assigned worker; assignment is manual and
//     independent of workflow position
//   - Once invoiced the order is immutable for billing
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	id          kernel.UUID
	number      Number
	clientID    kernel.UUID
	description string
	saleValue   decimal.Decimal
	urgency     Urgency

	// workerID is the assigned worker's ID (nil if unassigned)
	workerID *kernel.UUID

	status      Status
	openedAt    time.Time
	deadline    *time.Time
	installedAt *time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates an Order in Pending status with validation. This is the
// only way to create a fresh order; reconstruction from persistence goes
// through RestoreOrder.
func NewOrder(
	id kernel.UUID,
	number Number,
	clientID kernel.UUID,
	description string,
	saleValue decimal.Decimal,
	urgency Urgency,
	openedAt time.Time,
	deadline *time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		openedAt:      openedAt,
		deadline:      deadline,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setClientID(clientID),
		o.setDescription(description),
		o.setSaleValue(saleValue),
		o.setUrgency(urgency),
	); err != nil {
		return nil, err
	}

	if openedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("openedAt")
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, validating every field
// including the stored status. Used only by repository adapters.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	clientID kernel.UUID,
	description string,
	saleValue decimal.Decimal,
	urgency Urgency,
	workerID *kernel.UUID,
	status Status,
	openedAt time.Time,
	deadline *time.Time,
	installedAt *time.Time,
) (*Order, error) {
	o := &Order{
		status:        status,
		openedAt:      openedAt,
		deadline:      deadline,
		installedAt:   installedAt,
		workerID:      workerID,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setClientID(clientID),
		o.setDescription(description),
		o.setSaleValue(saleValue),
		o.setUrgency(urgency),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if workerID != nil {
		if err := workerID.Validate(); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable sequence identifier.
func (o *Order) Number() Number {
	return o.number
}

// ClientID returns the opaque client reference.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// Description returns the free-text description of the work.
func (o *Order) Description() string {
	return o.description
}

// SaleValue returns the agreed sale value as a fixed-point decimal.
func (o *Order) SaleValue() decimal.Decimal {
	return o.saleValue
}

// Urgency returns the order's urgency classification.
func (o *Order) Urgency() Urgency {
	return o.urgency
}

// Worker returns the assigned worker's ID, nil if unassigned.
func (o *Order) Worker() *kernel.UUID {
	return o.workerID
}

// Status returns the current workflow status.
func (o *Order) Status() Status {
	return o.status
}

// OpenedAt returns the opening date of the order.
func (o *Order) OpenedAt() time.Time {
	return o.openedAt
}

// Deadline returns the agreed deadline, nil if none.
func (o *Order) Deadline() *time.Time {
	return o.deadline
}

// InstalledAt returns the scheduled installation date, nil when no
// installation was scheduled.
func (o *Order) InstalledAt() *time.Time {
	return o.installedAt
}

// AssignWorker manually assigns the order to a worker. Assignment is
// independent of the workflow position but rejected once the order is locked
// for billing.
func (o *Order) AssignWorker(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	if o.status.IsBillingLocked() {
		return ErrOrderBillingLocked
	}

	o.workerID = &workerID
	return nil
}

// UnassignWorker clears the manual worker assignment.
func (o *Order) UnassignWorker() error {
	if o.status.IsBillingLocked() {
		return ErrOrderBillingLocked
	}

	o.workerID = nil
	return nil
}

// UpdateDescription replaces the free-text description while the order is
// still mutable.
func (o *Order) UpdateDescription(description string) error {
	if o.status.IsBillingLocked() {
		return ErrOrderBillingLocked
	}
	return o.setDescription(description)
}

// StartWork applies the auto-transition triggered by the first (or resumed)
// work session on any of the order's tasks.
func (o *Order) StartWork() error {
	return o.transition(o.status.StartWork())
}

// CompleteTasks applies the auto-transition into QualityControl triggered by
// the last task completion.
func (o *Order) CompleteTasks() error {
	return o.transition(o.status.CompleteTasks())
}

// ReviewQuality resolves the quality gate. Approval releases the order for
// pickup; rejection returns it to Production for rework.
func (o *Order) ReviewQuality(approved bool) error {
	return o.transition(o.status.ReviewQuality(approved))
}

// ConfirmPickup records the client collecting the finished work.
func (o *Order) ConfirmPickup() error {
	return o.transition(o.status.ConfirmPickup())
}

// ScheduleInstallation books an installation instead of a pickup and records
// the agreed date.
func (o *Order) ScheduleInstallation(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("installation date")
	}
	if err := o.transition(o.status.ScheduleInstallation()); err != nil {
		return err
	}
	o.installedAt = &date
	return nil
}

// ConfirmInstallation records the completed installation.
func (o *Order) ConfirmInstallation() error {
	return o.transition(o.status.ConfirmInstallation())
}

// MarkInvoiced locks the order for billing. Called by the invoice aggregator
// in the same transaction that persists the invoice.
func (o *Order) MarkInvoiced() error {
	return o.transition(o.status.MarkInvoiced())
}

// Archive applies the final archival marker after invoicing.
func (o *Order) Archive() error {
	return o.transition(o.status.Archive())
}

// Hold pauses the workflow.
func (o *Order) Hold() error {
	return o.transition(o.status.Hold())
}

// Resume returns a held or stopped order to Production.
func (o *Order) Resume() error {
	return o.transition(o.status.Resume())
}

// Stop marks the order as having no active work with tasks outstanding.
func (o *Order) Stop() error {
	return o.transition(o.status.Stop())
}

// Cancel abandons the order.
func (o *Order) Cancel() error {
	return o.transition(o.status.Cancel())
}

// ApplyDerivedStatus overwrites the stored status with a freshly derived one
// (see services.StatusReconciler). Only the three derivable statuses are
// accepted, and never on a billing-locked order.
func (o *Order) ApplyDerivedStatus(s Status) error {
	if s != Production && s != QualityControl && s != Stopped {
		return NewInvalidTransitionError(o.status, "apply derived status "+s.String())
	}
	if o.status.IsBillingLocked() {
		return ErrOrderBillingLocked
	}

	o.status = s
	return nil
}

// transition installs the new status when err is nil; the order is left
// untouched otherwise.
func (o *Order) transition(newStatus Status, err error) error {
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	o.description = description
	return nil
}

func (o *Order) setSaleValue(saleValue decimal.Decimal) error {
	if saleValue.IsNegative() {
		return errs.NewValueIsInvalidError("saleValue")
	}
	o.saleValue = saleValue
	return nil
}

func (o *Order) setUrgency(urgency Urgency) error {
	if err := urgency.Validate(); err != nil {
		return err
	}
	o.urgency = urgency
	return nil
}
