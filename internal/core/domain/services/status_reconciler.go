package services

import (
	"errors"

	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/task"
)

// ErrInconsistentDerivedState is returned when an order's status cannot be
// recomputed because the supplied task set is unusable: the order has no
// tasks at all, or the tasks belong to a different order. The order's status
// is left unchanged in that case.
var ErrInconsistentDerivedState = errors.New("inconsistent derived state")

// StatusReconciler is a domain service that recomputes an order's
// production-phase status from the state of its tasks and open work sessions.
//
// The production-phase statuses (Pending, Production, Stopped, plus the
// QualityControl gate) are derived, not commanded: a worker opening a timer
// pushes the order into Production, the last task reaching completion pushes
// it into QualityControl, and an order with outstanding tasks and no open
// session falls back to Stopped.
//
// Precedence of the recomputation:
//  1. every non-cancelled task completed (at least one) -> QualityControl
//  2. any open work session -> Production
//  3. otherwise -> Stopped, except a still Pending order stays Pending
//
// Orders outside the production phase (on hold, under review, delivered,
// invoiced, terminal) are never touched: Reconcile reports the current status
// unchanged so callers can run it unconditionally after any task write.
type StatusReconciler struct{}

// NewStatusReconciler creates a new StatusReconciler instance.
func NewStatusReconciler() StatusReconciler {
	return StatusReconciler{}
}

// Reconcile recomputes and applies the derived status for the given order.
//
// tasks must be the complete task set of the order, tombstoned tasks
// excluded or included (they are skipped either way); openSessionCount is the
// number of currently open work sessions across the order's tasks.
//
// Returns the status the order holds after reconciliation. The order is only
// mutated when it is in the production phase and the computed status differs
// from the current one.
func (r StatusReconciler) Reconcile(
	o *order.Order,
	tasks []*task.Task,
	openSessionCount int,
) (order.Status, error) {
	if err := o.Validate(); err != nil {
		return order.Unknown, err
	}

	if !o.Status().IsProductionPhase() {
		return o.Status(), nil
	}

	live := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return order.Unknown, err
		}
		if !t.OrderID().IsEqual(o.ID()) {
			return order.Unknown, ErrInconsistentDerivedState
		}
		if t.IsDeleted() {
			continue
		}
		live = append(live, t)
	}
	if len(live) == 0 {
		return order.Unknown, ErrInconsistentDerivedState
	}

	target := r.computeTarget(o.Status(), live, openSessionCount)
	if target == o.Status() {
		return target, nil
	}

	if err := o.ApplyDerivedStatus(target); err != nil {
		return order.Unknown, err
	}
	return target, nil
}

func (r StatusReconciler) computeTarget(
	current order.Status,
	tasks []*task.Task,
	openSessionCount int,
) order.Status {
	completed := 0
	active := 0
	for _, t := range tasks {
		switch t.Status() {
		case task.Completed:
			completed++
		case task.Cancelled:
		default:
			active++
		}
	}

	if active == 0 && completed > 0 {
		return order.QualityControl
	}
	if openSessionCount > 0 {
		return order.Production
	}
	if current == order.Pending {
		// Work never started; there is nothing to stop.
		return order.Pending
	}
	return order.Stopped
}
