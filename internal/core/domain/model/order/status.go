package order

import (
	"errors"
	"fmt"
)

// Status represents the lifecycle state of a service order.
// It implements a state machine with defined transitions to ensure orders
// follow the production workflow.
//
// State transitions:
//
//	Pending ──> Production ──> QualityControl ──┬──> ReadyForPickup ──┬──> ToInvoice ──> Invoiced ──> Completed
//	                ^                           │          │          │        ^
//	                └────────(quality reject)───┘          │          │        │
//	                                                       v          v        │
//	                                          AwaitingInstallation ───┴────────┘
//	                                            (installation confirmed)
//
// Production, QualityControl and Stopped are reached through derived-state
// recomputation (first work session, last task completed, no active work);
// OnHold, Stopped and Cancelled are side states reachable from most active
// states. Completed and Cancelled are terminal; Invoiced is terminal for
// workflow purposes, with Archive as the only follow-up.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly created order, before any
	// work session has been opened on its tasks.
	Pending

	// Production indicates that at least one worker is, or was last, actively
	// working the order's tasks.
	Production

	// QualityControl is entered automatically when every task of the order
	// reaches completion, awaiting a quality review decision.
	QualityControl

	// ReadyForPickup indicates quality was approved and the work awaits either
	// client pickup or installation scheduling.
	ReadyForPickup

	// AwaitingInstallation indicates an installation was scheduled instead of
	// a pickup.
	AwaitingInstallation

	// ToInvoice indicates the work was delivered (picked up or installed) and
	// the order is eligible for invoice aggregation.
	ToInvoice

	// Invoiced indicates the order is referenced by a finalized invoice.
	// The order is immutable for billing from this point on.
	Invoiced

	// Completed is the archival marker that may follow Invoiced.
	// This is a final state with no further transitions allowed.
	Completed

	// OnHold is a side state pausing the workflow on request.
	OnHold

	// Stopped is the derived side state for an order with no open work
	// sessions and tasks still outstanding.
	Stopped

	// Cancelled is the terminal side state for abandoned orders.
	Cancelled
)

// ErrInvalidTransition is the unwrap target for every rejected status change.
var ErrInvalidTransition = errors.New("invalid transition")

// InvalidTransitionError reports a workflow action that is not legal from the
// order's current status. The order is left unmodified.
type InvalidTransitionError struct {
	From   Status
	Action string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// source status and attempted action.
func NewInvalidTransitionError(from Status, action string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, Action: action}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: cannot %s from status %s", e.Action, e.From)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:              "unknown",
		Pending:              "pending",
		Production:           "production",
		QualityControl:       "quality_control",
		ReadyForPickup:       "ready_for_pickup",
		AwaitingInstallation: "awaiting_installation",
		ToInvoice:            "to_invoice",
		Invoiced:             "invoiced",
		Completed:            "completed",
		OnHold:               "on_hold",
		Stopped:              "stopped",
		Cancelled:            "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:              "pending",
		Production:           "production",
		QualityControl:       "quality_control",
		ReadyForPickup:       "ready_for_pickup",
		AwaitingInstallation: "awaiting_installation",
		ToInvoice:            "to_invoice",
		Invoiced:             "invoiced",
		Completed:            "completed",
		OnHold:               "on_hold",
		Stopped:              "stopped",
		Cancelled:            "cancelled",
	}
}

// Validate checks if the Status value is one of the defined workflow states.
// Unknown (0) and out-of-range values are invalid. Used when reconstructing
// orders from persistence or parsing statuses from external callers.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid status", ErrInvalidTransition, s)
	}
	return nil
}

// String returns the snake_case name of the status ("quality_control").
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further workflow transition is possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// IsBillingLocked reports whether the order is immutable for billing:
// either already invoiced or fully terminal.
func (s Status) IsBillingLocked() bool {
	return s == Invoiced || s.IsTerminal()
}

// IsProductionPhase reports whether the status is one the derived-state
// recomputation may move between (see services.StatusReconciler).
func (s Status) IsProductionPhase() bool {
	return s == Pending || s == Production || s == Stopped
}

// StartWork transitions the status to Production when a work session opens.
//
// Valid sources: Pending (first timer), Production (parallel timers),
// Stopped and OnHold (work resumes). This is an auto-transition driven by
// the time-session tracker, never a manual action.
func (s Status) StartWork() (Status, error) {
	if !s.IsProductionPhase() && s != OnHold {
		return 0, NewInvalidTransitionError(s, "start work")
	}
	return Production, nil
}

// CompleteTasks transitions the status to QualityControl once every task of
// the order is completed. Auto-transition recomputed from task state.
func (s Status) CompleteTasks() (Status, error) {
	if !s.IsProductionPhase() {
		return 0, NewInvalidTransitionError(s, "enter quality control")
	}
	return QualityControl, nil
}

// ReviewQuality resolves the quality gate: approval releases the order for
// pickup, rejection sends it back to Production for rework.
//
// Valid source: QualityControl only.
func (s Status) ReviewQuality(approved bool) (Status, error) {
	if s != QualityControl {
		return 0, NewInvalidTransitionError(s, "review quality")
	}
	if approved {
		return ReadyForPickup, nil
	}
	return Production, nil
}

// ConfirmPickup transitions ReadyForPickup to ToInvoice when the client
// collects the work. Mutually exclusive with ScheduleInstallation.
func (s Status) ConfirmPickup() (Status, error) {
	if s != ReadyForPickup {
		return 0, NewInvalidTransitionError(s, "confirm pickup")
	}
	return ToInvoice, nil
}

// ScheduleInstallation transitions ReadyForPickup to AwaitingInstallation.
// Mutually exclusive with ConfirmPickup.
func (s Status) ScheduleInstallation() (Status, error) {
	if s != ReadyForPickup {
		return 0, NewInvalidTransitionError(s, "schedule installation")
	}
	return AwaitingInstallation, nil
}

// ConfirmInstallation transitions AwaitingInstallation to ToInvoice after the
// installation is carried out.
func (s Status) ConfirmInstallation() (Status, error) {
	if s != AwaitingInstallation {
		return 0, NewInvalidTransitionError(s, "confirm installation")
	}
	return ToInvoice, nil
}

// MarkInvoiced transitions ToInvoice to Invoiced. Executed by the invoice
// aggregator in the same transaction that persists the invoice; the order is
// immutable for billing afterwards.
func (s Status) MarkInvoiced() (Status, error) {
	if s != ToInvoice {
		return 0, NewInvalidTransitionError(s, "invoice")
	}
	return Invoiced, nil
}

// Archive transitions Invoiced to Completed, the final archival marker.
func (s Status) Archive() (Status, error) {
	if s != Invoiced {
		return 0, NewInvalidTransitionError(s, "archive")
	}
	return Completed, nil
}

// Hold pauses the workflow from any active state.
func (s Status) Hold() (Status, error) {
	if s.IsBillingLocked() || s == OnHold || s == Unknown {
		return 0, NewInvalidTransitionError(s, "hold")
	}
	return OnHold, nil
}

// Stop marks the order as having no active work while tasks remain
// outstanding. Reached manually or through derived-state recomputation.
func (s Status) Stop() (Status, error) {
	if s != Pending && s != Production && s != OnHold {
		return 0, NewInvalidTransitionError(s, "stop")
	}
	return Stopped, nil
}

// Resume returns a held or stopped order to Production.
func (s Status) Resume() (Status, error) {
	if s != OnHold && s != Stopped {
		return 0, NewInvalidTransitionError(s, "resume")
	}
	return Production, nil
}

// Cancel abandons the order from any non-terminal, not-yet-invoiced state.
func (s Status) Cancel() (Status, error) {
	if s.IsBillingLocked() || s == Unknown {
		return 0, NewInvalidTransitionError(s, "cancel")
	}
	return Cancelled, nil
}
