package task

import (
	"errors"
	"fmt"

	"workshop/internal/pkg/errs"
)

// Status represents the lifecycle state of a task.
//
// State transitions:
//
//	Pending ──┬──> InProgress ──> Completed
//	          │        │              │
//	          │        v              v  (reopen on quality rejection)
//	          └──> Cancelled      InProgress
//
// Pending tasks may also be completed directly when no time tracking was used.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	Pending
	InProgress
	Completed
	Cancelled
)

// ErrInvalidTransition is the unwrap target for every rejected task status change.
var ErrInvalidTransition = errors.New("invalid task transition")

// InvalidTransitionError reports a task status change that is not legal from
// the current status. The task is left unmodified.
type InvalidTransitionError struct {
	From   Status
	Action string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid task transition: cannot %s from status %s", e.Action, e.From)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

func newTransitionError(from Status, action string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, Action: action}
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// StatusFromString parses the snake_case form ("in_progress").
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid task status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid task status", s))
	}
	return nil
}

// String returns the snake_case name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the task reached a final state.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Start transitions the status to InProgress when work begins.
func (s Status) Start() (Status, error) {
	if s != Pending && s != InProgress {
		return 0, newTransitionError(s, "start")
	}
	return InProgress, nil
}

// Complete marks the work done. Pending tasks may be completed directly.
func (s Status) Complete() (Status, error) {
	if s != Pending && s != InProgress {
		return 0, newTransitionError(s, "complete")
	}
	return Completed, nil
}

// Cancel abandons a task that has not reached a final state.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() || s == Unknown {
		return 0, newTransitionError(s, "cancel")
	}
	return Cancelled, nil
}

// Reopen returns a completed task to InProgress for rework after a quality
// rejection on the owning order.
func (s Status) Reopen() (Status, error) {
	if s != Completed {
		return 0, newTransitionError(s, "reopen")
	}
	return InProgress, nil
}
