// Package worksession provides the time-session entity: a continuous interval
// during which a worker is recorded as actively working a task.
//
// Key business rules:
//   - At most one open session exists per (task, worker) pair at any instant;
//     the uniqueness is enforced at write time by the persistence adapter, not
//     by scanning
//   - Hours worked are computed exactly once, at close time, and persisted as
//     a fixed-point decimal; a closed session is never reopened
//   - Only closed sessions are ever billed; open sessions contribute their
//     elapsed-so-far time to live dashboard totals only
package worksession

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrSessionIsNotConstructed is returned when a Session instance was not
	// created through the NewSession or RestoreSession factory methods.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession or RestoreSession")

	// ErrSessionAlreadyOpen is returned when starting a session while another
	// one is still open for the same (task, worker) pair.
	ErrSessionAlreadyOpen = errors.New("a session is already open for this task and worker")

	// ErrSessionNotFound is returned when the referenced session does not exist.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionAlreadyClosed is returned when stopping a session that was
	// already closed. Closing is idempotently terminal.
	ErrSessionAlreadyClosed = errors.New("session is already closed")
)

// secondsPerHour converts elapsed seconds into decimal hours.
var secondsPerHour = decimal.NewFromInt(3600)

// Session records one start/stop work interval of a worker against a task.
type Session struct {
	id       kernel.UUID
	taskID   kernel.UUID
	workerID kernel.UUID

	startedAt time.Time

	// endedAt is nil while the session is open/running
	endedAt *time.Time

	note string

	// hoursWorked is computed at close time and never changes afterwards
	hoursWorked decimal.Decimal

	isConstructed bool
}

// NewSession opens a session for the given task and worker at startedAt.
func NewSession(id, taskID, workerID kernel.UUID, startedAt time.Time) (*Session, error) {
	s := &Session{
		startedAt:     startedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setTaskID(taskID),
		s.setWorkerID(workerID),
	); err != nil {
		return nil, err
	}

	if startedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("startedAt")
	}

	return s, nil
}

// RestoreSession reconstructs a Session from persistence.
func RestoreSession(
	id, taskID, workerID kernel.UUID,
	startedAt time.Time,
	endedAt *time.Time,
	note string,
	hoursWorked decimal.Decimal,
) (*Session, error) {
	s, err := NewSession(id, taskID, workerID, startedAt)
	if err != nil {
		return nil, err
	}

	s.endedAt = endedAt
	s.note = note
	s.hoursWorked = hoursWorked
	return s, nil
}

// Validate ensures the Session was constructed through a factory method.
func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() kernel.UUID {
	return s.id
}

// TaskID returns the task the time was logged against. The reference is kept
// even after the task is tombstoned.
func (s *Session) TaskID() kernel.UUID {
	return s.taskID
}

// WorkerID returns the worker who logged the time.
func (s *Session) WorkerID() kernel.UUID {
	return s.workerID
}

// StartedAt returns the opening instant.
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// EndedAt returns the closing instant, nil while the session is running.
func (s *Session) EndedAt() *time.Time {
	return s.endedAt
}

// Note returns the free-text note recorded at close time.
func (s *Session) Note() string {
	return s.note
}

// HoursWorked returns the persisted fixed-point hours of a closed session.
// Zero while the session is still open.
func (s *Session) HoursWorked() decimal.Decimal {
	return s.hoursWorked
}

// IsOpen reports whether the session is still running.
func (s *Session) IsOpen() bool {
	return s.endedAt == nil
}

// Close stops the session at the given instant, computing the worked hours as
// (end - start) in hours, rounded to two decimal places. Closing a closed
// session fails with ErrSessionAlreadyClosed; a session is never reopened.
func (s *Session) Close(now time.Time, note string) error {
	if !s.IsOpen() {
		return ErrSessionAlreadyClosed
	}
	if now.Before(s.startedAt) {
		return errs.NewValueIsInvalidErrorWithCause("endedAt",
			errors.New("end instant precedes start instant"))
	}

	s.endedAt = &now
	s.note = note
	s.hoursWorked = hoursBetween(s.startedAt, now)
	return nil
}

// ElapsedHours returns the closed session's persisted hours, or the
// elapsed-so-far hours of an open session relative to now. The live figure is
// for dashboards only; invoicing reads HoursWorked of closed sessions.
func (s *Session) ElapsedHours(now time.Time) decimal.Decimal {
	if s.IsOpen() {
		if now.Before(s.startedAt) {
			return decimal.Zero
		}
		return hoursBetween(s.startedAt, now)
	}
	return s.hoursWorked
}

func hoursBetween(start, end time.Time) decimal.Decimal {
	seconds := decimal.NewFromInt(int64(end.Sub(start) / time.Second))
	return seconds.Div(secondsPerHour).Round(2)
}

func (s *Session) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Session) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}
	s.taskID = taskID
	return nil
}

func (s *Session) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	s.workerID = workerID
	return nil
}
