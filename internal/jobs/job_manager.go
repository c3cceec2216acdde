package jobs

import (
	"fmt"
	"log/slog"

	"workshop/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	openSessionWatchdog *OpenSessionWatchdog
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	openSessionsHandler queries.GetOpenSessionsQueryHandler,
	watchdogThresholdHours decimal.Decimal,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		openSessionWatchdog: NewOpenSessionWatchdog(openSessionsHandler, watchdogThresholdHours, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.openSessionWatchdog.Start(); err != nil {
		return fmt.Errorf("failed to start open session watchdog: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.openSessionWatchdog.Stop()
}
