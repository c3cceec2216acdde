package jobs

import (
	"context"
	"log/slog"

	"workshop/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

// OpenSessionWatchdog periodically reports work sessions that have been open
// longer than the threshold. It only logs; forgotten timers are closed by
// people, never by a sweep.
type OpenSessionWatchdog struct {
	handler   queries.GetOpenSessionsQueryHandler
	threshold decimal.Decimal
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOpenSessionWatchdog creates the watchdog. The threshold is in hours;
// sessions open at least that long are reported on every run.
func NewOpenSessionWatchdog(
	handler queries.GetOpenSessionsQueryHandler,
	thresholdHours decimal.Decimal,
	logger *slog.Logger,
) *OpenSessionWatchdog {
	return &OpenSessionWatchdog{
		handler:   handler,
		threshold: thresholdHours,
		cron:      cron.New(),
		logger:    logger.With("component", "open_session_watchdog"),
	}
}

// Start schedules the watchdog to run every five minutes.
func (j *OpenSessionWatchdog) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Open session watchdog started (running every five minutes)",
		"threshold_hours", j.threshold.String())
	return nil
}

// Stop stops the watchdog.
func (j *OpenSessionWatchdog) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Open session watchdog stopped")
}

func (j *OpenSessionWatchdog) run() {
	ctx := context.Background()

	sessions, err := j.handler.Handle(ctx, queries.NewGetOpenSessionsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Open session watchdog failed", "error", err)
		return
	}

	for _, s := range sessions {
		if s.ElapsedHours.LessThan(j.threshold) {
			continue
		}

		j.logger.WarnContext(ctx, "Work session open past threshold",
			"session_id", s.SessionID.String(),
			"task_id", s.TaskID.String(),
			"task_title", s.TaskTitle,
			"worker_id", s.WorkerID.String(),
			"started_at", s.StartedAt,
			"elapsed_hours", s.ElapsedHours.String(),
		)
	}
}
