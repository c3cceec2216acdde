// Package jobs provides scheduled background tasks for the workflow engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OpenSessionWatchdog - Runs every five minutes and logs work sessions
// that have been open longer than the configured threshold, usually a timer
// someone forgot to stop.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(openSessionsHandler, threshold, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The watchdog is observability only: it never closes a session or touches
// an order status. Long-running timers are a human decision to resolve;
// automated sweeps are deliberately absent from the engine.
package jobs
