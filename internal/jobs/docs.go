// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fulfillment service.
//
// # Available Jobs
//
// 1. DelayedOrderSweepJob - Periodically flags active orders that have not
// been touched within the configured threshold so operators can chase them.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(markDelayedHandler, threshold, schedule, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep schedule is a standard five-field cron expression taken from
// configuration. Sweeping is idempotent: an order already flagged as delayed
// is skipped on later runs.
//
// # Error Handling
//
// Sweep failures are logged and the job waits for its next scheduled run;
// a failed run never stops the scheduler. Failed job starts will stop any
// already running jobs.
package jobs
