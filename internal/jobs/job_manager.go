package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	delayedOrderSweepJob *DelayedOrderSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	markDelayedHandler commands.MarkDelayedOrdersCommandHandler,
	sweepThreshold time.Duration,
	sweepSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		delayedOrderSweepJob: NewDelayedOrderSweepJob(markDelayedHandler, sweepThreshold, sweepSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.delayedOrderSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start delayed order sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.delayedOrderSweepJob.Stop()
}
