package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DelayedOrderSweepJob periodically flags stale active orders as delayed.
// An order is stale when its last update is older than the configured
// threshold.
type DelayedOrderSweepJob struct {
	handler   commands.MarkDelayedOrdersCommandHandler
	cron      *cron.Cron
	schedule  string
	threshold time.Duration
	logger    *slog.Logger
}

// NewDelayedOrderSweepJob creates the sweep job. The schedule is a standard
// five-field cron expression; the threshold is how long an active order may
// go untouched before it is flagged.
func NewDelayedOrderSweepJob(
	handler commands.MarkDelayedOrdersCommandHandler,
	threshold time.Duration,
	schedule string,
	logger *slog.Logger,
) *DelayedOrderSweepJob {
	return &DelayedOrderSweepJob{
		handler:   handler,
		cron:      cron.New(),
		schedule:  schedule,
		threshold: threshold,
		logger:    logger.With("component", "delayed_order_sweep_job"),
	}
}

// Start schedules the sweep. Returns an error for an invalid cron expression.
func (j *DelayedOrderSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewMarkDelayedOrdersCommand(j.threshold)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Delayed order sweep misconfigured", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Delayed order sweep failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delayed order sweep started",
		"schedule", j.schedule, "threshold", j.threshold.String())
	return nil
}

// Stop stops the sweep job.
func (j *DelayedOrderSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delayed order sweep stopped")
}
