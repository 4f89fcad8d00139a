package commands

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrMarkDelayedOrdersCommandIsNotConstructed = errors.New(
		"MarkDelayedOrdersCommand must be created via NewMarkDelayedOrdersCommand constructor",
	)
	ErrDelayThresholdIsInvalid = errors.New("delay threshold must be greater than 0")
)

// MarkDelayedOrdersCommand triggers the delayed-order sweep: every active
// order whose last write is older than the threshold gets its isDelayed
// flag raised.
//
// Example:
//
//	cmd, _ := NewMarkDelayedOrdersCommand(48 * time.Hour)
//	handler := NewMarkDelayedOrdersCommandHandler(uowFactory)
//
//	// Run periodically from the job scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("delayed sweep failed: %v", err)
//	}
type MarkDelayedOrdersCommand struct { //nolint:recvcheck //using for validation
	threshold time.Duration

	guard guard.ConstructorGuard
}

// NewMarkDelayedOrdersCommand creates a sweep command with the given
// staleness threshold.
func NewMarkDelayedOrdersCommand(threshold time.Duration) (MarkDelayedOrdersCommand, error) {
	command := MarkDelayedOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setThreshold(threshold); err != nil {
		return MarkDelayedOrdersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkDelayedOrdersCommandIsNotConstructed if validation fails.
func (c MarkDelayedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrMarkDelayedOrdersCommandIsNotConstructed)
}

// Threshold returns how long an active order may go without a write
// before it counts as delayed.
func (c MarkDelayedOrdersCommand) Threshold() time.Duration {
	return c.threshold
}

func (c *MarkDelayedOrdersCommand) setThreshold(threshold time.Duration) error {
	if threshold <= 0 {
		return ErrDelayThresholdIsInvalid
	}

	c.threshold = threshold
	return nil
}
