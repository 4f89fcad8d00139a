package order

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTransition is the sentinel for status-policy rejections.
// Use errors.Is to classify, and errors.As with *InvalidTransitionError
// to recover the valid target set for caller feedback.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports that a requested status change is not a
// member of the policy's valid set for the order's current status.
type InvalidTransitionError struct {
	Current   Status
	Requested Status
	Valid     []Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for a rejected
// transition, capturing the full valid target set at the time of rejection.
func NewInvalidTransitionError(current, requested Status) *InvalidTransitionError {
	return &InvalidTransitionError{
		Current:   current,
		Requested: requested,
		Valid:     current.ValidTransitions(),
	}
}

func (e *InvalidTransitionError) Error() string {
	names := make([]string, len(e.Valid))
	for i, s := range e.Valid {
		names[i] = s.String()
	}
	valid := "none"
	if len(names) > 0 {
		valid = strings.Join(names, ", ")
	}
	return fmt.Sprintf("%s: cannot move from %s to %s (valid targets: %s)",
		ErrInvalidTransition, e.Current, e.Requested, valid)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
