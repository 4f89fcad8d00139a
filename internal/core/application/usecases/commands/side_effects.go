package commands

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// defaultSideEffectTimeout bounds each side-effect delivery attempt.
const defaultSideEffectTimeout = 5 * time.Second

// AuditActionStatusUpdate is the audit action kind recorded for status changes.
const AuditActionStatusUpdate = "ORDER_STATUS_UPDATE"

// SideEffects dispatches the best-effort follow-ups of a committed write:
// the coarse status projection onto the commerce order record, the user
// notification, and the audit trail entry.
//
// Every dispatch is fire-and-forget: it runs on its own goroutine with its
// own deadline, detached from the caller's context, and a failure is logged
// and swallowed. The originating command has already committed; nothing
// here may fail it or roll it back.
type SideEffects struct {
	projector  ports.CommerceProjector
	notifier   ports.Notifier
	audit      ports.AuditSink
	projection services.StatusProjection

	logger  *slog.Logger
	timeout time.Duration

	inflight sync.WaitGroup
}

// NewSideEffects creates a dispatcher over the three collaborator ports.
func NewSideEffects(
	projector ports.CommerceProjector,
	notifier ports.Notifier,
	audit ports.AuditSink,
	logger *slog.Logger,
) *SideEffects {
	return &SideEffects{
		projector:  projector,
		notifier:   notifier,
		audit:      audit,
		projection: services.NewStatusProjection(),
		logger:     logger,
		timeout:    defaultSideEffectTimeout,
	}
}

// OrderStatusChanged fires the three follow-ups of a committed status
// transition. previous is the status the order held before the write was
// applied; origin identifies where the request came from, for the audit
// trail.
func (s *SideEffects) OrderStatusChanged(o *order.Order, previous order.Status, actorID kernel.UUID, origin string) {
	orderID := o.ID()
	commerceOrderID := o.CommerceOrderID()
	userID := o.UserID()
	newStatus := o.Status()

	s.fire("commerce status projection", func(ctx context.Context) error {
		return s.projector.ProjectStatus(ctx, commerceOrderID, s.projection.Project(newStatus))
	})

	s.fire("status notification", func(ctx context.Context) error {
		return s.notifier.Notify(ctx, ports.Notification{
			UserID:  userID,
			Type:    "ORDER_UPDATE",
			Title:   "Order update",
			Message: fmt.Sprintf("Your order is now %s", newStatus.Humanize()),
			Link:    "/dashboard/orders/" + orderID.String(),
			Metadata: map[string]string{
				"orderId": orderID.String(),
				"status":  newStatus.String(),
			},
		})
	})

	s.fire("audit record", func(ctx context.Context) error {
		return s.audit.Record(ctx, ports.AuditRecord{
			ActorID:   actorID,
			Action:    AuditActionStatusUpdate,
			Success:   true,
			Details:   fmt.Sprintf("order %s: %s -> %s", orderID, previous, newStatus),
			Origin:    origin,
			Timestamp: time.Now().UTC(),
		})
	})
}

// TrackingChanged fires the follow-ups of a committed tracking update.
// The commerce record learns the current tracking fields on every change;
// the customer is notified only when the tracking number was previously
// empty, so a corrected or replaced number does not re-ping them.
func (s *SideEffects) TrackingChanged(o *order.Order, numberNewlySet bool) {
	orderID := o.ID()
	commerceOrderID := o.CommerceOrderID()
	userID := o.UserID()
	tracking := o.Tracking()

	s.fire("commerce tracking projection", func(ctx context.Context) error {
		number := tracking.Number()
		url := tracking.URL()
		courierName := tracking.CourierName()

		return s.projector.ProjectTracking(ctx, commerceOrderID, ports.TrackingProjection{
			TrackingNumber:    &number,
			TrackingURL:       &url,
			CourierName:       &courierName,
			EstimatedDelivery: tracking.EstimatedDelivery(),
		})
	})

	if !numberNewlySet {
		return
	}

	s.fire("tracking notification", func(ctx context.Context) error {
		return s.notifier.Notify(ctx, ports.Notification{
			UserID:  userID,
			Type:    "ORDER_TRACKING",
			Title:   "Tracking available",
			Message: fmt.Sprintf("Tracking number %s is now available for your order", tracking.Number()),
			Link:    "/dashboard/orders/" + orderID.String(),
			Metadata: map[string]string{
				"orderId":        orderID.String(),
				"trackingNumber": tracking.Number(),
			},
		})
	})
}

// Wait blocks until all in-flight side effects have finished. Called on
// shutdown so committed follow-ups are not dropped mid-delivery.
func (s *SideEffects) Wait() {
	s.inflight.Wait()
}

// fire runs one side effect on its own goroutine with a bounded deadline,
// detached from the command's context. Failures are logged, never returned.
func (s *SideEffects) fire(name string, effect func(ctx context.Context) error) {
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		if err := effect(ctx); err != nil {
			s.logger.Error("side effect failed", "effect", name, "error", err)
		}
	}()
}
