package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestStatusProjection_Project(t *testing.T) {
	projection := services.NewStatusProjection()

	t.Run("warehouse stages collapse to their phase", func(t *testing.T) {
		assert.Equal(t, "sourcing", projection.Project(order.Sourcing))
		assert.Equal(t, "sourcing", projection.Project(order.Sourced))
		assert.Equal(t, "packing", projection.Project(order.Packing))
		assert.Equal(t, "packing", projection.Project(order.Packed))
	})

	t.Run("cancelled projects as failed", func(t *testing.T) {
		assert.Equal(t, "failed", projection.Project(order.Cancelled))
	})

	t.Run("everything else passes through unchanged", func(t *testing.T) {
		passThrough := []order.Status{
			order.Pending, order.ReadyForDispatch, order.Dispatched,
			order.Shipped, order.OutForDelivery, order.Delivered,
			order.RTOInitiated, order.RTODelivered, order.Returned,
			order.Failed,
		}
		for _, s := range passThrough {
			assert.Equal(t, s.String(), projection.Project(s), s.String())
		}
	})
}
