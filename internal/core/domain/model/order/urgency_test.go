package order_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestComputeUrgencyFlags_Late(t *testing.T) {
	now := time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC)

	t.Run("should flag a received delivery order placed 16 minutes ago", func(t *testing.T) {
		placedAt := now.Add(-16 * time.Minute)

		flags := order.ComputeUrgencyFlags(
			order.StatusReceived, order.FulfillmentDelivery, placedAt, nil, now)

		assert.True(t, flags.Late)
		assert.False(t, flags.Soon)
	})

	t.Run("should not flag a preparing pickup order placed 9 minutes ago", func(t *testing.T) {
		placedAt := now.Add(-9 * time.Minute)

		flags := order.ComputeUrgencyFlags(
			order.StatusPreparing, order.FulfillmentPickup, placedAt, nil, now)

		assert.False(t, flags.Late)
	})

	t.Run("should flag a pickup order after its tighter threshold", func(t *testing.T) {
		placedAt := now.Add(-11 * time.Minute)

		flags := order.ComputeUrgencyFlags(
			order.StatusReceived, order.FulfillmentPickup, placedAt, nil, now)

		assert.True(t, flags.Late)
	})

	t.Run("should not flag an order exactly at the threshold", func(t *testing.T) {
		placedAt := now.Add(-order.LateAfterDelivery)

		flags := order.ComputeUrgencyFlags(
			order.StatusReceived, order.FulfillmentDelivery, placedAt, nil, now)

		assert.False(t, flags.Late)
	})

	t.Run("should not flag orders past the kitchen stage", func(t *testing.T) {
		placedAt := now.Add(-2 * time.Hour)

		for _, status := range []order.Status{
			order.StatusReady,
			order.StatusAssigned,
			order.StatusEnroute,
			order.StatusCompleted,
			order.StatusCancelled,
		} {
			flags := order.ComputeUrgencyFlags(
				status, order.FulfillmentDelivery, placedAt, nil, now)

			assert.False(t, flags.Late, "%s should never be late", status)
		}
	})
}

func TestComputeUrgencyFlags_Soon(t *testing.T) {
	now := time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC)
	placedAt := now.Add(-5 * time.Minute)

	t.Run("should flag a scheduled order due in 10 minutes", func(t *testing.T) {
		scheduledAt := now.Add(10 * time.Minute)

		flags := order.ComputeUrgencyFlags(
			order.StatusReceived, order.FulfillmentPickup, placedAt, &scheduledAt, now)

		assert.True(t, flags.Soon)
	})

	t.Run("should not flag a scheduled order due in 20 minutes", func(t *testing.T) {
		scheduledAt := now.Add(20 * time.Minute)

		flags := order.ComputeUrgencyFlags(
			order.StatusReceived, order.FulfillmentPickup, placedAt, &scheduledAt, now)

		assert.False(t, flags.Soon)
	})

	t.Run("should not flag a scheduled time already in the past", func(t *testing.T) {
		scheduledAt := now.Add(-1 * time.Minute)

		flags := order.ComputeUrgencyFlags(
			order.StatusReceived, order.FulfillmentPickup, placedAt, &scheduledAt, now)

		assert.False(t, flags.Soon)
	})

	t.Run("should not flag when no scheduled time is set", func(t *testing.T) {
		flags := order.ComputeUrgencyFlags(
			order.StatusReceived, order.FulfillmentPickup, placedAt, nil, now)

		assert.False(t, flags.Soon)
	})

	t.Run("should emit both flags simultaneously", func(t *testing.T) {
		latePlacedAt := now.Add(-20 * time.Minute)
		scheduledAt := now.Add(5 * time.Minute)

		flags := order.ComputeUrgencyFlags(
			order.StatusPreparing, order.FulfillmentDelivery, latePlacedAt, &scheduledAt, now)

		assert.True(t, flags.Late)
		assert.True(t, flags.Soon)
	})
}
