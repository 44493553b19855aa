package order_test

import (
	"fmt"
	"testing"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.StatusUnknown))
		assert.Equal(t, 1, int(order.StatusReceived))
		assert.Equal(t, 2, int(order.StatusPreparing))
		assert.Equal(t, 3, int(order.StatusReady))
		assert.Equal(t, 4, int(order.StatusAssigned))
		assert.Equal(t, 5, int(order.StatusEnroute))
		assert.Equal(t, 6, int(order.StatusCompleted))
		assert.Equal(t, 7, int(order.StatusCancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.StatusReceived,
			order.StatusPreparing,
			order.StatusReady,
			order.StatusAssigned,
			order.StatusEnroute,
			order.StatusCompleted,
			order.StatusCancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.StatusUnknown,
			order.Status(-1),
			order.Status(8),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return lowercase wire names", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.StatusReceived, "received"},
			{order.StatusPreparing, "preparing"},
			{order.StatusReady, "ready"},
			{order.StatusAssigned, "assigned"},
			{order.StatusEnroute, "enroute"},
			{order.StatusCompleted, "completed"},
			{order.StatusCancelled, "cancelled"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return unknown for invalid statuses", func(t *testing.T) {
		assert.Equal(t, "unknown", order.StatusUnknown.String())
		assert.Equal(t, "unknown", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every valid wire name", func(t *testing.T) {
		wireNames := []string{"received", "preparing", "ready", "assigned", "enroute", "completed", "cancelled"}

		for _, name := range wireNames {
			t.Run(fmt.Sprintf("should parse %q", name), func(t *testing.T) {
				status, err := order.StatusFromString(name)

				require.NoError(t, err)
				assert.Equal(t, name, status.String())
			})
		}
	})

	t.Run("should fail loudly on unrecognized strings", func(t *testing.T) {
		invalidInputs := []string{"", "Received", "RECEIVED", "en-route", "done", "unknown"}

		for _, input := range invalidInputs {
			t.Run(fmt.Sprintf("should reject %q", input), func(t *testing.T) {
				_, err := order.StatusFromString(input)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should report completed and cancelled as terminal", func(t *testing.T) {
		assert.True(t, order.StatusCompleted.IsTerminal())
		assert.True(t, order.StatusCancelled.IsTerminal())
	})

	t.Run("should report active statuses as non-terminal", func(t *testing.T) {
		for _, status := range []order.Status{
			order.StatusReceived,
			order.StatusPreparing,
			order.StatusReady,
			order.StatusAssigned,
			order.StatusEnroute,
		} {
			assert.False(t, status.IsTerminal(), "%s should not be terminal", status)
		}
	})
}

func TestFulfillmentFromString(t *testing.T) {
	t.Run("should parse valid fulfillment types", func(t *testing.T) {
		pickup, err := order.FulfillmentFromString("pickup")
		require.NoError(t, err)
		assert.Equal(t, order.FulfillmentPickup, pickup)

		delivery, err := order.FulfillmentFromString("delivery")
		require.NoError(t, err)
		assert.Equal(t, order.FulfillmentDelivery, delivery)
	})

	t.Run("should fail loudly on unrecognized strings", func(t *testing.T) {
		_, err := order.FulfillmentFromString("dine_in")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject the zero value", func(t *testing.T) {
		require.Error(t, order.FulfillmentUnknown.Validate())
	})
}

func TestRoleFromString(t *testing.T) {
	t.Run("should parse valid roles", func(t *testing.T) {
		for _, name := range []string{"cook", "delivery", "manager"} {
			role, err := order.RoleFromString(name)

			require.NoError(t, err)
			assert.Equal(t, name, role.String())
		}
	})

	t.Run("should fail loudly on unrecognized strings", func(t *testing.T) {
		_, err := order.RoleFromString("admin")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
