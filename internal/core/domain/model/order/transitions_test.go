package order_test

import (
	"errors"
	"fmt"
	"testing"

	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.StatusReceived,
		order.StatusPreparing,
		order.StatusReady,
		order.StatusAssigned,
		order.StatusEnroute,
		order.StatusCompleted,
		order.StatusCancelled,
	}
}

func allRoles() []order.Role {
	return []order.Role{order.RoleCook, order.RoleDelivery, order.RoleManager}
}

func TestRequestTransition_KitchenFlow(t *testing.T) {
	t.Run("should allow cook and manager to start preparing", func(t *testing.T) {
		for _, fulfillment := range []order.Fulfillment{order.FulfillmentPickup, order.FulfillmentDelivery} {
			for _, role := range []order.Role{order.RoleCook, order.RoleManager} {
				err := order.RequestTransition(order.StatusReceived, order.StatusPreparing, fulfillment, role)
				require.NoError(t, err)
			}
		}
	})

	t.Run("should forbid delivery staff from starting preparation", func(t *testing.T) {
		err := order.RequestTransition(
			order.StatusReceived, order.StatusPreparing, order.FulfillmentDelivery, order.RoleDelivery)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrForbiddenRole)

		var rejection *order.TransitionError
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, order.ReasonForbiddenRole, rejection.Reason)
	})

	t.Run("should allow cook and manager to mark ready", func(t *testing.T) {
		for _, role := range []order.Role{order.RoleCook, order.RoleManager} {
			err := order.RequestTransition(order.StatusPreparing, order.StatusReady, order.FulfillmentPickup, role)
			require.NoError(t, err)
		}
	})
}

func TestRequestTransition_CourierFlow(t *testing.T) {
	t.Run("should allow the delivery chain for delivery orders", func(t *testing.T) {
		chain := []struct{ from, to order.Status }{
			{order.StatusReady, order.StatusAssigned},
			{order.StatusAssigned, order.StatusEnroute},
			{order.StatusEnroute, order.StatusCompleted},
		}

		for _, step := range chain {
			for _, role := range []order.Role{order.RoleDelivery, order.RoleManager} {
				err := order.RequestTransition(step.from, step.to, order.FulfillmentDelivery, role)
				require.NoError(t, err, "%s -> %s as %s", step.from, step.to, role)
			}
		}
	})

	t.Run("should reject the delivery chain for pickup orders", func(t *testing.T) {
		chain := []struct{ from, to order.Status }{
			{order.StatusReady, order.StatusAssigned},
			{order.StatusAssigned, order.StatusEnroute},
			{order.StatusEnroute, order.StatusCompleted},
		}

		for _, step := range chain {
			err := order.RequestTransition(step.from, step.to, order.FulfillmentPickup, order.RoleManager)

			require.Error(t, err, "%s -> %s should not exist for pickup", step.from, step.to)
			require.ErrorIs(t, err, order.ErrInvalidTransition)
		}
	})

	t.Run("should forbid cook from assigning couriers", func(t *testing.T) {
		err := order.RequestTransition(
			order.StatusReady, order.StatusAssigned, order.FulfillmentDelivery, order.RoleCook)

		require.ErrorIs(t, err, order.ErrForbiddenRole)
	})
}

func TestRequestTransition_PickupCompletion(t *testing.T) {
	t.Run("should allow cook and manager to complete pickup orders from ready", func(t *testing.T) {
		for _, role := range []order.Role{order.RoleCook, order.RoleManager} {
			err := order.RequestTransition(order.StatusReady, order.StatusCompleted, order.FulfillmentPickup, role)
			require.NoError(t, err)
		}
	})

	t.Run("should reject completing a delivery order from ready", func(t *testing.T) {
		err := order.RequestTransition(
			order.StatusReady, order.StatusCompleted, order.FulfillmentDelivery, order.RoleManager)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestRequestTransition_Cancellation(t *testing.T) {
	t.Run("should allow manager to cancel from any non-terminal status", func(t *testing.T) {
		for _, from := range allStatuses() {
			if from.IsTerminal() {
				continue
			}
			for _, fulfillment := range []order.Fulfillment{order.FulfillmentPickup, order.FulfillmentDelivery} {
				err := order.RequestTransition(from, order.StatusCancelled, fulfillment, order.RoleManager)
				require.NoError(t, err, "manager cancel from %s (%s)", from, fulfillment)
			}
		}
	})

	t.Run("should allow cook and delivery to cancel only from received or preparing", func(t *testing.T) {
		for _, role := range []order.Role{order.RoleCook, order.RoleDelivery} {
			for _, from := range []order.Status{order.StatusReceived, order.StatusPreparing} {
				err := order.RequestTransition(from, order.StatusCancelled, order.FulfillmentDelivery, role)
				require.NoError(t, err, "%s cancel from %s", role, from)
			}

			for _, from := range []order.Status{order.StatusReady, order.StatusAssigned, order.StatusEnroute} {
				err := order.RequestTransition(from, order.StatusCancelled, order.FulfillmentDelivery, role)

				require.Error(t, err, "%s cancel from %s should be rejected", role, from)
				require.ErrorIs(t, err, order.ErrForbiddenRole)
			}
		}
	})
}

func TestRequestTransition_TerminalStates(t *testing.T) {
	t.Run("should reject every transition out of a terminal state", func(t *testing.T) {
		for _, from := range []order.Status{order.StatusCompleted, order.StatusCancelled} {
			for _, to := range allStatuses() {
				for _, role := range allRoles() {
					err := order.RequestTransition(from, to, order.FulfillmentDelivery, role)

					require.Error(t, err, "%s -> %s as %s", from, to, role)
					require.ErrorIs(t, err, order.ErrTerminalState)

					var rejection *order.TransitionError
					require.ErrorAs(t, err, &rejection)
					assert.Equal(t, order.ReasonTerminalState, rejection.Reason)
				}
			}
		}
	})
}

func TestRequestTransition_Exhaustive(t *testing.T) {
	t.Run("should reject every pair not in the lifecycle table", func(t *testing.T) {
		type edge struct {
			from, to    order.Status
			fulfillment order.Fulfillment
		}

		legal := map[edge]bool{}
		for _, f := range []order.Fulfillment{order.FulfillmentPickup, order.FulfillmentDelivery} {
			for _, from := range allStatuses() {
				for _, to := range order.AllowedTransitions(from, f) {
					legal[edge{from, to, f}] = true
				}
			}
		}

		for _, f := range []order.Fulfillment{order.FulfillmentPickup, order.FulfillmentDelivery} {
			for _, from := range allStatuses() {
				for _, to := range allStatuses() {
					if legal[edge{from, to, f}] || from.IsTerminal() {
						continue
					}
					err := order.RequestTransition(from, to, f, order.RoleManager)

					require.Error(t, err, "%s -> %s (%s) should be rejected", from, to, f)
					require.ErrorIs(t, err, order.ErrInvalidTransition)
				}
			}
		}
	})

	t.Run("should reject malformed enumeration input with a validation error", func(t *testing.T) {
		err := order.RequestTransition(
			order.StatusUnknown, order.StatusPreparing, order.FulfillmentDelivery, order.RoleCook)

		require.Error(t, err)

		var rejection *order.TransitionError
		assert.False(t, errors.As(err, &rejection), "malformed input must not look like a rejection")
	})
}

func TestAllowedTransitions(t *testing.T) {
	t.Run("should list next statuses for UI inspection", func(t *testing.T) {
		testCases := []struct {
			from        order.Status
			fulfillment order.Fulfillment
			expected    []order.Status
		}{
			{order.StatusReceived, order.FulfillmentPickup, []order.Status{order.StatusPreparing, order.StatusCancelled}},
			{order.StatusReady, order.FulfillmentDelivery, []order.Status{order.StatusAssigned, order.StatusCancelled}},
			{order.StatusReady, order.FulfillmentPickup, []order.Status{order.StatusCompleted, order.StatusCancelled}},
			{order.StatusCompleted, order.FulfillmentDelivery, nil},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("from %s (%s)", tc.from, tc.fulfillment), func(t *testing.T) {
				assert.Equal(t, tc.expected, order.AllowedTransitions(tc.from, tc.fulfillment))
			})
		}
	})
}

func TestTransitionError_Messages(t *testing.T) {
	t.Run("should render stable reason strings", func(t *testing.T) {
		err := order.RequestTransition(
			order.StatusCompleted, order.StatusPreparing, order.FulfillmentPickup, order.RoleCook)
		assert.Contains(t, err.Error(), "terminal_state")

		err = order.RequestTransition(
			order.StatusReceived, order.StatusReady, order.FulfillmentPickup, order.RoleManager)
		assert.Contains(t, err.Error(), "invalid_transition")

		err = order.RequestTransition(
			order.StatusReady, order.StatusAssigned, order.FulfillmentDelivery, order.RoleCook)
		assert.Contains(t, err.Error(), "forbidden_role")
	})
}
