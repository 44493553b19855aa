package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Fulfillment represents how an order reaches the customer. It is fixed when
// the order is placed and never changes afterwards. Fulfillment determines
// which statuses are reachable (assigned/enroute apply only to delivery) and
// which urgency thresholds apply.
type Fulfillment int

const (
	// FulfillmentUnknown represents an invalid or undefined fulfillment type.
	FulfillmentUnknown Fulfillment = iota

	// FulfillmentPickup means the customer collects the order at the restaurant.
	FulfillmentPickup

	// FulfillmentDelivery means a courier brings the order to the customer.
	FulfillmentDelivery
)

func getValidFulfillmentStrings() map[Fulfillment]string {
	//nolint:exhaustive // FulfillmentUnknown is intentionally excluded as it's invalid
	return map[Fulfillment]string{
		FulfillmentPickup:   "pickup",
		FulfillmentDelivery: "delivery",
	}
}

// FulfillmentFromString parses a wire-format fulfillment string.
// Unrecognized strings fail loudly; they are never coerced to a default.
func FulfillmentFromString(s string) (Fulfillment, error) {
	for fulfillment, str := range getValidFulfillmentStrings() {
		if str == s {
			return fulfillment, nil
		}
	}
	return FulfillmentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"fulfillment",
		fmt.Errorf("%q is not a valid fulfillment type", s),
	)
}

// Validate checks if the Fulfillment value is valid.
func (f Fulfillment) Validate() error {
	if _, ok := getValidFulfillmentStrings()[f]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"fulfillment",
			fmt.Errorf("%d is not a valid fulfillment type", f),
		)
	}
	return nil
}

// String returns the lowercase wire name, or "unknown" for invalid values.
func (f Fulfillment) String() string {
	if str, ok := getValidFulfillmentStrings()[f]; ok {
		return str
	}
	return "unknown"
}
