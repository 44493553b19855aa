package order

import "time"

// Urgency thresholds. Late is measured from placement while the order is
// still in the kitchen's inbox; pickup customers are waiting on site, so
// their threshold is tighter.
const (
	// LateAfterDelivery is the age after which a delivery order still in
	// received or preparing is flagged late.
	LateAfterDelivery = 15 * time.Minute

	// LateAfterPickup is the age after which a pickup order still in
	// received or preparing is flagged late.
	LateAfterPickup = 10 * time.Minute

	// SoonWithin is how close a future scheduled time must be before the
	// order is flagged as due soon.
	SoonWithin = 15 * time.Minute
)

// UrgencyFlags is advisory UI metadata derived from an order's timestamps.
// Flags are recomputed on every render or poll and never persisted; they do
// not influence the state machine. Both flags may be set at once.
type UrgencyFlags struct {
	// Late is set while the order sits in received or preparing longer than
	// its fulfillment type allows.
	Late bool

	// Soon is set when a scheduled order's due time is in the future but
	// less than SoonWithin away.
	Soon bool
}

// ComputeUrgencyFlags derives the urgency flags for an order at the given
// instant. Pure function: identical inputs always yield identical flags.
//
// Late: status is received or preparing and now-placedAt exceeds the
// per-fulfillment threshold (strictly; an order exactly at the threshold is
// not yet late).
//
// Soon: scheduledAt is set, still in the future, and less than SoonWithin
// away.
func ComputeUrgencyFlags(
	status Status,
	fulfillment Fulfillment,
	placedAt time.Time,
	scheduledAt *time.Time,
	now time.Time,
) UrgencyFlags {
	var flags UrgencyFlags

	if status == StatusReceived || status == StatusPreparing {
		threshold := LateAfterPickup
		if fulfillment == FulfillmentDelivery {
			threshold = LateAfterDelivery
		}
		if now.Sub(placedAt) > threshold {
			flags.Late = true
		}
	}

	if scheduledAt != nil && scheduledAt.After(now) && scheduledAt.Sub(now) < SoonWithin {
		flags.Soon = true
	}

	return flags
}
