package services

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/pricing"
)

// FeeCalculator computes an itemized delivery fee from a committed rule set
// and the facts of a single order. It is a pure domain service: it holds no
// state, reads no clock and performs no I/O, so the same inputs always
// produce the same breakdown.
type FeeCalculator interface {
	Calculate(rules pricing.RuleSet, quote pricing.QuoteContext) (pricing.FeeBreakdown, error)
}

var _ FeeCalculator = feeCalculator{}

type feeCalculator struct{}

// NewFeeCalculator creates the delivery-fee calculation service.
func NewFeeCalculator() FeeCalculator {
	return feeCalculator{}
}

// Calculate evaluates the rule set against the quote context.
//
// The fee is assembled from up to six components: the base fee, a distance
// component (distance-based rule sets only, with the distance clamped to the
// configured radius), peak-hour surcharges for every window containing the
// order's local wall-clock time, a weekend surcharge on Saturdays and
// Sundays, a holiday surcharge when the caller marked the day a holiday, and
// a minimum-order surcharge when the subtotal is under the threshold.
//
// A free-delivery threshold short-circuits everything: when the subtotal
// reaches it, the quote comes back waived with every component zero.
//
// Weekend and peak-hour checks use the order time converted to the rule
// set's timezone, so a restaurant in Berlin sees its own Friday evening even
// when the order timestamp arrives in UTC.
func (feeCalculator) Calculate(
	rules pricing.RuleSet,
	quote pricing.QuoteContext,
) (pricing.FeeBreakdown, error) {
	if err := errors.Join(rules.Validate(), quote.Validate()); err != nil {
		return pricing.FeeBreakdown{}, err
	}

	if threshold := rules.FreeDeliveryAbove(); threshold != nil &&
		quote.Subtotal().GreaterOrEqual(*threshold) {
		return pricing.FeeBreakdown{Waived: true}, nil
	}

	breakdown := pricing.FeeBreakdown{
		BaseFee: rules.BaseFee(),
	}

	if rules.Type() == pricing.RuleTypeDistanceBased && rules.PerKmFee() != nil {
		distanceKm := quote.DistanceKm()
		if radius := rules.MaxDistanceKm(); radius != nil && distanceKm > *radius {
			distanceKm = *radius
		}
		breakdown.DistanceFee = rules.PerKmFee().MulFloat(distanceKm)
	}

	localTime := quote.OrderedAt().In(rules.Timezone())
	wallClock := kernel.TimeOfDayOf(localTime)

	for _, window := range rules.PeakWindows() {
		if window.Contains(wallClock) {
			breakdown.PeakSurcharge = breakdown.PeakSurcharge.Add(window.AdditionalFee())
		}
	}

	if fee := rules.WeekendFee(); fee != nil && isWeekend(localTime) {
		breakdown.WeekendSurcharge = *fee
	}

	if fee := rules.HolidayFee(); fee != nil && quote.IsHoliday() {
		breakdown.HolidaySurcharge = *fee
	}

	if rule := rules.MinimumOrderSurcharge(); rule != nil &&
		quote.Subtotal().LessThan(rule.Threshold()) {
		breakdown.MinOrderSurcharge = rule.Surcharge()
	}

	breakdown.Total = breakdown.BaseFee.
		Add(breakdown.DistanceFee).
		Add(breakdown.PeakSurcharge).
		Add(breakdown.WeekendSurcharge).
		Add(breakdown.HolidaySurcharge).
		Add(breakdown.MinOrderSurcharge)

	return breakdown, nil
}

func isWeekend(t time.Time) bool {
	day := t.Weekday()
	return day == time.Saturday || day == time.Sunday
}
