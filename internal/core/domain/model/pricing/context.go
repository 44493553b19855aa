package pricing

import (
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// ErrQuoteContextIsNotConstructed is returned when validating a zero-value QuoteContext.
var ErrQuoteContextIsNotConstructed = errs.NewValueIsRequiredError(
	"quote context must be created via NewQuoteContext")

// QuoteContext carries the order-side facts a fee quote is computed from:
// the cart subtotal, the delivery distance, the instant the order is placed
// (or quoted) and whether that day is a holiday for the restaurant.
//
// The holiday flag is an input, not a derivation: which days count as
// holidays is decided by the caller (a holiday calendar, a manual override),
// never inferred here from the date.
type QuoteContext struct {
	subtotal   kernel.Money
	distanceKm float64
	orderedAt  time.Time
	isHoliday  bool
	guard      guard.ConstructorGuard
}

// NewQuoteContext creates a validated fee-quote context.
// distanceKm must be non-negative and orderedAt must be a real instant.
func NewQuoteContext(
	subtotal kernel.Money,
	distanceKm float64,
	orderedAt time.Time,
	isHoliday bool,
) (QuoteContext, error) {
	if distanceKm < 0 {
		return QuoteContext{}, errs.NewValueIsInvalidErrorWithCause(
			"distanceKm",
			fmt.Errorf("%g is negative", distanceKm),
		)
	}
	if orderedAt.IsZero() {
		return QuoteContext{}, errs.NewValueIsRequiredError("orderedAt")
	}

	return QuoteContext{
		subtotal:   subtotal,
		distanceKm: distanceKm,
		orderedAt:  orderedAt,
		isHoliday:  isHoliday,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the QuoteContext was created through its constructor.
func (c QuoteContext) Validate() error {
	return c.guard.Validate(ErrQuoteContextIsNotConstructed)
}

// Subtotal returns the cart subtotal before any delivery fee.
func (c QuoteContext) Subtotal() kernel.Money {
	return c.subtotal
}

// DistanceKm returns the delivery distance in kilometres.
func (c QuoteContext) DistanceKm() float64 {
	return c.distanceKm
}

// OrderedAt returns the instant the quote is evaluated for.
func (c QuoteContext) OrderedAt() time.Time {
	return c.orderedAt
}

// IsHoliday reports whether the order day is a holiday.
func (c QuoteContext) IsHoliday() bool {
	return c.isHoliday
}
