package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrGetFeeQuoteQueryIsNotConstructed = errors.New(
		"GetFeeQuoteQuery must be created via NewGetFeeQuoteQuery constructor",
	)
)

// GetFeeQuoteQuery requests an itemized delivery-fee quote for a cart
// against a restaurant's committed rule set. It is a pure read: nothing is
// reserved or persisted, and the quote reflects the rule set at the moment
// of the call.
type GetFeeQuoteQuery struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	subtotal     kernel.Money
	distanceKm   float64
	isHoliday    bool

	guard guard.ConstructorGuard
}

// NewGetFeeQuoteQuery creates a fee-quote query.
// distanceKm must be non-negative; pass 0 for pickup carts.
func NewGetFeeQuoteQuery(
	restaurantID kernel.UUID,
	subtotal kernel.Money,
	distanceKm float64,
	isHoliday bool,
) (GetFeeQuoteQuery, error) {
	query := GetFeeQuoteQuery{
		subtotal:  subtotal,
		isHoliday: isHoliday,
		guard:     guard.NewConstructorGuard(),
	}

	if err := restaurantID.Validate(); err != nil {
		return GetFeeQuoteQuery{}, err
	}
	query.restaurantID = restaurantID

	if distanceKm < 0 {
		return GetFeeQuoteQuery{}, errs.NewValueIsInvalidError("distanceKm")
	}
	query.distanceKm = distanceKm

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetFeeQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetFeeQuoteQueryIsNotConstructed)
}

// RestaurantID returns the identifier of the restaurant quoting the fee.
func (q GetFeeQuoteQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// Subtotal returns the cart subtotal.
func (q GetFeeQuoteQuery) Subtotal() kernel.Money {
	return q.subtotal
}

// DistanceKm returns the delivery distance.
func (q GetFeeQuoteQuery) DistanceKm() float64 {
	return q.distanceKm
}

// IsHoliday reports whether the quote day is a holiday.
func (q GetFeeQuoteQuery) IsHoliday() bool {
	return q.isHoliday
}

// GetFeeQuoteQueryResponse is the itemized quote with every component as a
// canonical decimal string. Components that did not apply are "0.00".
type GetFeeQuoteQueryResponse struct {
	BaseFee           string
	DistanceFee       string
	PeakSurcharge     string
	WeekendSurcharge  string
	HolidaySurcharge  string
	MinOrderSurcharge string
	Total             string
	Waived            bool
}
