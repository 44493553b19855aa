package pricing

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// RuleType selects how the delivery fee scales.
type RuleType int

const (
	// RuleTypeUnknown represents an invalid or undefined rule type.
	RuleTypeUnknown RuleType = iota

	// RuleTypeFlat charges the base fee regardless of distance.
	RuleTypeFlat

	// RuleTypeDistanceBased charges the base fee plus a per-kilometre rate.
	RuleTypeDistanceBased
)

func getValidRuleTypeStrings() map[RuleType]string {
	//nolint:exhaustive // RuleTypeUnknown is intentionally excluded as it's invalid
	return map[RuleType]string{
		RuleTypeFlat:          "flat",
		RuleTypeDistanceBased: "distance_based",
	}
}

// RuleTypeFromString parses a wire-format rule type string.
// Unrecognized strings fail loudly; they are never coerced to a default.
func RuleTypeFromString(s string) (RuleType, error) {
	for ruleType, str := range getValidRuleTypeStrings() {
		if str == s {
			return ruleType, nil
		}
	}
	return RuleTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"rule type",
		fmt.Errorf("%q is not a valid rule type", s),
	)
}

// Validate checks if the RuleType value is valid.
func (t RuleType) Validate() error {
	if _, ok := getValidRuleTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"rule type",
			fmt.Errorf("%d is not a valid rule type", t),
		)
	}
	return nil
}

// String returns the lowercase wire name, or "unknown" for invalid values.
func (t RuleType) String() string {
	if str, ok := getValidRuleTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// ErrPeakWindowIsNotConstructed is returned when validating a zero-value PeakWindow.
var ErrPeakWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"peak window must be created via NewPeakWindow")

// PeakWindow is a recurring local time-of-day interval [start, end) during
// which an additional delivery fee applies. Windows may overlap or repeat;
// every matching window contributes its fee independently.
//
// A window whose start is later than its end wraps past midnight: 22:00-02:00
// matches 23:30 and 01:00 but not 12:00. A window with start equal to end has
// zero length and matches nothing.
type PeakWindow struct { //nolint:recvcheck //using for validation
	start         kernel.TimeOfDay
	end           kernel.TimeOfDay
	additionalFee kernel.Money
	guard         guard.ConstructorGuard
}

// NewPeakWindow creates a peak-hour window with validated bounds.
// start and end are independent valid times of day; start < end is not
// required so overnight windows can wrap past midnight.
func NewPeakWindow(start kernel.TimeOfDay, end kernel.TimeOfDay, additionalFee kernel.Money) (PeakWindow, error) {
	if err := errors.Join(start.Validate(), end.Validate()); err != nil {
		return PeakWindow{}, err
	}
	return PeakWindow{
		start:         start,
		end:           end,
		additionalFee: additionalFee,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the PeakWindow was created through its constructor.
func (w PeakWindow) Validate() error {
	return w.guard.Validate(ErrPeakWindowIsNotConstructed)
}

// Start returns the inclusive lower bound of the window.
func (w PeakWindow) Start() kernel.TimeOfDay {
	return w.start
}

// End returns the exclusive upper bound of the window.
func (w PeakWindow) End() kernel.TimeOfDay {
	return w.end
}

// AdditionalFee returns the fee added when an order falls inside the window.
func (w PeakWindow) AdditionalFee() kernel.Money {
	return w.additionalFee
}

// Contains reports whether the given wall-clock time falls inside the
// window's [start, end) interval, wrapping past midnight when start > end.
func (w PeakWindow) Contains(t kernel.TimeOfDay) bool {
	s := w.start.MinutesFromMidnight()
	e := w.end.MinutesFromMidnight()
	m := t.MinutesFromMidnight()

	switch {
	case s < e:
		return m >= s && m < e
	case s > e:
		return m >= s || m < e
	default:
		return false
	}
}

// ErrSurchargeIsNotConstructed is returned when validating a zero-value MinimumOrderSurcharge.
var ErrSurchargeIsNotConstructed = errs.NewValueIsRequiredError(
	"minimum order surcharge must be created via NewMinimumOrderSurcharge")

// MinimumOrderSurcharge adds a fixed surcharge to orders whose subtotal is
// strictly below the threshold.
type MinimumOrderSurcharge struct {
	threshold kernel.Money
	surcharge kernel.Money
	guard     guard.ConstructorGuard
}

// NewMinimumOrderSurcharge creates a minimum-order surcharge rule.
func NewMinimumOrderSurcharge(threshold kernel.Money, surcharge kernel.Money) (MinimumOrderSurcharge, error) {
	return MinimumOrderSurcharge{
		threshold: threshold,
		surcharge: surcharge,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the surcharge was created through its constructor.
func (s MinimumOrderSurcharge) Validate() error {
	return s.guard.Validate(ErrSurchargeIsNotConstructed)
}

// Threshold returns the subtotal below which the surcharge applies.
func (s MinimumOrderSurcharge) Threshold() kernel.Money {
	return s.threshold
}

// Surcharge returns the amount added below the threshold.
func (s MinimumOrderSurcharge) Surcharge() kernel.Money {
	return s.surcharge
}

// ErrRuleSetIsNotConstructed is returned when validating a zero-value RuleSet.
var ErrRuleSetIsNotConstructed = errs.NewValueIsRequiredError(
	"rule set must be created via NewRuleSet")

// RuleSet is a restaurant's validated delivery-pricing policy: flat or
// distance-based, with optional peak-hour, weekend, holiday, free-delivery,
// and minimum-order modifiers.
//
// RuleSet is an immutable value object. Editing happens on a RuleSetDraft;
// only a draft that parses cleanly replaces the committed RuleSet, so a
// half-edited policy is never visible to the fee calculator.
//
// Distance fields (per-km fee, radius cap) are only meaningful for
// distance-based rule sets. A flat rule set may still carry them — they are
// simply never evaluated, so stray values left over from switching the type
// never cause an error.
type RuleSet struct { //nolint:recvcheck //using for validation
	ruleType              RuleType
	baseFee               kernel.Money
	perKmFee              *kernel.Money
	maxDistanceKm         *float64
	freeDeliveryAbove     *kernel.Money
	peakWindows           []PeakWindow
	weekendFee            *kernel.Money
	holidayFee            *kernel.Money
	minimumOrderSurcharge *MinimumOrderSurcharge
	timezone              *time.Location
	guard                 guard.ConstructorGuard
}

// RuleSetParams carries the inputs for NewRuleSet. Pointer fields are
// optional; nil means the modifier is absent, which is distinct from zero.
type RuleSetParams struct {
	Type                  RuleType
	BaseFee               kernel.Money
	PerKmFee              *kernel.Money
	MaxDistanceKm         *float64
	FreeDeliveryAbove     *kernel.Money
	PeakWindows           []PeakWindow
	WeekendFee            *kernel.Money
	HolidayFee            *kernel.Money
	MinimumOrderSurcharge *MinimumOrderSurcharge

	// Timezone is the restaurant's local timezone for weekend and peak-hour
	// determination. Nil defaults to UTC.
	Timezone *time.Location
}

// NewRuleSet creates a validated delivery-fee rule set.
//
// Validation rules:
//   - Type must be flat or distance_based
//   - MaxDistanceKm, when present, must be strictly positive
//   - every peak window must be constructor-built
//   - the minimum-order surcharge, when present, must be constructor-built
//
// Monetary fields are kernel.Money values and therefore already known to be
// non-negative; negative amounts are rejected where the money is parsed.
func NewRuleSet(params RuleSetParams) (RuleSet, error) {
	rs := RuleSet{
		ruleType:              params.Type,
		baseFee:               params.BaseFee,
		perKmFee:              params.PerKmFee,
		freeDeliveryAbove:     params.FreeDeliveryAbove,
		weekendFee:            params.WeekendFee,
		holidayFee:            params.HolidayFee,
		minimumOrderSurcharge: params.MinimumOrderSurcharge,
		timezone:              params.Timezone,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := rs.ruleType.Validate(); err != nil {
		return RuleSet{}, err
	}

	if params.MaxDistanceKm != nil {
		if *params.MaxDistanceKm <= 0 {
			return RuleSet{}, errs.NewValueIsInvalidErrorWithCause(
				"maxDistanceKm",
				fmt.Errorf("%g is not greater than 0", *params.MaxDistanceKm),
			)
		}
		rs.maxDistanceKm = params.MaxDistanceKm
	}

	for _, window := range params.PeakWindows {
		if err := window.Validate(); err != nil {
			return RuleSet{}, err
		}
	}
	rs.peakWindows = append([]PeakWindow(nil), params.PeakWindows...)

	if params.MinimumOrderSurcharge != nil {
		if err := params.MinimumOrderSurcharge.Validate(); err != nil {
			return RuleSet{}, err
		}
	}

	if rs.timezone == nil {
		rs.timezone = time.UTC
	}

	return rs, nil
}

// Validate checks that the RuleSet was created through its constructor.
func (r RuleSet) Validate() error {
	return r.guard.Validate(ErrRuleSetIsNotConstructed)
}

// Type returns whether the rule set is flat or distance-based.
func (r RuleSet) Type() RuleType {
	return r.ruleType
}

// BaseFee returns the flat fee, or the base of a distance fee.
func (r RuleSet) BaseFee() kernel.Money {
	return r.baseFee
}

// PerKmFee returns the per-kilometre rate, or nil when absent.
func (r RuleSet) PerKmFee() *kernel.Money {
	return r.perKmFee
}

// MaxDistanceKm returns the delivery-radius cap, or nil when absent.
func (r RuleSet) MaxDistanceKm() *float64 {
	return r.maxDistanceKm
}

// FreeDeliveryAbove returns the subtotal threshold at or above which the
// delivery fee is waived, or nil when absent.
func (r RuleSet) FreeDeliveryAbove() *kernel.Money {
	return r.freeDeliveryAbove
}

// PeakWindows returns the configured peak-hour windows.
func (r RuleSet) PeakWindows() []PeakWindow {
	return r.peakWindows
}

// WeekendFee returns the Saturday/Sunday surcharge, or nil when absent.
func (r RuleSet) WeekendFee() *kernel.Money {
	return r.weekendFee
}

// HolidayFee returns the holiday surcharge, or nil when absent.
func (r RuleSet) HolidayFee() *kernel.Money {
	return r.holidayFee
}

// MinimumOrderSurcharge returns the small-order surcharge rule, or nil when absent.
func (r RuleSet) MinimumOrderSurcharge() *MinimumOrderSurcharge {
	return r.minimumOrderSurcharge
}

// Timezone returns the restaurant's local timezone. Never nil.
func (r RuleSet) Timezone() *time.Location {
	return r.timezone
}
