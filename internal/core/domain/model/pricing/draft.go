package pricing

import (
	"fmt"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// FieldError is a single validation failure attributed to a draft field.
// Field uses the wire name of the offending field; nested peak windows are
// addressed by index, e.g. "peak_windows[1].start".
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PeakWindowDraft is the unvalidated wire form of a peak-hour window.
type PeakWindowDraft struct {
	Start         string `json:"start"`
	End           string `json:"end"`
	AdditionalFee string `json:"additional_fee"`
}

// SurchargeDraft is the unvalidated wire form of a minimum-order surcharge.
type SurchargeDraft struct {
	Threshold string `json:"threshold"`
	Surcharge string `json:"surcharge"`
}

// RuleSetDraft is the unvalidated, string-typed form of a delivery-fee rule
// set as it arrives from a settings form or API payload. All scalar fields
// are strings so that user input is preserved verbatim until Parse runs;
// a blank string means the field was left empty, which Parse treats as
// absent for optional fields.
type RuleSetDraft struct {
	Type                  string            `json:"type"`
	BaseFee               string            `json:"base_fee"`
	PerKmFee              string            `json:"per_km_fee,omitempty"`
	MaxDistanceKm         string            `json:"max_distance_km,omitempty"`
	FreeDeliveryAbove     string            `json:"free_delivery_above,omitempty"`
	WeekendFee            string            `json:"weekend_fee,omitempty"`
	HolidayFee            string            `json:"holiday_fee,omitempty"`
	Timezone              string            `json:"timezone,omitempty"`
	PeakWindows           []PeakWindowDraft `json:"peak_windows,omitempty"`
	MinimumOrderSurcharge *SurchargeDraft   `json:"minimum_order_surcharge,omitempty"`
}

// Parse validates the draft as a whole and builds the committed RuleSet.
//
// All fields are checked before returning, so the caller gets every field
// error in one pass rather than fixing them one at a time. On any error the
// returned RuleSet is the zero value and must not be used; the previously
// committed rule set stays in effect.
func (d RuleSetDraft) Parse() (RuleSet, []FieldError) {
	var fieldErrors []FieldError
	fail := func(field string, format string, args ...any) {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   field,
			Message: fmt.Sprintf(format, args...),
		})
	}

	params := RuleSetParams{}

	if strings.TrimSpace(d.Type) == "" {
		fail("type", "rule type is required")
	} else if ruleType, err := RuleTypeFromString(d.Type); err != nil {
		fail("type", "%q is not a valid rule type, expected flat or distance_based", d.Type)
	} else {
		params.Type = ruleType
	}

	if strings.TrimSpace(d.BaseFee) == "" {
		fail("base_fee", "base fee is required")
	} else if baseFee, err := kernel.MoneyFromString(d.BaseFee); err != nil {
		fail("base_fee", "%q is not a valid non-negative amount", d.BaseFee)
	} else {
		params.BaseFee = baseFee
	}

	params.PerKmFee = parseOptionalMoney(d.PerKmFee, "per_km_fee", fail)
	params.FreeDeliveryAbove = parseOptionalMoney(d.FreeDeliveryAbove, "free_delivery_above", fail)
	params.WeekendFee = parseOptionalMoney(d.WeekendFee, "weekend_fee", fail)
	params.HolidayFee = parseOptionalMoney(d.HolidayFee, "holiday_fee", fail)

	if strings.TrimSpace(d.MaxDistanceKm) != "" {
		km, err := parsePositiveNumber(d.MaxDistanceKm)
		if err != nil {
			fail("max_distance_km", "%q is not a valid positive number", d.MaxDistanceKm)
		} else {
			params.MaxDistanceKm = &km
		}
	}

	for i, windowDraft := range d.PeakWindows {
		window, ok := parsePeakWindow(i, windowDraft, fail)
		if ok {
			params.PeakWindows = append(params.PeakWindows, window)
		}
	}

	if d.MinimumOrderSurcharge != nil {
		threshold := parseRequiredMoney(
			d.MinimumOrderSurcharge.Threshold, "minimum_order_surcharge.threshold", fail)
		surcharge := parseRequiredMoney(
			d.MinimumOrderSurcharge.Surcharge, "minimum_order_surcharge.surcharge", fail)
		if threshold != nil && surcharge != nil {
			rule, err := NewMinimumOrderSurcharge(*threshold, *surcharge)
			if err != nil {
				fail("minimum_order_surcharge", "%v", err)
			} else {
				params.MinimumOrderSurcharge = &rule
			}
		}
	}

	if strings.TrimSpace(d.Timezone) != "" {
		location, err := time.LoadLocation(d.Timezone)
		if err != nil {
			fail("timezone", "%q is not a valid IANA timezone name", d.Timezone)
		} else {
			params.Timezone = location
		}
	}

	if len(fieldErrors) > 0 {
		return RuleSet{}, fieldErrors
	}

	ruleSet, err := NewRuleSet(params)
	if err != nil {
		return RuleSet{}, []FieldError{{Field: "rule_set", Message: err.Error()}}
	}
	return ruleSet, nil
}

func parsePeakWindow(index int, d PeakWindowDraft, fail func(string, string, ...any)) (PeakWindow, bool) {
	prefix := fmt.Sprintf("peak_windows[%d]", index)

	start, startErr := kernel.TimeOfDayFromString(d.Start)
	if startErr != nil {
		fail(prefix+".start", "%q is not a valid HH:MM time", d.Start)
	}
	end, endErr := kernel.TimeOfDayFromString(d.End)
	if endErr != nil {
		fail(prefix+".end", "%q is not a valid HH:MM time", d.End)
	}

	fee := parseRequiredMoney(d.AdditionalFee, prefix+".additional_fee", fail)

	if startErr != nil || endErr != nil || fee == nil {
		return PeakWindow{}, false
	}

	window, err := NewPeakWindow(start, end, *fee)
	if err != nil {
		fail(prefix, "%v", err)
		return PeakWindow{}, false
	}
	return window, true
}

func parseOptionalMoney(raw string, field string, fail func(string, string, ...any)) *kernel.Money {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return parseRequiredMoney(raw, field, fail)
}

func parseRequiredMoney(raw string, field string, fail func(string, string, ...any)) *kernel.Money {
	money, err := kernel.MoneyFromString(raw)
	if err != nil {
		fail(field, "%q is not a valid non-negative amount", raw)
		return nil
	}
	return &money
}

// parsePositiveNumber accepts both "." and "," as the decimal separator,
// matching the money parser's tolerance for localized input.
func parsePositiveNumber(raw string) (float64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return 0, err
	}
	value := d.InexactFloat64()
	if value <= 0 {
		return 0, fmt.Errorf("%g is not greater than 0", value)
	}
	return value, nil
}
