package restaurant

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	intlPhoneMinDigits  = 10
	intlPhoneMaxDigits  = 15
	domesticPhoneDigits = 10
)

var validate = validator.New()

// coordinateGeometryTypes are the GeoJSON geometry type names that carry a
// coordinates array. GeometryCollection, Feature and FeatureCollection are
// handled separately since they nest other objects instead.
var coordinateGeometryTypes = map[string]bool{
	"Point":           true,
	"MultiPoint":      true,
	"LineString":      true,
	"MultiLineString": true,
	"Polygon":         true,
	"MultiPolygon":    true,
}

// NormalizePhone strips common formatting characters (spaces, dashes, dots,
// parentheses) from a phone number, preserving a single leading plus sign.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(raw) {
		switch {
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidatePhone checks a contact phone number. After normalization, an
// international number (leading plus) must have 10 to 15 digits; a domestic
// number must have exactly 10 digits, or 11 with a leading 1.
func ValidatePhone(raw string) error {
	normalized := NormalizePhone(raw)
	if normalized == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	international := strings.HasPrefix(normalized, "+")
	digits := strings.TrimPrefix(normalized, "+")
	if digits == "" {
		return errs.NewValueIsInvalidError("phone")
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return errs.NewValueIsInvalidErrorWithCause(
				"phone",
				fmt.Errorf("%q contains non-digit characters", raw),
			)
		}
	}

	if international {
		if len(digits) < intlPhoneMinDigits || len(digits) > intlPhoneMaxDigits {
			return errs.NewValueIsOutOfRangeError(
				"phone digits", len(digits), intlPhoneMinDigits, intlPhoneMaxDigits)
		}
		return nil
	}

	if len(digits) == domesticPhoneDigits {
		return nil
	}
	if len(digits) == domesticPhoneDigits+1 && digits[0] == '1' {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"phone",
		fmt.Errorf("domestic numbers need 10 digits, or 11 with a leading 1, got %d", len(digits)),
	)
}

// ValidateEmail checks a contact email address.
func ValidateEmail(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if err := validate.Var(raw, "email"); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"email",
			fmt.Errorf("%q is not a valid email address", raw),
		)
	}
	return nil
}

// ValidateDeliveryZone checks that raw is a GeoJSON document: a JSON object
// whose "type" is a standard geometry, feature, or collection name. Geometry
// types must carry a "coordinates" array; GeometryCollection needs a
// "geometries" array and FeatureCollection a "features" array. The coordinate
// values themselves are not range-checked; the zone is opaque to the domain
// and only rendered back to mapping clients.
func ValidateDeliveryZone(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return errs.NewValueIsRequiredError("delivery zone")
	}

	var doc struct {
		Type        string          `json:"type"`
		Coordinates json.RawMessage `json:"coordinates"`
		Geometries  json.RawMessage `json:"geometries"`
		Features    json.RawMessage `json:"features"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("delivery zone", err)
	}

	switch {
	case doc.Type == "Feature":
		return nil
	case doc.Type == "FeatureCollection":
		if !isJSONArray(doc.Features) {
			return errs.NewValueIsInvalidErrorWithCause(
				"delivery zone",
				errors.New("feature collection requires a features array"),
			)
		}
		return nil
	case doc.Type == "GeometryCollection":
		if !isJSONArray(doc.Geometries) {
			return errs.NewValueIsInvalidErrorWithCause(
				"delivery zone",
				errors.New("geometry collection requires a geometries array"),
			)
		}
		return nil
	case coordinateGeometryTypes[doc.Type]:
		if !isJSONArray(doc.Coordinates) {
			return errs.NewValueIsInvalidErrorWithCause(
				"delivery zone",
				fmt.Errorf("%s requires a coordinates array", doc.Type),
			)
		}
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery zone",
			fmt.Errorf("%q is not a GeoJSON type", doc.Type),
		)
	}
}

// ValidateDeliveryRadius checks a delivery radius entered as text. Both "."
// and "," decimal separators are accepted; the value must be a strictly
// positive number.
func ValidateDeliveryRadius(raw string) (float64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if normalized == "" {
		return 0, errs.NewValueIsRequiredError("delivery radius")
	}

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("delivery radius", err)
	}

	value := d.InexactFloat64()
	if value <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"delivery radius",
			fmt.Errorf("%g is not greater than 0", value),
		)
	}
	return value, nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return strings.HasPrefix(trimmed, "[")
}
