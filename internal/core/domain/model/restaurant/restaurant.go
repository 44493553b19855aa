package restaurant

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/pricing"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// Domain errors for restaurant operations.
var (
	// ErrNameIsRequired is returned when attempting to create a restaurant without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrRestaurantIsNotConstructed is returned when using an improperly initialized Restaurant.
	ErrRestaurantIsNotConstructed = errors.New(
		"Restaurant must be created via NewRestaurant constructor")
)

// defaultRuleSet is the pricing policy a new restaurant starts with: a flat
// zero fee in the restaurant's own timezone. Managers replace it through
// SaveFeeSettings once real pricing is decided.
func defaultRuleSet(timezone *time.Location) (pricing.RuleSet, error) {
	return pricing.NewRuleSet(pricing.RuleSetParams{
		Type:     pricing.RuleTypeFlat,
		BaseFee:  kernel.Money{},
		Timezone: timezone,
	})
}

// defaultRuleSetDraft is the document form of defaultRuleSet, kept alongside
// the committed rule set so the aggregate can always be persisted as a draft.
func defaultRuleSetDraft(timezone *time.Location) pricing.RuleSetDraft {
	draft := pricing.RuleSetDraft{
		Type:    pricing.RuleTypeFlat.String(),
		BaseFee: "0.00",
	}
	if timezone != nil {
		draft.Timezone = timezone.String()
	}
	return draft
}

// Restaurant is the aggregate root for a single restaurant's operational
// settings: contact details, the optional delivery zone and radius, and the
// committed delivery-fee rule set.
//
// Settings follow a committed-value model. Contact fields are validated on
// the way in, and the fee rule set is only ever replaced wholesale by a
// draft that parses cleanly, so readers never observe a half-edited
// configuration.
//
// Business rules:
//   - Restaurant must have a valid UUID and a non-empty name
//   - Phone and email must pass the field validators before being stored
//   - The delivery zone, when set, must be a GeoJSON geometry document
//   - The delivery radius, when set, must be strictly positive
//   - The committed rule set is always valid; a failed draft leaves it untouched
type Restaurant struct {
	// id uniquely identifies the restaurant
	id kernel.UUID
	// name is the human-readable restaurant name
	name string
	// phone is the normalized contact phone number, empty until set
	phone string
	// email is the contact email address, empty until set
	email string
	// deliveryZone is a raw GeoJSON geometry document, empty until set
	deliveryZone string
	// deliveryRadiusKm caps the delivery distance, nil until set
	deliveryRadiusKm *float64
	// ruleSet is the committed delivery-fee policy
	ruleSet pricing.RuleSet
	// ruleSetDraft is the document the committed rule set was parsed from
	ruleSetDraft pricing.RuleSetDraft
	// guard ensures the restaurant was properly constructed
	guard guard.ConstructorGuard
}

// NewRestaurant creates a new Restaurant with a default flat zero-fee rule
// set in the given timezone. A nil timezone defaults to UTC.
//
// Parameters:
//   - id: Unique identifier for the restaurant (must be valid UUID)
//   - name: Human-readable name (must be non-empty)
//   - timezone: The restaurant's local timezone for fee evaluation
//
// Returns:
//   - *Restaurant: A fully initialized restaurant ready for operations
//   - error: Validation error if any parameter is invalid
func NewRestaurant(id kernel.UUID, name string, timezone *time.Location) (*Restaurant, error) {
	restaurant := &Restaurant{
		guard: guard.NewConstructorGuard(),
	}

	ruleSet, err := defaultRuleSet(timezone)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(
		restaurant.setID(id),
		restaurant.setName(name),
	); err != nil {
		return nil, err
	}
	restaurant.ruleSet = ruleSet
	restaurant.ruleSetDraft = defaultRuleSetDraft(timezone)

	return restaurant, nil
}

// RestoreRestaurant reconstructs a Restaurant aggregate from persistent
// storage. The rule set arrives as the stored draft document and is parsed
// here; a document that no longer parses is a data integrity failure and is
// reported as an invalid-value error rather than silently replaced.
func RestoreRestaurant(
	id kernel.UUID,
	name string,
	phone string,
	email string,
	deliveryZone string,
	deliveryRadiusKm *float64,
	ruleSetDraft pricing.RuleSetDraft,
) (*Restaurant, error) {
	restaurant := &Restaurant{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		restaurant.setID(id),
		restaurant.setName(name),
	); err != nil {
		return nil, err
	}

	ruleSet, fieldErrors := ruleSetDraft.Parse()
	if len(fieldErrors) > 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"rule set document",
			errors.Join(toErrors(fieldErrors)...),
		)
	}
	restaurant.ruleSet = ruleSet
	restaurant.ruleSetDraft = ruleSetDraft

	restaurant.phone = phone
	restaurant.email = email
	restaurant.deliveryZone = deliveryZone
	restaurant.deliveryRadiusKm = deliveryRadiusKm

	return restaurant, nil
}

// IsEqual compares two restaurants for equality by their unique identifiers.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	if other == nil {
		return false
	}
	return r.id.IsEqual(other.id)
}

// Validate checks if the Restaurant was properly constructed.
// The zero value of Restaurant is invalid and will fail this validation.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// ID returns the unique identifier of the restaurant.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the restaurant's name.
func (r *Restaurant) Name() string {
	return r.name
}

// Phone returns the normalized contact phone number, or empty when unset.
func (r *Restaurant) Phone() string {
	return r.phone
}

// Email returns the contact email address, or empty when unset.
func (r *Restaurant) Email() string {
	return r.email
}

// DeliveryZone returns the raw GeoJSON delivery zone, or empty when unset.
func (r *Restaurant) DeliveryZone() string {
	return r.deliveryZone
}

// DeliveryRadiusKm returns the delivery radius cap, or nil when unset.
func (r *Restaurant) DeliveryRadiusKm() *float64 {
	return r.deliveryRadiusKm
}

// RuleSet returns the committed delivery-fee rule set.
func (r *Restaurant) RuleSet() pricing.RuleSet {
	return r.ruleSet
}

// RuleSetDocument returns the draft document the committed rule set was
// parsed from. Persistence stores this form and feeds it back to
// RestoreRestaurant.
func (r *Restaurant) RuleSetDocument() pricing.RuleSetDraft {
	return r.ruleSetDraft
}

// UpdateContactInfo validates and stores new contact details. Either field
// may be left blank to keep its current value. All validation failures are
// reported together; nothing is stored unless every provided field passes.
func (r *Restaurant) UpdateContactInfo(phone string, email string) error {
	var validationErrors []error

	if phone != "" {
		if err := ValidatePhone(phone); err != nil {
			validationErrors = append(validationErrors, err)
		}
	}
	if email != "" {
		if err := ValidateEmail(email); err != nil {
			validationErrors = append(validationErrors, err)
		}
	}
	if err := errors.Join(validationErrors...); err != nil {
		return err
	}

	if phone != "" {
		r.phone = NormalizePhone(phone)
	}
	if email != "" {
		r.email = email
	}
	return nil
}

// SetDeliveryZone validates and stores a GeoJSON delivery zone document.
func (r *Restaurant) SetDeliveryZone(zone string) error {
	if err := ValidateDeliveryZone(zone); err != nil {
		return err
	}
	r.deliveryZone = zone
	return nil
}

// SetDeliveryRadius validates and stores a delivery radius entered as text.
func (r *Restaurant) SetDeliveryRadius(raw string) error {
	radius, err := ValidateDeliveryRadius(raw)
	if err != nil {
		return err
	}
	r.deliveryRadiusKm = &radius
	return nil
}

// SaveFeeSettings parses the draft and, only when it validates as a whole,
// replaces the committed rule set. On field errors the committed rule set is
// left untouched and the errors are returned for per-field display.
func (r *Restaurant) SaveFeeSettings(draft pricing.RuleSetDraft) []pricing.FieldError {
	ruleSet, fieldErrors := draft.Parse()
	if len(fieldErrors) > 0 {
		return fieldErrors
	}

	r.ruleSet = ruleSet
	r.ruleSetDraft = draft
	return nil
}

// setID sets the restaurant's unique identifier with validation.
func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.id = id
	return nil
}

// setName sets the restaurant's name with validation.
func (r *Restaurant) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	r.name = name
	return nil
}

func toErrors(fieldErrors []pricing.FieldError) []error {
	out := make([]error, len(fieldErrors))
	for i, fe := range fieldErrors {
		out[i] = fe
	}
	return out
}
