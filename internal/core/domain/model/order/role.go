package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Role identifies the kind of staff member requesting a status transition.
// Each transition in the lifecycle table names the roles permitted to
// request it; a role outside that set is rejected with forbidden_role.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCook works the kitchen: accepts, prepares, and hands off orders.
	RoleCook

	// RoleDelivery is courier staff: takes assignment, drives, completes delivery.
	RoleDelivery

	// RoleManager may request every transition available to any role, plus
	// cancellation from any non-terminal status.
	RoleManager
)

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCook:     "cook",
		RoleDelivery: "delivery",
		RoleManager:  "manager",
	}
}

// RoleFromString parses a wire-format role string.
// Unrecognized strings fail loudly; they are never coerced to a default.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the lowercase wire name, or "unknown" for invalid values.
func (r Role) String() string {
	if str, ok := getValidRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
