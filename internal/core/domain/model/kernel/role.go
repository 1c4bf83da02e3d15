package kernel

import (
	"fmt"

	"logistrans/internal/pkg/errs"
)

// Role identifies what a user is allowed to do in the system.
// It is a closed enumeration; values arriving from external sources
// (database, tokens, request bodies) must pass through RoleFromString
// or Validate before use.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleAdmin manages users and reads system-wide reports.
	RoleAdmin

	// RoleLogistician manages clients, orders, transport, and the warehouse.
	RoleLogistician

	// RoleDriver advances the routes assigned to them.
	RoleDriver
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:     "Unknown",
		RoleAdmin:       "Admin",
		RoleLogistician: "Logistician",
		RoleDriver:      "Driver",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleAdmin:       "Admin",
		RoleLogistician: "Logistician",
		RoleDriver:      "Driver",
	}
}

// RoleFromString parses the stored representation of a role.
// Returns an error for anything outside the closed set.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// Implements fmt.Stringer; safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// CanActFor reports whether a user holding this role may use screens gated
// for the required role. Admin inherits the logistician surface.
func (r Role) CanActFor(required Role) bool {
	if r == required {
		return true
	}
	return r == RoleAdmin && required == RoleLogistician
}
