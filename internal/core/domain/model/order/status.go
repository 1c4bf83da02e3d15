package order

import (
	"fmt"

	"logistrans/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The nominal progression is linear:
//
//	Created ──> Assigned ──> InTransit ──> Delivered
//
// Created orders have no transport bound. Assigned orders have an active
// route. Delivered is terminal and is only reached through the delivery
// completion cascade, which also frees the bound vehicle and driver.
//
// A logistician may additionally move an order to any valid status through
// the edit operation; that path is permissive by design (the edit screen is
// a correction tool) but still closed over this enumeration — arbitrary
// strings are rejected at the boundary.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is registered.
	// Orders in this status are waiting for transport assignment.
	Created

	// Assigned indicates transport (vehicle and driver) has been bound
	// to the order via a planned route.
	Assigned

	// InTransit indicates the assigned driver has started the route.
	InTransit

	// Delivered indicates the cargo reached its destination.
	// This is a final state with no further transitions allowed.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Assigned:  "Assigned",
		InTransit: "InTransit",
		Delivered: "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "Created",
		Assigned:  "Assigned",
		InTransit: "InTransit",
		Delivered: "Delivered",
	}
}

// StatusFromString parses the stored representation of an order status.
// Returns an error for anything outside the closed set.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"order status", fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, Assigned, InTransit, Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Created -> Assigned (transport bound at or after creation)
//
// Returns:
//   - (Assigned, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Assign() (Status, error) {
	if s != Created {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to assign transport from", s),
		)
	}
	return Assigned, nil
}

// Deliver transitions the status to Delivered.
//
// Both delivery entry points (a driver completing the route, a logistician
// editing the order to Delivered) funnel through this transition. Every
// valid non-terminal status may reach Delivered; re-delivering is rejected.
func (s Status) Deliver() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s == Delivered {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("order is already %s", Delivered),
		)
	}
	return Delivered, nil
}
