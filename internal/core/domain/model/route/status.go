package route

import (
	"fmt"

	"logistrans/internal/pkg/errs"
)

// Status represents the lifecycle state of a route.
//
// State transitions, driven by the assigned driver:
//
//	Planned ──> InTransit ──> Completed
//
// Completed is terminal: a completed route has already freed its vehicle
// and driver, so re-running the completion cascade is never allowed.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Planned is the initial status when transport is assigned to an order.
	Planned

	// InTransit indicates the driver has started the route.
	InTransit

	// Completed indicates the route finished and its resources were freed.
	// This is a final state with no further transitions allowed.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Planned:   "Planned",
		InTransit: "InTransit",
		Completed: "Completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Planned:   "Planned",
		InTransit: "InTransit",
		Completed: "Completed",
	}
}

// StatusFromString parses the stored representation of a route status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"route status", fmt.Errorf("%q is not a valid route status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"route status", fmt.Errorf("%d is not a valid route status", s))
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

// IsActive reports whether a route in this status still binds its vehicle
// and driver. A vehicle or driver is unavailable if and only if it is bound
// to a route whose status is active.
func (s Status) IsActive() bool {
	return s == Planned || s == InTransit
}

// Start transitions the status to InTransit.
//
// Valid transitions:
//   - Planned -> InTransit (driver departs)
func (s Status) Start() (Status, error) {
	if s != Planned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"route status",
			fmt.Errorf("%s is not a valid status to start from", s),
		)
	}
	return InTransit, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Planned -> Completed (forced by a manual order edit to Delivered)
//   - InTransit -> Completed (driver arrives)
//
// A Completed route stays Completed; there is no transition out of it.
func (s Status) Complete() (Status, error) {
	if !s.IsActive() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"route status",
			fmt.Errorf("%s is not a valid status to complete from", s),
		)
	}
	return Completed, nil
}
