package vehicle

import (
	"fmt"

	"logistrans/internal/pkg/errs"
)

// Status represents the availability state of a vehicle.
//
// Free vehicles can be claimed for a route; Assigned and InTransit vehicles
// are bound to an active route; UnderMaintenance vehicles are out of the
// rotation entirely. Status is mutated only by the lifecycle transitions,
// never directly by end users.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Free means the vehicle is available for assignment.
	Free

	// Assigned means the vehicle is bound to a planned route.
	Assigned

	// InTransit means the vehicle is out on a started route.
	InTransit

	// UnderMaintenance means the vehicle is withdrawn for servicing.
	UnderMaintenance
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "Unknown",
		Free:             "Free",
		Assigned:         "Assigned",
		InTransit:        "InTransit",
		UnderMaintenance: "UnderMaintenance",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Free:             "Free",
		Assigned:         "Assigned",
		InTransit:        "InTransit",
		UnderMaintenance: "UnderMaintenance",
	}
}

// StatusFromString parses the stored representation of a vehicle status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"vehicle status", fmt.Errorf("%q is not a valid vehicle status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicle status", fmt.Errorf("%d is not a valid vehicle status", s))
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
