package commands

import (
	"errors"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/pkg/guard"
)

var ErrCreateVehicleCommandIsNotConstructed = errors.New(
	"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
)

// CreateVehicleCommand represents a request to register a new vehicle.
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID         kernel.UUID
	brand             string
	model             string
	licensePlate      string
	capacity          float64
	nextMaintenanceKm int
	currentMileage    int

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand creates a command to register a new vehicle.
// Plate uniqueness is enforced by storage; capacity and mileage constraints
// by the vehicle aggregate.
func NewCreateVehicleCommand(
	vehicleID kernel.UUID,
	brand string,
	model string,
	licensePlate string,
	capacity float64,
	nextMaintenanceKm int,
	currentMileage int,
) (CreateVehicleCommand, error) {
	cmd := CreateVehicleCommand{
		brand:             brand,
		model:             model,
		licensePlate:      licensePlate,
		capacity:          capacity,
		nextMaintenanceKm: nextMaintenanceKm,
		currentMileage:    currentMileage,
		guard:             guard.NewConstructorGuard(),
	}

	if err := vehicleID.Validate(); err != nil {
		return CreateVehicleCommand{}, err
	}
	cmd.vehicleID = vehicleID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

// VehicleID returns the identifier the new vehicle will be stored under.
func (c CreateVehicleCommand) VehicleID() kernel.UUID { return c.vehicleID }

// Brand returns the vehicle brand.
func (c CreateVehicleCommand) Brand() string { return c.brand }

// Model returns the vehicle model.
func (c CreateVehicleCommand) Model() string { return c.model }

// LicensePlate returns the unique license plate.
func (c CreateVehicleCommand) LicensePlate() string { return c.licensePlate }

// Capacity returns the load capacity in kilograms.
func (c CreateVehicleCommand) Capacity() float64 { return c.capacity }

// NextMaintenanceKm returns the mileage of the next scheduled maintenance.
func (c CreateVehicleCommand) NextMaintenanceKm() int { return c.nextMaintenanceKm }

// CurrentMileage returns the odometer reading at registration.
func (c CreateVehicleCommand) CurrentMileage() int { return c.currentMileage }
