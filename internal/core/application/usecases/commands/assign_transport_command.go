package commands

import (
	"errors"
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/pkg/guard"
)

var ErrAssignTransportCommandIsNotConstructed = errors.New(
	"AssignTransportCommand must be created via NewAssignTransportCommand constructor",
)

// AssignTransportCommand represents a request to bind a vehicle and a driver
// to an existing order and plan its route.
type AssignTransportCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	vehicleID        kernel.UUID
	driverID         kernel.UUID
	plannedStartTime *time.Time
	plannedEndTime   *time.Time
	assignedBy       kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignTransportCommand creates a command to assign transport to an order.
func NewAssignTransportCommand(
	orderID kernel.UUID,
	vehicleID kernel.UUID,
	driverID kernel.UUID,
	plannedStartTime *time.Time,
	plannedEndTime *time.Time,
	assignedBy kernel.UUID,
) (AssignTransportCommand, error) {
	cmd := AssignTransportCommand{
		plannedStartTime: plannedStartTime,
		plannedEndTime:   plannedEndTime,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setVehicleID(vehicleID),
		cmd.setDriverID(driverID),
		cmd.setAssignedBy(assignedBy),
	); err != nil {
		return AssignTransportCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignTransportCommand) Validate() error {
	return c.guard.Validate(ErrAssignTransportCommandIsNotConstructed)
}

// OrderID returns the order to assign transport to.
func (c AssignTransportCommand) OrderID() kernel.UUID { return c.orderID }

// VehicleID returns the vehicle being claimed.
func (c AssignTransportCommand) VehicleID() kernel.UUID { return c.vehicleID }

// DriverID returns the driver being claimed.
func (c AssignTransportCommand) DriverID() kernel.UUID { return c.driverID }

// PlannedStartTime returns the planned route start, or nil.
func (c AssignTransportCommand) PlannedStartTime() *time.Time { return c.plannedStartTime }

// PlannedEndTime returns the planned route end, or nil.
func (c AssignTransportCommand) PlannedEndTime() *time.Time { return c.plannedEndTime }

// AssignedBy returns the user performing the assignment.
func (c AssignTransportCommand) AssignedBy() kernel.UUID { return c.assignedBy }

func (c *AssignTransportCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignTransportCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	c.vehicleID = vehicleID
	return nil
}

func (c *AssignTransportCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *AssignTransportCommand) setAssignedBy(assignedBy kernel.UUID) error {
	if err := assignedBy.Validate(); err != nil {
		return err
	}
	c.assignedBy = assignedBy
	return nil
}
