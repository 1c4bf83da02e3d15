// Package vehicle contains the Vehicle aggregate: a truck in the fleet with
// its identification, capacity, maintenance metadata, and availability
// status. A vehicle is Assigned if and only if it is bound to an active
// route; claiming and freeing happen exclusively through the lifecycle
// transitions.
package vehicle

import (
	"errors"
	"fmt"
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/pkg/errs"
	"logistrans/internal/pkg/guard"
)

// Domain errors for vehicle operations.
var (
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
	// ErrLicensePlateIsRequired is returned when creating a vehicle without a plate.
	ErrLicensePlateIsRequired = errs.NewValueIsRequiredError("license plate")
	// ErrCapacityIsInvalid is returned when the capacity is not positive.
	ErrCapacityIsInvalid = errs.NewValueIsInvalidError("capacity")
)

// Vehicle is the aggregate root for a fleet truck.
//
// Vehicle invariants:
//   - License plate is unique across the fleet (enforced by persistence)
//   - Capacity is strictly positive
//   - Status belongs to the closed Status enumeration and is mutated only
//     through Assign/MarkInTransit/Release/SendToMaintenance
type Vehicle struct {
	id                  kernel.UUID
	brand               string
	model               string
	licensePlate        string
	capacity            float64
	status              Status
	lastMaintenanceDate *time.Time
	nextMaintenanceKm   int
	currentMileage      int

	guard guard.ConstructorGuard
}

// NewVehicle creates a Vehicle in Free status.
//
// Parameters:
//   - id: unique identifier (must be valid UUID)
//   - brand, model: manufacturer and model designation
//   - licensePlate: registration plate (must be non-empty; globally unique)
//   - capacity: load capacity in tons (must be positive)
//   - nextMaintenanceKm, currentMileage: odometer bookkeeping
func NewVehicle(
	id kernel.UUID,
	brand string,
	model string,
	licensePlate string,
	capacity float64,
	nextMaintenanceKm int,
	currentMileage int,
) (*Vehicle, error) {
	vehicle := &Vehicle{
		brand:             brand,
		model:             model,
		status:            Free,
		nextMaintenanceKm: nextMaintenanceKm,
		currentMileage:    currentMileage,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vehicle.setID(id),
		vehicle.setLicensePlate(licensePlate),
		vehicle.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// RestoreVehicle reconstructs a Vehicle aggregate from persistent storage.
func RestoreVehicle(
	id kernel.UUID,
	brand string,
	model string,
	licensePlate string,
	capacity float64,
	status Status,
	lastMaintenanceDate *time.Time,
	nextMaintenanceKm int,
	currentMileage int,
) (*Vehicle, error) {
	vehicle := &Vehicle{
		brand:               brand,
		model:               model,
		lastMaintenanceDate: lastMaintenanceDate,
		nextMaintenanceKm:   nextMaintenanceKm,
		currentMileage:      currentMileage,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vehicle.setID(id),
		vehicle.setLicensePlate(licensePlate),
		vehicle.setCapacity(capacity),
		vehicle.setStatus(status),
	); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// Validate ensures the Vehicle instance was properly constructed.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Brand returns the manufacturer name.
func (v *Vehicle) Brand() string {
	return v.brand
}

// Model returns the model designation.
func (v *Vehicle) Model() string {
	return v.model
}

// LicensePlate returns the unique registration plate.
func (v *Vehicle) LicensePlate() string {
	return v.licensePlate
}

// Capacity returns the load capacity in tons.
func (v *Vehicle) Capacity() float64 {
	return v.capacity
}

// Status returns the current availability status.
func (v *Vehicle) Status() Status {
	return v.status
}

// LastMaintenanceDate returns when the vehicle was last serviced, or nil.
func (v *Vehicle) LastMaintenanceDate() *time.Time {
	return v.lastMaintenanceDate
}

// NextMaintenanceKm returns the odometer reading at which the next service
// is due.
func (v *Vehicle) NextMaintenanceKm() int {
	return v.nextMaintenanceKm
}

// CurrentMileage returns the current odometer reading.
func (v *Vehicle) CurrentMileage() int {
	return v.currentMileage
}

// IsMaintenanceDue reports whether the vehicle has reached its maintenance
// threshold.
func (v *Vehicle) IsMaintenanceDue() bool {
	return v.nextMaintenanceKm > 0 && v.currentMileage >= v.nextMaintenanceKm
}

// Assign claims the vehicle for a route.
// Valid only from Free status; claiming a non-free vehicle is a conflict
// the caller must surface rather than overwrite.
func (v *Vehicle) Assign() error {
	if v.status != Free {
		return errs.NewResourceConflictErrorWithCause(
			"vehicle", v.id.String(),
			fmt.Errorf("status is %s, want %s", v.status, Free))
	}
	v.status = Assigned
	return nil
}

// MarkInTransit flags the vehicle as out on a started route.
// Valid only from Assigned status.
func (v *Vehicle) MarkInTransit() error {
	if v.status != Assigned {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicle status",
			fmt.Errorf("%s is not a valid status to depart from", v.status))
	}
	v.status = InTransit
	return nil
}

// Release returns the vehicle to the free pool after its route completes.
// Releasing an already-free vehicle is rejected: it means the completion
// cascade ran twice.
func (v *Vehicle) Release() error {
	if v.status != Assigned && v.status != InTransit {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicle status",
			fmt.Errorf("%s is not a valid status to release from", v.status))
	}
	v.status = Free
	return nil
}

// SendToMaintenance withdraws a free vehicle for servicing.
func (v *Vehicle) SendToMaintenance(at time.Time) error {
	if v.status != Free {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicle status",
			fmt.Errorf("%s is not a valid status to send to maintenance from", v.status))
	}
	v.status = UnderMaintenance
	v.lastMaintenanceDate = &at
	return nil
}

// ReturnFromMaintenance puts a serviced vehicle back into the free pool and
// records the next maintenance threshold.
func (v *Vehicle) ReturnFromMaintenance(nextMaintenanceKm int) error {
	if v.status != UnderMaintenance {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicle status",
			fmt.Errorf("%s is not a valid status to return from maintenance from", v.status))
	}
	v.status = Free
	v.nextMaintenanceKm = nextMaintenanceKm
	return nil
}

// AddMileage records distance driven on a completed route.
func (v *Vehicle) AddMileage(km int) error {
	if km < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"mileage", fmt.Errorf("%d is negative", km))
	}
	v.currentMileage += km
	return nil
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setLicensePlate(plate string) error {
	if plate == "" {
		return ErrLicensePlateIsRequired
	}
	v.licensePlate = plate
	return nil
}

func (v *Vehicle) setCapacity(capacity float64) error {
	if capacity <= 0 {
		return ErrCapacityIsInvalid
	}
	v.capacity = capacity
	return nil
}

func (v *Vehicle) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	v.status = status
	return nil
}
