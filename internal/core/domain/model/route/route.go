// Package route contains the Route aggregate: the transport leg created when
// a vehicle and driver are assigned to an order. One route is materially
// active per order; the route's status drives the availability of the bound
// vehicle and driver.
package route

import (
	"errors"
	"fmt"
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/pkg/errs"
	"logistrans/internal/pkg/guard"
)

// Domain errors for route operations.
var (
	// ErrRouteIsNotConstructed is returned when using an improperly initialized Route.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")
	// ErrEndpointIsRequired is returned when a start or end point is missing.
	ErrEndpointIsRequired = errs.NewValueIsRequiredError("route endpoint")
)

// Route binds an order to the vehicle and driver transporting it.
//
// Route invariants:
//   - Order, driver, and vehicle references are immutable once assigned
//   - Status transitions follow Planned -> InTransit -> Completed
//   - Actual start/end times are stamped exactly once, by the transition
//     that causes them
//   - Completed routes no longer bind their vehicle and driver
type Route struct {
	id               kernel.UUID
	orderID          kernel.UUID
	driverID         kernel.UUID
	vehicleID        kernel.UUID
	startPoint       string
	endPoint         string
	plannedStartTime *time.Time
	plannedEndTime   *time.Time
	actualStartTime  *time.Time
	actualEndTime    *time.Time
	status           Status
	distanceKm       *float64
	notes            string

	guard guard.ConstructorGuard
}

// NewRoute creates a Route in Planned status for the given order, driver,
// and vehicle. Endpoints are copied from the order's addresses by the caller.
func NewRoute(
	id kernel.UUID,
	orderID kernel.UUID,
	driverID kernel.UUID,
	vehicleID kernel.UUID,
	startPoint string,
	endPoint string,
	plannedStartTime *time.Time,
	plannedEndTime *time.Time,
) (*Route, error) {
	route := &Route{
		status:           Planned,
		plannedStartTime: plannedStartTime,
		plannedEndTime:   plannedEndTime,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		route.setID(id),
		route.setOrderID(orderID),
		route.setDriverID(driverID),
		route.setVehicleID(vehicleID),
		route.setEndpoints(startPoint, endPoint),
	); err != nil {
		return nil, err
	}

	return route, nil
}

// RestoreRoute reconstructs a Route aggregate from persistent storage.
func RestoreRoute(
	id kernel.UUID,
	orderID kernel.UUID,
	driverID kernel.UUID,
	vehicleID kernel.UUID,
	startPoint string,
	endPoint string,
	plannedStartTime *time.Time,
	plannedEndTime *time.Time,
	actualStartTime *time.Time,
	actualEndTime *time.Time,
	status Status,
	distanceKm *float64,
	notes string,
) (*Route, error) {
	route := &Route{
		plannedStartTime: plannedStartTime,
		plannedEndTime:   plannedEndTime,
		actualStartTime:  actualStartTime,
		actualEndTime:    actualEndTime,
		distanceKm:       distanceKm,
		notes:            notes,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		route.setID(id),
		route.setOrderID(orderID),
		route.setDriverID(driverID),
		route.setVehicleID(vehicleID),
		route.setEndpoints(startPoint, endPoint),
		route.setStatus(status),
	); err != nil {
		return nil, err
	}

	return route, nil
}

// Validate ensures the Route instance was properly constructed.
func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// ID returns the route's unique identifier.
func (r *Route) ID() kernel.UUID {
	return r.id
}

// OrderID returns the transported order's identifier.
func (r *Route) OrderID() kernel.UUID {
	return r.orderID
}

// DriverID returns the assigned driver's identifier.
func (r *Route) DriverID() kernel.UUID {
	return r.driverID
}

// VehicleID returns the assigned vehicle's identifier.
func (r *Route) VehicleID() kernel.UUID {
	return r.vehicleID
}

// StartPoint returns the origin of the route.
func (r *Route) StartPoint() string {
	return r.startPoint
}

// EndPoint returns the destination of the route.
func (r *Route) EndPoint() string {
	return r.endPoint
}

// PlannedStartTime returns the scheduled departure, or nil.
func (r *Route) PlannedStartTime() *time.Time {
	return r.plannedStartTime
}

// PlannedEndTime returns the scheduled arrival, or nil.
func (r *Route) PlannedEndTime() *time.Time {
	return r.plannedEndTime
}

// ActualStartTime returns the stamped departure time, or nil.
func (r *Route) ActualStartTime() *time.Time {
	return r.actualStartTime
}

// ActualEndTime returns the stamped arrival time, or nil.
func (r *Route) ActualEndTime() *time.Time {
	return r.actualEndTime
}

// Status returns the current status of the route.
func (r *Route) Status() Status {
	return r.status
}

// DistanceKm returns the route distance, or nil if not recorded.
func (r *Route) DistanceKm() *float64 {
	return r.distanceKm
}

// Notes returns the free-text notes.
func (r *Route) Notes() string {
	return r.notes
}

// IsOwnedBy reports whether the given driver is assigned to this route.
// Drivers may only advance routes they own.
func (r *Route) IsOwnedBy(driverID kernel.UUID) bool {
	return r.driverID.IsEqual(driverID)
}

// Start moves the route to InTransit and stamps the actual start time.
// Valid only from Planned status.
func (r *Route) Start(at time.Time) error {
	newStatus, err := r.status.Start()
	if err != nil {
		return err
	}
	r.status = newStatus
	r.actualStartTime = &at
	return nil
}

// Complete moves the route to Completed and stamps the actual end time.
// Valid from Planned (forced by a manual delivery edit) and from InTransit
// (driver arrival); completing an already-Completed route is rejected so the
// resource-freeing cascade cannot run twice.
func (r *Route) Complete(at time.Time) error {
	newStatus, err := r.status.Complete()
	if err != nil {
		return err
	}
	r.status = newStatus
	r.actualEndTime = &at
	return nil
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *Route) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	r.driverID = driverID
	return nil
}

func (r *Route) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	r.vehicleID = vehicleID
	return nil
}

func (r *Route) setEndpoints(start, end string) error {
	if start == "" || end == "" {
		return ErrEndpointIsRequired
	}
	r.startPoint = start
	r.endPoint = end
	return nil
}

func (r *Route) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"route status", fmt.Errorf("restore: %w", err))
	}
	r.status = status
	return nil
}
