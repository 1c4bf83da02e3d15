package services

import (
	"time"

	"logistrans/internal/core/domain/model/driver"
	"logistrans/internal/core/domain/model/order"
	"logistrans/internal/core/domain/model/route"
	"logistrans/internal/core/domain/model/vehicle"
)

// DeliveryCompletion is a domain service responsible for finishing a delivery
// as a single consistent state change across the order and the resources bound
// to it.
//
// Key responsibilities:
//   - Marking the order delivered and stamping the actual delivery date
//   - Completing the active route
//   - Releasing the vehicle back to the free pool
//   - Returning the driver to the available pool
//
// Business rules:
//   - All aggregates must be valid before completion
//   - Either every mutation succeeds or none is persisted; the caller runs
//     the service inside a single unit of work
//   - Orders without bound resources can still be completed: nil route,
//     vehicle, or driver are skipped
//
// Example usage:
//
//	completion := NewDeliveryCompletion()
//	if err := completion.Complete(order, route, vehicle, driver, time.Now()); err != nil {
//	    // Completion rejected, persist nothing
//	    return err
//	}
//	// Persist all four aggregates in one transaction
type DeliveryCompletion struct{}

// NewDeliveryCompletion creates a new DeliveryCompletion instance.
func NewDeliveryCompletion() DeliveryCompletion {
	return DeliveryCompletion{}
}

// Complete transitions the order and its bound resources to their terminal
// delivered states.
//
// Parameters:
//   - ord: The order being delivered (must be valid and not yet delivered)
//   - rte: The active route, or nil when the order has no route
//   - veh: The assigned vehicle, or nil when the order has no vehicle
//   - drv: The assigned driver, or nil when the order has no driver
//   - at: The completion timestamp stamped on the order and route
//
// Returns:
//   - error: The first rejected transition, leaving already-applied in-memory
//     mutations to be discarded by the caller's transaction rollback
func (d DeliveryCompletion) Complete(
	ord *order.Order,
	rte *route.Route,
	veh *vehicle.Vehicle,
	drv *driver.Driver,
	at time.Time,
) error {
	if err := ord.Validate(); err != nil {
		return err
	}

	if rte != nil {
		if err := rte.Validate(); err != nil {
			return err
		}
		if err := rte.Complete(at); err != nil {
			return err
		}
	}

	if err := ord.MarkDelivered(at); err != nil {
		return err
	}

	if veh != nil {
		if err := veh.Validate(); err != nil {
			return err
		}
		if err := veh.Release(); err != nil {
			return err
		}
	}

	if drv != nil {
		if err := drv.Validate(); err != nil {
			return err
		}
		if err := drv.MarkAvailable(); err != nil {
			return err
		}
	}

	return nil
}
