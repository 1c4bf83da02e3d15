package commands

import (
	"context"
	"fmt"
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/notification"
	"logistrans/internal/core/domain/model/order"
	"logistrans/internal/core/domain/model/route"
)

// assignTransport claims a vehicle and a driver for the order, plans a route
// between the order addresses and records the status change. Shared by order
// creation with immediate assignment and by standalone transport assignment.
//
// Both claims are compare-and-set operations: when either resource was taken
// by a concurrent command, the claim returns ResourceConflictError and the
// caller's rollback discards everything done here.
//
// The order aggregate is mutated but not persisted; the caller decides
// between Add and Update.
func assignTransport(
	ctx context.Context,
	uow UoW,
	ord *order.Order,
	vehicleID kernel.UUID,
	driverID kernel.UUID,
	plannedStartTime *time.Time,
	plannedEndTime *time.Time,
	changedBy kernel.UUID,
	at time.Time,
) (*route.Route, error) {
	vehicle, err := uow.VehicleRepository().ClaimFree(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	driver, err := uow.DriverRepository().ClaimAvailable(ctx, driverID)
	if err != nil {
		return nil, err
	}

	oldStatus := ord.Status()
	if err = ord.Assign(); err != nil {
		return nil, err
	}

	plannedRoute, err := route.NewRoute(
		kernel.NewUUID(),
		ord.ID(),
		driver.ID(),
		vehicle.ID(),
		ord.AddressFrom(),
		ord.AddressTo(),
		plannedStartTime,
		plannedEndTime,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.RouteRepository().Add(ctx, plannedRoute); err != nil {
		return nil, err
	}

	if err = appendStatusHistory(ctx, uow, ord.ID(), &oldStatus, ord.Status(), changedBy, at, "transport assigned"); err != nil {
		return nil, err
	}

	if driver.UserID() != nil {
		orderID := ord.ID()
		message := fmt.Sprintf("New delivery assignment: order %s", ord.Number())
		if err = notifyUser(ctx, uow, *driver.UserID(), message, notification.CategoryOrderAssigned, &orderID, at); err != nil {
			return nil, err
		}
	}

	return plannedRoute, nil
}

// appendStatusHistory records one entry in the append-only order status history.
func appendStatusHistory(
	ctx context.Context,
	uow UoW,
	orderID kernel.UUID,
	oldStatus *order.Status,
	newStatus order.Status,
	changedBy kernel.UUID,
	at time.Time,
	note string,
) error {
	entry, err := order.NewStatusChange(orderID, oldStatus, newStatus, changedBy, at, note)
	if err != nil {
		return err
	}
	return uow.StatusHistoryRepository().Append(ctx, entry)
}

// notifyUser stores a notification addressed to a single user.
func notifyUser(
	ctx context.Context,
	uow UoW,
	userID kernel.UUID,
	message string,
	category string,
	orderID *kernel.UUID,
	at time.Time,
) error {
	n, err := notification.NewNotification(userID, message, category, orderID, at)
	if err != nil {
		return err
	}
	return uow.NotificationRepository().Add(ctx, n)
}

// notifyRole stores the same notification for every active user in a role.
func notifyRole(
	ctx context.Context,
	uow UoW,
	role kernel.Role,
	message string,
	category string,
	orderID *kernel.UUID,
	at time.Time,
) error {
	users, err := uow.UserRepository().GetAllActiveByRole(ctx, role)
	if err != nil {
		return err
	}
	for _, u := range users {
		if err = notifyUser(ctx, uow, u.ID(), message, category, orderID, at); err != nil {
			return err
		}
	}
	return nil
}
