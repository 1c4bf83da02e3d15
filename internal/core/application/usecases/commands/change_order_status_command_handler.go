package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistrans/internal/core/domain/model/driver"
	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/notification"
	"logistrans/internal/core/domain/model/order"
	"logistrans/internal/core/domain/model/route"
	"logistrans/internal/core/domain/model/vehicle"
	"logistrans/internal/core/domain/services"
	"logistrans/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler handles manual order status edits.
//
// A Delivered target is never a plain field write: it runs the delivery
// completion cascade, so the route completes, the vehicle frees up and the
// driver becomes available in the same transaction. Edits that actually change
// the status append to the order's status history; requesting the current
// status is a no-op.
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	completion services.DeliveryCompletion
}

// NewChangeOrderStatusCommandHandler creates a handler for order status edits.
func NewChangeOrderStatusCommandHandler(uowFactory UoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		completion: services.NewDeliveryCompletion(),
	}
}

// Handle processes the status change command.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	oldStatus := ord.Status()

	// An edit that requests the current status writes nothing: no status
	// change, no history row, no notification.
	if cmd.NewStatus() == oldStatus {
		return uow.Commit(ctx)
	}

	if cmd.NewStatus() == order.Delivered {
		err = h.completeDelivery(ctx, uow, ord, now)
	} else {
		err = ord.ChangeStatus(cmd.NewStatus())
	}
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	if err = appendStatusHistory(ctx, uow, ord.ID(), &oldStatus, ord.Status(), cmd.ChangedBy(), now, cmd.Note()); err != nil {
		return err
	}

	if err = h.notify(ctx, uow, ord, now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// completeDelivery loads the resources bound to the order through its active
// route and runs the completion cascade over all of them. Orders without an
// active route complete alone.
func (h *ChangeOrderStatusCommandHandler) completeDelivery(
	ctx context.Context,
	uow UoW,
	ord *order.Order,
	at time.Time,
) error {
	var (
		rte *route.Route
		veh *vehicle.Vehicle
		drv *driver.Driver
	)

	rte, err := uow.RouteRepository().GetActiveByOrder(ctx, ord.ID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if rte != nil {
		if veh, err = uow.VehicleRepository().Get(ctx, rte.VehicleID()); err != nil {
			return err
		}
		if drv, err = uow.DriverRepository().Get(ctx, rte.DriverID()); err != nil {
			return err
		}
	}

	if err = h.completion.Complete(ord, rte, veh, drv, at); err != nil {
		return err
	}

	if rte != nil {
		if err = uow.RouteRepository().Update(ctx, rte); err != nil {
			return err
		}
		if err = uow.VehicleRepository().Update(ctx, veh); err != nil {
			return err
		}
		if err = uow.DriverRepository().Update(ctx, drv); err != nil {
			return err
		}
	}

	return nil
}

func (h *ChangeOrderStatusCommandHandler) notify(
	ctx context.Context,
	uow UoW,
	ord *order.Order,
	at time.Time,
) error {
	orderID := ord.ID()
	if ord.Status() == order.Delivered {
		message := fmt.Sprintf("Order %s delivered", ord.Number())
		return notifyRole(ctx, uow, kernel.RoleLogistician, message, notification.CategoryOrderDelivered, &orderID, at)
	}

	message := fmt.Sprintf("Order %s moved to %s", ord.Number(), ord.Status())
	return notifyUser(ctx, uow, ord.CreatedBy(), message, notification.CategoryStatusChanged, &orderID, at)
}
