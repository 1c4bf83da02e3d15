package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/notification"
	"logistrans/internal/core/domain/model/route"
	"logistrans/internal/core/domain/services"
)

// ErrRouteNotOwnedByActor is returned when a driver tries to advance a route
// assigned to another driver.
var ErrRouteNotOwnedByActor = errors.New("route belongs to another driver")

// AdvanceRouteCommandHandler handles route lifecycle progression.
//
// Starting a route stamps the actual start time and moves the vehicle into
// transit. Completing a route is the same cascade as delivering the order
// manually: order, route, vehicle and driver all reach their terminal states
// in one transaction.
type AdvanceRouteCommandHandler struct {
	uowFactory UoWFactory
	completion services.DeliveryCompletion
}

// NewAdvanceRouteCommandHandler creates a handler for route advancement.
func NewAdvanceRouteCommandHandler(uowFactory UoWFactory) AdvanceRouteCommandHandler {
	return AdvanceRouteCommandHandler{
		uowFactory: uowFactory,
		completion: services.NewDeliveryCompletion(),
	}
}

// Handle processes the route advancement command.
func (h *AdvanceRouteCommandHandler) Handle(ctx context.Context, cmd AdvanceRouteCommand) error {
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

	rte, err := uow.RouteRepository().Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	if err = h.checkOwnership(ctx, uow, rte, cmd); err != nil {
		return err
	}

	switch cmd.Action() {
	case RouteActionStart:
		err = h.start(ctx, uow, rte, now)
	case RouteActionComplete:
		err = h.complete(ctx, uow, rte, cmd.ActorID(), now)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// checkOwnership lets drivers touch only their own routes. Admins and
// logisticians advance any route.
func (h *AdvanceRouteCommandHandler) checkOwnership(
	ctx context.Context,
	uow UoW,
	rte *route.Route,
	cmd AdvanceRouteCommand,
) error {
	if cmd.ActorRole() != kernel.RoleDriver {
		return nil
	}

	drv, err := uow.DriverRepository().GetByUser(ctx, cmd.ActorID())
	if err != nil {
		return err
	}

	if !rte.IsOwnedBy(drv.ID()) {
		return ErrRouteNotOwnedByActor
	}

	return nil
}

func (h *AdvanceRouteCommandHandler) start(
	ctx context.Context,
	uow UoW,
	rte *route.Route,
	at time.Time,
) error {
	if err := rte.Start(at); err != nil {
		return err
	}

	veh, err := uow.VehicleRepository().Get(ctx, rte.VehicleID())
	if err != nil {
		return err
	}
	if err = veh.MarkInTransit(); err != nil {
		return err
	}

	if err = uow.RouteRepository().Update(ctx, rte); err != nil {
		return err
	}
	return uow.VehicleRepository().Update(ctx, veh)
}

func (h *AdvanceRouteCommandHandler) complete(
	ctx context.Context,
	uow UoW,
	rte *route.Route,
	actorID kernel.UUID,
	at time.Time,
) error {
	ord, err := uow.OrderRepository().Get(ctx, rte.OrderID())
	if err != nil {
		return err
	}

	veh, err := uow.VehicleRepository().Get(ctx, rte.VehicleID())
	if err != nil {
		return err
	}

	drv, err := uow.DriverRepository().Get(ctx, rte.DriverID())
	if err != nil {
		return err
	}

	oldStatus := ord.Status()
	if err = h.completion.Complete(ord, rte, veh, drv, at); err != nil {
		return err
	}

	if err = uow.RouteRepository().Update(ctx, rte); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}
	if err = uow.VehicleRepository().Update(ctx, veh); err != nil {
		return err
	}
	if err = uow.DriverRepository().Update(ctx, drv); err != nil {
		return err
	}

	if err = appendStatusHistory(ctx, uow, ord.ID(), &oldStatus, ord.Status(), actorID, at, "route completed"); err != nil {
		return err
	}

	orderID := ord.ID()
	message := fmt.Sprintf("Order %s delivered", ord.Number())
	return notifyRole(ctx, uow, kernel.RoleLogistician, message, notification.CategoryOrderDelivered, &orderID, at)
}
