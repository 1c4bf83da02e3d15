package commands

import (
	"context"
	"time"
)

// AssignTransportCommandHandler handles transport assignment for orders that
// were created without a vehicle and driver.
//
// The handler is the second writer in the double-assignment race: when two
// logisticians pick the same vehicle or driver, exactly one claim wins and the
// loser's transaction rolls back with ResourceConflictError.
type AssignTransportCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignTransportCommandHandler creates a handler for transport assignment.
func NewAssignTransportCommandHandler(uowFactory UoWFactory) AssignTransportCommandHandler {
	return AssignTransportCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transport assignment command.
// Claims both resources, plans the route, moves the order to Assigned and
// records the status change, all in one transaction.
func (h *AssignTransportCommandHandler) Handle(ctx context.Context, cmd AssignTransportCommand) error {
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

	if _, err = assignTransport(ctx, uow,
		ord, cmd.VehicleID(), cmd.DriverID(),
		cmd.PlannedStartTime(), cmd.PlannedEndTime(),
		cmd.AssignedBy(), now,
	); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
