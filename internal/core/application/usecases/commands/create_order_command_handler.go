package commands

import (
	"context"
	"fmt"
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/notification"
	"logistrans/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Generates the order number, records the initial history entry, optionally
// assigns transport, and notifies logisticians about the new order.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(orderID, clientID, "furniture", 120,
//	    "12 Depot Lane", "34 Harbour Road", nil, 250, "", actorID, nil, nil)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// The order, its history entry, the optional transport claims and route, and
// the notifications are committed in one transaction; a failed vehicle or
// driver claim rolls back the whole creation.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	if _, err := uow.ClientRepository().Get(ctx, cmd.ClientID()); err != nil {
		return err
	}

	ord, err := order.NewOrder(
		cmd.OrderID(),
		order.NewNumber(now),
		cmd.ClientID(),
		cmd.CargoDescription(),
		cmd.Weight(),
		cmd.AddressFrom(),
		cmd.AddressTo(),
		now,
		cmd.PlannedDeliveryDate(),
		cmd.Cost(),
		cmd.CreatedBy(),
		cmd.Notes(),
	)
	if err != nil {
		return err
	}

	// The order row is inserted before the route and history rows that
	// reference it.
	if err = uow.OrderRepository().Add(ctx, ord); err != nil {
		return err
	}

	if err = appendStatusHistory(ctx, uow, ord.ID(), nil, ord.Status(), cmd.CreatedBy(), now, "order registered"); err != nil {
		return err
	}

	if cmd.HasTransport() {
		if _, err = assignTransport(ctx, uow,
			ord, *cmd.VehicleID(), *cmd.DriverID(),
			cmd.PlannedDeliveryDate(), nil,
			cmd.CreatedBy(), now,
		); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, ord); err != nil {
			return err
		}
	}

	orderID := ord.ID()
	message := fmt.Sprintf("New order %s registered", ord.Number())
	if err = notifyRole(ctx, uow, kernel.RoleLogistician, message, notification.CategoryOrderCreated, &orderID, now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
