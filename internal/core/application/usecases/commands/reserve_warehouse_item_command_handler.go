package commands

import (
	"context"
)

// ReserveWarehouseItemCommandHandler handles reserving stored cargo for an
// order. Reserving an item that is not in Stored status is a conflict.
type ReserveWarehouseItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewReserveWarehouseItemCommandHandler creates a handler for item reservation.
func NewReserveWarehouseItemCommandHandler(uowFactory UoWFactory) ReserveWarehouseItemCommandHandler {
	return ReserveWarehouseItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reservation command.
func (h *ReserveWarehouseItemCommandHandler) Handle(ctx context.Context, cmd ReserveWarehouseItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	item, err := uow.WarehouseRepository().Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = item.Reserve(cmd.OrderID()); err != nil {
		return err
	}

	if err = uow.WarehouseRepository().Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
