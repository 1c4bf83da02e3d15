package commands

import (
	"context"

	"logistrans/internal/core/domain/model/warehouse"
)

// AddWarehouseItemCommandHandler handles cargo arrival at the warehouse.
type AddWarehouseItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddWarehouseItemCommandHandler creates a handler for cargo arrival.
func NewAddWarehouseItemCommandHandler(uowFactory UoWFactory) AddWarehouseItemCommandHandler {
	return AddWarehouseItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cargo arrival command.
func (h *AddWarehouseItemCommandHandler) Handle(ctx context.Context, cmd AddWarehouseItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := warehouse.NewItem(
		cmd.ItemID(),
		cmd.CargoName(),
		cmd.Quantity(),
		cmd.StorageZone(),
		cmd.Volume(),
		cmd.ArrivalDate(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.WarehouseRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
