package commands

import (
	"context"

	"logistrans/internal/core/domain/model/vehicle"
)

// CreateVehicleCommandHandler handles vehicle registration.
type CreateVehicleCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateVehicleCommandHandler creates a handler for vehicle registration.
func NewCreateVehicleCommandHandler(uowFactory UoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle registration command.
// A duplicate license plate surfaces as ResourceConflictError from storage.
func (h *CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	veh, err := vehicle.NewVehicle(
		cmd.VehicleID(),
		cmd.Brand(),
		cmd.Model(),
		cmd.LicensePlate(),
		cmd.Capacity(),
		cmd.NextMaintenanceKm(),
		cmd.CurrentMileage(),
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

	if err = uow.VehicleRepository().Add(ctx, veh); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
