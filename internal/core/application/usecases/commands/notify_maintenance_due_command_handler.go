package commands

import (
	"context"
	"fmt"
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/notification"
)

// NotifyMaintenanceDueCommandHandler finds vehicles whose mileage reached the
// next maintenance threshold and notifies admins. Vehicles already under
// maintenance are skipped by the repository query.
type NotifyMaintenanceDueCommandHandler struct {
	uowFactory UoWFactory
}

// NewNotifyMaintenanceDueCommandHandler creates a handler for the maintenance sweep.
func NewNotifyMaintenanceDueCommandHandler(uowFactory UoWFactory) NotifyMaintenanceDueCommandHandler {
	return NotifyMaintenanceDueCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the maintenance sweep command.
func (h *NotifyMaintenanceDueCommandHandler) Handle(ctx context.Context, cmd NotifyMaintenanceDueCommand) error {
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

	vehicles, err := uow.VehicleRepository().GetAllDueForMaintenance(ctx)
	if err != nil {
		return err
	}

	for _, veh := range vehicles {
		message := fmt.Sprintf(
			"Vehicle %s %s (%s) is due for maintenance: %d km of %d km",
			veh.Brand(), veh.Model(), veh.LicensePlate(),
			veh.CurrentMileage(), veh.NextMaintenanceKm(),
		)
		if err = notifyRole(ctx, uow, kernel.RoleAdmin, message, notification.CategoryMaintenanceDue, nil, now); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
