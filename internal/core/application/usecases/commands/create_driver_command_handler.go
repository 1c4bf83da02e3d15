package commands

import (
	"context"

	"logistrans/internal/core/domain/model/driver"
)

// CreateDriverCommandHandler handles driver registration.
type CreateDriverCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateDriverCommandHandler creates a handler for driver registration.
func NewCreateDriverCommandHandler(uowFactory UoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver registration command.
// When the profile links to a user account, the account must exist.
func (h *CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	drv, err := driver.NewDriver(
		cmd.DriverID(),
		cmd.UserID(),
		cmd.FullName(),
		cmd.Phone(),
		cmd.LicenseNumber(),
		cmd.ExperienceYears(),
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

	if cmd.UserID() != nil {
		if _, err = uow.UserRepository().Get(ctx, *cmd.UserID()); err != nil {
			return err
		}
	}

	if err = uow.DriverRepository().Add(ctx, drv); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
