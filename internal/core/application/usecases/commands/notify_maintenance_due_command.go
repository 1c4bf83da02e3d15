package commands

import (
	"errors"

	"logistrans/internal/pkg/guard"
)

var ErrNotifyMaintenanceDueCommandIsNotConstructed = errors.New(
	"NotifyMaintenanceDueCommand must be created via NewNotifyMaintenanceDueCommand constructor",
)

// NotifyMaintenanceDueCommand triggers a maintenance sweep over the fleet.
// Issued periodically by the background scheduler.
type NotifyMaintenanceDueCommand struct {
	guard guard.ConstructorGuard
}

// NewNotifyMaintenanceDueCommand creates a command to run the maintenance sweep.
func NewNotifyMaintenanceDueCommand() (NotifyMaintenanceDueCommand, error) {
	return NotifyMaintenanceDueCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c NotifyMaintenanceDueCommand) Validate() error {
	return c.guard.Validate(ErrNotifyMaintenanceDueCommandIsNotConstructed)
}
