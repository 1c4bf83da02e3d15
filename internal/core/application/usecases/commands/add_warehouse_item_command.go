package commands

import (
	"errors"
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/pkg/guard"
)

var ErrAddWarehouseItemCommandIsNotConstructed = errors.New(
	"AddWarehouseItemCommand must be created via NewAddWarehouseItemCommand constructor",
)

// AddWarehouseItemCommand represents cargo arriving at the warehouse.
type AddWarehouseItemCommand struct { //nolint:recvcheck //using for validation
	itemID      kernel.UUID
	cargoName   string
	quantity    int
	storageZone string
	volume      float64
	arrivalDate time.Time

	guard guard.ConstructorGuard
}

// NewAddWarehouseItemCommand creates a command to store arriving cargo.
func NewAddWarehouseItemCommand(
	itemID kernel.UUID,
	cargoName string,
	quantity int,
	storageZone string,
	volume float64,
	arrivalDate time.Time,
) (AddWarehouseItemCommand, error) {
	cmd := AddWarehouseItemCommand{
		cargoName:   cargoName,
		quantity:    quantity,
		storageZone: storageZone,
		volume:      volume,
		arrivalDate: arrivalDate,
		guard:       guard.NewConstructorGuard(),
	}

	if err := itemID.Validate(); err != nil {
		return AddWarehouseItemCommand{}, err
	}
	cmd.itemID = itemID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddWarehouseItemCommand) Validate() error {
	return c.guard.Validate(ErrAddWarehouseItemCommandIsNotConstructed)
}

// ItemID returns the identifier the new item will be stored under.
func (c AddWarehouseItemCommand) ItemID() kernel.UUID { return c.itemID }

// CargoName returns the cargo description.
func (c AddWarehouseItemCommand) CargoName() string { return c.cargoName }

// Quantity returns the arriving quantity.
func (c AddWarehouseItemCommand) Quantity() int { return c.quantity }

// StorageZone returns the assigned warehouse zone.
func (c AddWarehouseItemCommand) StorageZone() string { return c.storageZone }

// Volume returns the occupied volume.
func (c AddWarehouseItemCommand) Volume() float64 { return c.volume }

// ArrivalDate returns when the cargo arrived.
func (c AddWarehouseItemCommand) ArrivalDate() time.Time { return c.arrivalDate }
