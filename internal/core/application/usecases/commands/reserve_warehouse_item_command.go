package commands

import (
	"errors"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/pkg/guard"
)

var ErrReserveWarehouseItemCommandIsNotConstructed = errors.New(
	"ReserveWarehouseItemCommand must be created via NewReserveWarehouseItemCommand constructor",
)

// ReserveWarehouseItemCommand represents a request to reserve stored cargo
// for an order.
type ReserveWarehouseItemCommand struct { //nolint:recvcheck //using for validation
	itemID  kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReserveWarehouseItemCommand creates a command to reserve a warehouse item.
func NewReserveWarehouseItemCommand(itemID, orderID kernel.UUID) (ReserveWarehouseItemCommand, error) {
	cmd := ReserveWarehouseItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(itemID.Validate(), orderID.Validate()); err != nil {
		return ReserveWarehouseItemCommand{}, err
	}
	cmd.itemID = itemID
	cmd.orderID = orderID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReserveWarehouseItemCommand) Validate() error {
	return c.guard.Validate(ErrReserveWarehouseItemCommandIsNotConstructed)
}

// ItemID returns the warehouse item being reserved.
func (c ReserveWarehouseItemCommand) ItemID() kernel.UUID { return c.itemID }

// OrderID returns the order the item is reserved for.
func (c ReserveWarehouseItemCommand) OrderID() kernel.UUID { return c.orderID }
