package commands

import (
	"errors"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/order"
	"logistrans/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a manual order status edit.
// Moving an order to Delivered is a delivery completion: the active route,
// vehicle and driver are released together with the status change.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	newStatus order.Status
	changedBy kernel.UUID
	note      string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	newStatus order.Status,
	changedBy kernel.UUID,
	note string,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNewStatus(newStatus),
		cmd.setChangedBy(changedBy),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order whose status changes.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }

// NewStatus returns the requested status.
func (c ChangeOrderStatusCommand) NewStatus() order.Status { return c.newStatus }

// ChangedBy returns the user performing the edit.
func (c ChangeOrderStatusCommand) ChangedBy() kernel.UUID { return c.changedBy }

// Note returns the free-form reason attached to the history entry.
func (c ChangeOrderStatusCommand) Note() string { return c.note }

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	c.newStatus = newStatus
	return nil
}

func (c *ChangeOrderStatusCommand) setChangedBy(changedBy kernel.UUID) error {
	if err := changedBy.Validate(); err != nil {
		return err
	}
	c.changedBy = changedBy
	return nil
}
