package order

import (
	"errors"
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/pkg/guard"
)

// ErrStatusChangeIsNotConstructed is returned when using an improperly
// initialized StatusChange.
var ErrStatusChangeIsNotConstructed = errors.New(
	"StatusChange must be created via NewStatusChange constructor")

// StatusChange is one entry in an order's append-only status history.
// Exactly one entry is recorded per status-setting operation, including the
// initial creation (old status nil). Entries are never mutated or deleted.
type StatusChange struct {
	id        kernel.UUID
	orderID   kernel.UUID
	oldStatus *Status
	newStatus Status
	changedBy kernel.UUID
	changedAt time.Time
	note      string

	guard guard.ConstructorGuard
}

// NewStatusChange records a transition from oldStatus to newStatus on the
// given order. oldStatus is nil for the creation entry.
func NewStatusChange(
	orderID kernel.UUID,
	oldStatus *Status,
	newStatus Status,
	changedBy kernel.UUID,
	changedAt time.Time,
	note string,
) (*StatusChange, error) {
	change := &StatusChange{
		oldStatus: oldStatus,
		changedAt: changedAt,
		note:      note,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		change.setID(kernel.NewUUID()),
		change.setOrderID(orderID),
		change.setNewStatus(newStatus),
		change.setChangedBy(changedBy),
		change.validateOldStatus(),
	); err != nil {
		return nil, err
	}

	return change, nil
}

// RestoreStatusChange reconstructs a history entry from persistent storage.
func RestoreStatusChange(
	id kernel.UUID,
	orderID kernel.UUID,
	oldStatus *Status,
	newStatus Status,
	changedBy kernel.UUID,
	changedAt time.Time,
	note string,
) (*StatusChange, error) {
	change := &StatusChange{
		oldStatus: oldStatus,
		changedAt: changedAt,
		note:      note,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		change.setID(id),
		change.setOrderID(orderID),
		change.setNewStatus(newStatus),
		change.setChangedBy(changedBy),
		change.validateOldStatus(),
	); err != nil {
		return nil, err
	}

	return change, nil
}

// Validate ensures the entry was created through a constructor.
func (c *StatusChange) Validate() error {
	if c == nil {
		return ErrStatusChangeIsNotConstructed
	}
	return c.guard.Validate(ErrStatusChangeIsNotConstructed)
}

// ID returns the entry's unique identifier.
func (c *StatusChange) ID() kernel.UUID {
	return c.id
}

// OrderID returns the order this entry belongs to.
func (c *StatusChange) OrderID() kernel.UUID {
	return c.orderID
}

// OldStatus returns the prior status, or nil for the creation entry.
func (c *StatusChange) OldStatus() *Status {
	return c.oldStatus
}

// NewStatus returns the status the order transitioned to.
func (c *StatusChange) NewStatus() Status {
	return c.newStatus
}

// ChangedBy returns the actor that performed the transition.
func (c *StatusChange) ChangedBy() kernel.UUID {
	return c.changedBy
}

// ChangedAt returns when the transition happened.
func (c *StatusChange) ChangedAt() time.Time {
	return c.changedAt
}

// Note returns the free-text annotation for the transition.
func (c *StatusChange) Note() string {
	return c.note
}

func (c *StatusChange) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *StatusChange) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *StatusChange) setNewStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	c.newStatus = newStatus
	return nil
}

func (c *StatusChange) setChangedBy(changedBy kernel.UUID) error {
	if err := changedBy.Validate(); err != nil {
		return err
	}
	c.changedBy = changedBy
	return nil
}

func (c *StatusChange) validateOldStatus() error {
	if c.oldStatus == nil {
		return nil
	}
	return c.oldStatus.Validate()
}
