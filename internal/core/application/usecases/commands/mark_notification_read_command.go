package commands

import (
	"errors"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/pkg/guard"
)

var (
	ErrMarkNotificationReadCommandIsNotConstructed = errors.New(
		"MarkNotificationReadCommand must be created via NewMarkNotificationReadCommand constructor",
	)
	// ErrNotificationNotAddressedToReader is returned when a user tries to
	// mark someone else's notification as read.
	ErrNotificationNotAddressedToReader = errors.New("notification is addressed to another user")
)

// MarkNotificationReadCommand represents a user acknowledging a notification.
type MarkNotificationReadCommand struct { //nolint:recvcheck //using for validation
	notificationID kernel.UUID
	readerID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkNotificationReadCommand creates a command to mark a notification read.
func NewMarkNotificationReadCommand(notificationID, readerID kernel.UUID) (MarkNotificationReadCommand, error) {
	cmd := MarkNotificationReadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(notificationID.Validate(), readerID.Validate()); err != nil {
		return MarkNotificationReadCommand{}, err
	}
	cmd.notificationID = notificationID
	cmd.readerID = readerID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationReadCommandIsNotConstructed)
}

// NotificationID returns the notification being acknowledged.
func (c MarkNotificationReadCommand) NotificationID() kernel.UUID { return c.notificationID }

// ReaderID returns the user acknowledging it.
func (c MarkNotificationReadCommand) ReaderID() kernel.UUID { return c.readerID }
