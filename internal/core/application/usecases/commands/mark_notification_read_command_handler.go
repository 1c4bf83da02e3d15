package commands

import (
	"context"
)

// MarkNotificationReadCommandHandler handles notification acknowledgement.
// Only the addressee may mark a notification as read.
type MarkNotificationReadCommandHandler struct {
	uowFactory UoWFactory
}

// NewMarkNotificationReadCommandHandler creates a handler for notification acknowledgement.
func NewMarkNotificationReadCommandHandler(uowFactory UoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acknowledgement command.
func (h *MarkNotificationReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationReadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	n, err := uow.NotificationRepository().Get(ctx, cmd.NotificationID())
	if err != nil {
		return err
	}

	if !n.UserID().IsEqual(cmd.ReaderID()) {
		return ErrNotificationNotAddressedToReader
	}

	if err = n.MarkRead(); err != nil {
		return err
	}

	if err = uow.NotificationRepository().Update(ctx, n); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
