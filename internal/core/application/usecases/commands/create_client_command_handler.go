package commands

import (
	"context"
	"time"

	"logistrans/internal/core/domain/model/client"
)

// CreateClientCommandHandler handles client registration.
type CreateClientCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateClientCommandHandler creates a handler for client registration.
func NewCreateClientCommandHandler(uowFactory UoWFactory) CreateClientCommandHandler {
	return CreateClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the client registration command.
func (h *CreateClientCommandHandler) Handle(ctx context.Context, cmd CreateClientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	cl, err := client.NewClient(
		cmd.ClientID(),
		cmd.Name(),
		cmd.ContactInfo(),
		cmd.Email(),
		cmd.Phone(),
		time.Now().UTC(),
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

	if err = uow.ClientRepository().Add(ctx, cl); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
