package commands

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"logistrans/internal/core/domain/model/user"
)

// CreateUserCommandHandler handles user registration.
// Passwords are stored as bcrypt hashes, never in plain text.
type CreateUserCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateUserCommandHandler creates a handler for user registration.
func NewCreateUserCommandHandler(uowFactory UoWFactory) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the user registration command.
func (h *CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	usr, err := user.NewUser(
		cmd.UserID(),
		cmd.Login(),
		string(hash),
		cmd.FullName(),
		cmd.Role(),
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

	if err = uow.UserRepository().Add(ctx, usr); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
