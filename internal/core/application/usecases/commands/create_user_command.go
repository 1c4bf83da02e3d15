package commands

import (
	"errors"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/pkg/guard"
)

var (
	ErrCreateUserCommandIsNotConstructed = errors.New(
		"CreateUserCommand must be created via NewCreateUserCommand constructor",
	)
	ErrPasswordIsRequired = errors.New("password is required")
)

// CreateUserCommand represents a request to register a new user account.
// The command carries the plain password; the handler hashes it before the
// aggregate ever sees it.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	login    string
	password string
	fullName string
	role     kernel.Role

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a command to register a new user account.
func NewCreateUserCommand(
	userID kernel.UUID,
	login string,
	password string,
	fullName string,
	role kernel.Role,
) (CreateUserCommand, error) {
	cmd := CreateUserCommand{
		login:    login,
		fullName: fullName,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// UserID returns the identifier the new user will be stored under.
func (c CreateUserCommand) UserID() kernel.UUID { return c.userID }

// Login returns the unique login.
func (c CreateUserCommand) Login() string { return c.login }

// Password returns the plain password to be hashed.
func (c CreateUserCommand) Password() string { return c.password }

// FullName returns the user's display name.
func (c CreateUserCommand) FullName() string { return c.fullName }

// Role returns the granted role.
func (c CreateUserCommand) Role() kernel.Role { return c.role }

func (c *CreateUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *CreateUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}
	c.password = password
	return nil
}

func (c *CreateUserCommand) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
