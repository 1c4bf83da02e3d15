package commands

import (
	"errors"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/pkg/guard"
)

var ErrCreateClientCommandIsNotConstructed = errors.New(
	"CreateClientCommand must be created via NewCreateClientCommand constructor",
)

// CreateClientCommand represents a request to register a new client.
type CreateClientCommand struct { //nolint:recvcheck //using for validation
	clientID    kernel.UUID
	name        string
	contactInfo string
	email       string
	phone       string

	guard guard.ConstructorGuard
}

// NewCreateClientCommand creates a command to register a new client.
func NewCreateClientCommand(
	clientID kernel.UUID,
	name string,
	contactInfo string,
	email string,
	phone string,
) (CreateClientCommand, error) {
	cmd := CreateClientCommand{
		name:        name,
		contactInfo: contactInfo,
		email:       email,
		phone:       phone,
		guard:       guard.NewConstructorGuard(),
	}

	if err := clientID.Validate(); err != nil {
		return CreateClientCommand{}, err
	}
	cmd.clientID = clientID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

// ClientID returns the identifier the new client will be stored under.
func (c CreateClientCommand) ClientID() kernel.UUID { return c.clientID }

// Name returns the client name.
func (c CreateClientCommand) Name() string { return c.name }

// ContactInfo returns the free-form contact details.
func (c CreateClientCommand) ContactInfo() string { return c.contactInfo }

// Email returns the client email.
func (c CreateClientCommand) Email() string { return c.email }

// Phone returns the client phone number.
func (c CreateClientCommand) Phone() string { return c.phone }
