// Package client contains the Client aggregate: the customer placing orders.
package client

import (
	"errors"
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/pkg/errs"
	"logistrans/internal/pkg/guard"
)

var (
	// ErrClientIsNotConstructed is returned when using an improperly initialized Client.
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")
	// ErrNameIsRequired is returned when creating a client without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("client name")
)

// Client is a customer company or person for whom orders are shipped.
type Client struct {
	id          kernel.UUID
	name        string
	contactInfo string
	email       string
	phone       string
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewClient creates a Client with the given contact details.
func NewClient(
	id kernel.UUID,
	name string,
	contactInfo string,
	email string,
	phone string,
	createdAt time.Time,
) (*Client, error) {
	client := &Client{
		contactInfo: contactInfo,
		email:       email,
		phone:       phone,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		client.setID(id),
		client.setName(name),
	); err != nil {
		return nil, err
	}

	return client, nil
}

// RestoreClient reconstructs a Client aggregate from persistent storage.
func RestoreClient(
	id kernel.UUID,
	name string,
	contactInfo string,
	email string,
	phone string,
	createdAt time.Time,
) (*Client, error) {
	return NewClient(id, name, contactInfo, email, phone, createdAt)
}

// Validate ensures the Client instance was properly constructed.
func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}

// ID returns the client's unique identifier.
func (c *Client) ID() kernel.UUID { return c.id }

// Name returns the client's display name.
func (c *Client) Name() string { return c.name }

// ContactInfo returns the free-text contact details.
func (c *Client) ContactInfo() string { return c.contactInfo }

// Email returns the contact email.
func (c *Client) Email() string { return c.email }

// Phone returns the contact phone number.
func (c *Client) Phone() string { return c.phone }

// CreatedAt returns when the client was registered.
func (c *Client) CreatedAt() time.Time { return c.createdAt }

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
