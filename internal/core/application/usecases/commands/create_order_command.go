package commands

import (
	"errors"
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrAddressFromIsRequired     = errors.New("departure address is required")
	ErrAddressToIsRequired       = errors.New("destination address is required")
	ErrTransportPairIsIncomplete = errors.New("vehicle and driver must be assigned together")
)

// CreateOrderCommand represents a request to register a new delivery order.
// The order may optionally be assigned a vehicle and a driver in the same
// transaction; both must be given together or not at all.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, clientID, "furniture", 120,
//	    "12 Depot Lane", "34 Harbour Road", nil, 250, "", actorID, nil, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	clientID            kernel.UUID
	cargoDescription    string
	weight              float64
	addressFrom         string
	addressTo           string
	plannedDeliveryDate *time.Time
	cost                float64
	notes               string
	createdBy           kernel.UUID
	vehicleID           *kernel.UUID
	driverID            *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates identifiers, required addresses, and that vehicle and driver are
// either both present or both absent. Cargo and money constraints are
// enforced by the order aggregate itself.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientID kernel.UUID,
	cargoDescription string,
	weight float64,
	addressFrom string,
	addressTo string,
	plannedDeliveryDate *time.Time,
	cost float64,
	notes string,
	createdBy kernel.UUID,
	vehicleID *kernel.UUID,
	driverID *kernel.UUID,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		cargoDescription:    cargoDescription,
		weight:              weight,
		plannedDeliveryDate: plannedDeliveryDate,
		cost:                cost,
		notes:               notes,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientID(clientID),
		cmd.setAddresses(addressFrom, addressTo),
		cmd.setCreatedBy(createdBy),
		cmd.setTransport(vehicleID, driverID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be stored under.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// ClientID returns the ordering client.
func (c CreateOrderCommand) ClientID() kernel.UUID { return c.clientID }

// CargoDescription returns the cargo description.
func (c CreateOrderCommand) CargoDescription() string { return c.cargoDescription }

// Weight returns the cargo weight in kilograms.
func (c CreateOrderCommand) Weight() float64 { return c.weight }

// AddressFrom returns the departure address.
func (c CreateOrderCommand) AddressFrom() string { return c.addressFrom }

// AddressTo returns the destination address.
func (c CreateOrderCommand) AddressTo() string { return c.addressTo }

// PlannedDeliveryDate returns the planned delivery date, or nil.
func (c CreateOrderCommand) PlannedDeliveryDate() *time.Time { return c.plannedDeliveryDate }

// Cost returns the order cost.
func (c CreateOrderCommand) Cost() float64 { return c.cost }

// Notes returns free-form order notes.
func (c CreateOrderCommand) Notes() string { return c.notes }

// CreatedBy returns the user registering the order.
func (c CreateOrderCommand) CreatedBy() kernel.UUID { return c.createdBy }

// VehicleID returns the vehicle to assign immediately, or nil.
func (c CreateOrderCommand) VehicleID() *kernel.UUID { return c.vehicleID }

// DriverID returns the driver to assign immediately, or nil.
func (c CreateOrderCommand) DriverID() *kernel.UUID { return c.driverID }

// HasTransport reports whether the order should be assigned on creation.
func (c CreateOrderCommand) HasTransport() bool {
	return c.vehicleID != nil && c.driverID != nil
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setAddresses(addressFrom, addressTo string) error {
	if addressFrom == "" {
		return ErrAddressFromIsRequired
	}
	if addressTo == "" {
		return ErrAddressToIsRequired
	}
	c.addressFrom = addressFrom
	c.addressTo = addressTo
	return nil
}

func (c *CreateOrderCommand) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	c.createdBy = createdBy
	return nil
}

func (c *CreateOrderCommand) setTransport(vehicleID, driverID *kernel.UUID) error {
	if (vehicleID == nil) != (driverID == nil) {
		return ErrTransportPairIsIncomplete
	}
	if vehicleID == nil {
		return nil
	}
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.vehicleID = vehicleID
	c.driverID = driverID
	return nil
}
