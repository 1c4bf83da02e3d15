// Package warehouse contains the WarehouseItem aggregate: cargo held in a
// storage zone, optionally reserved for an order.
package warehouse

import (
	"errors"
	"fmt"
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/pkg/errs"
	"logistrans/internal/pkg/guard"
)

// Item statuses are a small closed set; unlike order and route statuses
// there are no transition rules beyond reserve/ship bookkeeping.
const (
	StatusStored   = "Stored"
	StatusReserved = "Reserved"
	StatusShipped  = "Shipped"
)

var (
	// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
	// ErrCargoNameIsRequired is returned when creating an item without a cargo name.
	ErrCargoNameIsRequired = errs.NewValueIsRequiredError("cargo name")
)

// Item is a quantity of cargo stored in a warehouse zone.
type Item struct {
	id            kernel.UUID
	cargoName     string
	quantity      int
	storageZone   string
	volume        float64
	status        string
	arrivalDate   time.Time
	departureDate *time.Time
	orderID       *kernel.UUID

	guard guard.ConstructorGuard
}

// NewItem creates a stored Item.
func NewItem(
	id kernel.UUID,
	cargoName string,
	quantity int,
	storageZone string,
	volume float64,
	arrivalDate time.Time,
) (*Item, error) {
	item := &Item{
		storageZone: storageZone,
		volume:      volume,
		status:      StatusStored,
		arrivalDate: arrivalDate,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setCargoName(cargoName),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item aggregate from persistent storage.
func RestoreItem(
	id kernel.UUID,
	cargoName string,
	quantity int,
	storageZone string,
	volume float64,
	status string,
	arrivalDate time.Time,
	departureDate *time.Time,
	orderID *kernel.UUID,
) (*Item, error) {
	item, err := NewItem(id, cargoName, quantity, storageZone, volume, arrivalDate)
	if err != nil {
		return nil, err
	}
	item.status = status
	item.departureDate = departureDate
	item.orderID = orderID
	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID { return i.id }

// CargoName returns the cargo description.
func (i *Item) CargoName() string { return i.cargoName }

// Quantity returns the stored quantity.
func (i *Item) Quantity() int { return i.quantity }

// StorageZone returns the warehouse zone the item occupies.
func (i *Item) StorageZone() string { return i.storageZone }

// Volume returns the occupied volume.
func (i *Item) Volume() float64 { return i.volume }

// Status returns the current storage status.
func (i *Item) Status() string { return i.status }

// ArrivalDate returns when the cargo arrived at the warehouse.
func (i *Item) ArrivalDate() time.Time { return i.arrivalDate }

// DepartureDate returns when the cargo left the warehouse, or nil.
func (i *Item) DepartureDate() *time.Time { return i.departureDate }

// OrderID returns the order the item is reserved for, or nil.
func (i *Item) OrderID() *kernel.UUID { return i.orderID }

// Reserve binds the item to an order.
func (i *Item) Reserve(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if i.status != StatusStored {
		return errs.NewResourceConflictErrorWithCause(
			"warehouse item", i.id.String(),
			fmt.Errorf("status is %s, want %s", i.status, StatusStored))
	}
	i.status = StatusReserved
	i.orderID = &orderID
	return nil
}

// Ship stamps the departure of a reserved item.
func (i *Item) Ship(at time.Time) error {
	if i.status != StatusReserved {
		return errs.NewValueIsInvalidErrorWithCause(
			"warehouse item status",
			fmt.Errorf("%s is not a valid status to ship from", i.status))
	}
	i.status = StatusShipped
	i.departureDate = &at
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setCargoName(name string) error {
	if name == "" {
		return ErrCargoNameIsRequired
	}
	i.cargoName = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
