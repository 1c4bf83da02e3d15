package order

import (
	"errors"
	"fmt"
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/pkg/errs"
	"logistrans/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrAddressIsRequired is returned when an origin or destination address is missing.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
)

// Order is the aggregate root for a cargo shipment request. It carries the
// client's cargo from an origin to a destination address and tracks the
// shipment through its status lifecycle.
//
// Order invariants:
//   - Identifier and order number are immutable once assigned
//   - Weight and cost are never negative
//   - Origin and destination addresses are always present
//   - Status values belong to the closed Status enumeration
//   - Orders are never deleted; Delivered is reached only through the
//     delivery completion cascade, which stamps the actual delivery date
type Order struct {
	id                  kernel.UUID
	number              Number
	clientID            kernel.UUID
	cargoDescription    string
	weight              float64
	addressFrom         string
	addressTo           string
	orderDate           time.Time
	plannedDeliveryDate *time.Time
	actualDeliveryDate  *time.Time
	cost                float64
	status              Status
	createdBy           kernel.UUID
	notes               string

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Created status with no transport bound.
//
// Parameters:
//   - id: unique identifier (must be valid UUID)
//   - number: document order number (must be constructed)
//   - clientID: the ordering client (must be valid UUID)
//   - cargoDescription: free-text cargo description
//   - weight: cargo weight in tons (must not be negative)
//   - addressFrom, addressTo: origin and destination (must be non-empty)
//   - orderDate: registration timestamp
//   - plannedDeliveryDate: optional promised delivery date
//   - cost: shipment cost (must not be negative)
//   - createdBy: the logistics actor registering the order
//   - notes: optional free-text notes
//
// Returns the created order, or an aggregated validation error.
func NewOrder(
	id kernel.UUID,
	number Number,
	clientID kernel.UUID,
	cargoDescription string,
	weight float64,
	addressFrom string,
	addressTo string,
	orderDate time.Time,
	plannedDeliveryDate *time.Time,
	cost float64,
	createdBy kernel.UUID,
	notes string,
) (*Order, error) {
	order := &Order{
		status:              Created,
		cargoDescription:    cargoDescription,
		orderDate:           orderDate,
		plannedDeliveryDate: plannedDeliveryDate,
		notes:               notes,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setNumber(number),
		order.setClientID(clientID),
		order.setWeight(weight),
		order.setAddresses(addressFrom, addressTo),
		order.setCost(cost),
		order.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including its current status and delivery stamps. The restored order
// behaves identically to one created through normal domain operations.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	clientID kernel.UUID,
	cargoDescription string,
	weight float64,
	addressFrom string,
	addressTo string,
	orderDate time.Time,
	plannedDeliveryDate *time.Time,
	actualDeliveryDate *time.Time,
	cost float64,
	status Status,
	createdBy kernel.UUID,
	notes string,
) (*Order, error) {
	order := &Order{
		cargoDescription:    cargoDescription,
		orderDate:           orderDate,
		plannedDeliveryDate: plannedDeliveryDate,
		actualDeliveryDate:  actualDeliveryDate,
		notes:               notes,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setNumber(number),
		order.setClientID(clientID),
		order.setWeight(weight),
		order.setAddresses(addressFrom, addressTo),
		order.setCost(cost),
		order.setCreatedBy(createdBy),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// Call when reconstructing orders from persistence or accepting them
// across a boundary.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the document order number.
func (o *Order) Number() Number {
	return o.number
}

// ClientID returns the ordering client's identifier.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// CargoDescription returns the free-text cargo description.
func (o *Order) CargoDescription() string {
	return o.cargoDescription
}

// Weight returns the cargo weight in tons.
func (o *Order) Weight() float64 {
	return o.weight
}

// AddressFrom returns the origin address.
func (o *Order) AddressFrom() string {
	return o.addressFrom
}

// AddressTo returns the destination address.
func (o *Order) AddressTo() string {
	return o.addressTo
}

// OrderDate returns the registration timestamp.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// PlannedDeliveryDate returns the promised delivery date, or nil.
func (o *Order) PlannedDeliveryDate() *time.Time {
	return o.plannedDeliveryDate
}

// ActualDeliveryDate returns the delivery date stamped by the completion
// cascade, or nil while undelivered.
func (o *Order) ActualDeliveryDate() *time.Time {
	return o.actualDeliveryDate
}

// Cost returns the shipment cost.
func (o *Order) Cost() float64 {
	return o.cost
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedBy returns the actor that registered the order.
func (o *Order) CreatedBy() kernel.UUID {
	return o.createdBy
}

// Notes returns the free-text notes.
func (o *Order) Notes() string {
	return o.notes
}

// Assign marks the order as having transport bound.
// Valid only from Created status.
func (o *Order) Assign() error {
	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// MarkDelivered moves the order to Delivered and stamps the actual delivery
// date. This is the only way to reach the terminal status; both the
// route-completion and the manual-edit entry points pass through here.
func (o *Order) MarkDelivered(at time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.actualDeliveryDate = &at
	return nil
}

// ChangeStatus applies a manual status edit. Any valid non-terminal target
// is accepted (the edit screen is permissive within the closed enum), except
// Delivered — that target must go through MarkDelivered so the delivery
// cascade cannot be bypassed.
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	if newStatus == Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("%s is set via the delivery completion cascade", Delivered),
		)
	}
	o.status = newStatus
	return nil
}

// UpdateDetails edits the mutable non-status fields of the order.
func (o *Order) UpdateDetails(cost float64, notes string) error {
	if err := o.setCost(cost); err != nil {
		return err
	}
	o.notes = notes
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setWeight(weight float64) error {
	if weight < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%f is negative", weight))
	}
	o.weight = weight
	return nil
}

func (o *Order) setAddresses(from, to string) error {
	if from == "" || to == "" {
		return ErrAddressIsRequired
	}
	o.addressFrom = from
	o.addressTo = to
	return nil
}

func (o *Order) setCost(cost float64) error {
	if cost < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"cost", fmt.Errorf("%f is negative", cost))
	}
	o.cost = cost
	return nil
}

func (o *Order) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	o.createdBy = createdBy
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
