// Package notification contains the Notification aggregate delivered to users
// when orders and resources change state.
package notification

import (
	"errors"
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/pkg/errs"
	"logistrans/internal/pkg/guard"
)

// Notification categories.
const (
	CategoryOrderCreated   = "OrderCreated"
	CategoryOrderAssigned  = "OrderAssigned"
	CategoryOrderDelivered = "OrderDelivered"
	CategoryStatusChanged  = "StatusChanged"
	CategoryMaintenanceDue = "MaintenanceDue"
)

var (
	// ErrNotificationIsNotConstructed is returned when using an improperly
	// initialized Notification.
	ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")
	// ErrMessageIsRequired is returned when creating a notification with an empty message.
	ErrMessageIsRequired = errs.NewValueIsRequiredError("message")
	// ErrNotificationAlreadyRead is returned when marking a read notification read again.
	ErrNotificationAlreadyRead = errors.New("notification is already read")
)

// Notification is a message addressed to a single user.
type Notification struct {
	id        kernel.UUID
	userID    kernel.UUID
	message   string
	category  string
	isRead    bool
	orderID   *kernel.UUID
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewNotification creates an unread Notification for the given user.
func NewNotification(
	userID kernel.UUID,
	message string,
	category string,
	orderID *kernel.UUID,
	createdAt time.Time,
) (*Notification, error) {
	n := &Notification{
		id:        kernel.NewUUID(),
		category:  category,
		orderID:   orderID,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		n.setUserID(userID),
		n.setMessage(message),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotification reconstructs a Notification from persistent storage.
func RestoreNotification(
	id kernel.UUID,
	userID kernel.UUID,
	message string,
	category string,
	isRead bool,
	orderID *kernel.UUID,
	createdAt time.Time,
) (*Notification, error) {
	n, err := NewNotification(userID, message, category, orderID, createdAt)
	if err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}
	n.id = id
	n.isRead = isRead
	return n, nil
}

// Validate ensures the Notification instance was properly constructed.
func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID { return n.id }

// UserID returns the addressee.
func (n *Notification) UserID() kernel.UUID { return n.userID }

// Message returns the notification text.
func (n *Notification) Message() string { return n.message }

// Category returns the notification category.
func (n *Notification) Category() string { return n.category }

// IsRead reports whether the addressee has read the notification.
func (n *Notification) IsRead() bool { return n.isRead }

// OrderID returns the related order, or nil.
func (n *Notification) OrderID() *kernel.UUID { return n.orderID }

// CreatedAt returns when the notification was produced.
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

// MarkRead marks the notification as read by its addressee. The caller ensures
// the reader is the addressee; readers other than the addressee must be
// rejected before reaching the aggregate.
func (n *Notification) MarkRead() error {
	if n.isRead {
		return ErrNotificationAlreadyRead
	}
	n.isRead = true
	return nil
}

func (n *Notification) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	n.userID = userID
	return nil
}

func (n *Notification) setMessage(message string) error {
	if message == "" {
		return ErrMessageIsRequired
	}
	n.message = message
	return nil
}
