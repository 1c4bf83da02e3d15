package queries

import (
	"errors"
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery retrieves the notifications addressed to one user.
type GetNotificationsQuery struct {
	userID     kernel.UUID
	unreadOnly bool

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates a query for a user's notifications.
func NewGetNotificationsQuery(userID kernel.UUID, unreadOnly bool) (GetNotificationsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetNotificationsQuery{}, err
	}
	return GetNotificationsQuery{
		userID:     userID,
		unreadOnly: unreadOnly,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// UserID returns the addressee.
func (q GetNotificationsQuery) UserID() kernel.UUID { return q.userID }

// UnreadOnly reports whether read notifications are excluded.
func (q GetNotificationsQuery) UnreadOnly() bool { return q.unreadOnly }

// GetNotificationsQueryResponse represents one notification in the read model.
type GetNotificationsQueryResponse struct {
	ID          kernel.UUID
	Message     string
	Category    string
	IsRead      bool
	OrderNumber *string
	CreatedAt   time.Time
}
