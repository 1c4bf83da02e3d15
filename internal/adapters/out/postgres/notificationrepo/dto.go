// Package notificationrepo provides data transfer objects and mapping
// functions for notification persistence.
package notificationrepo

import (
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting notifications.
type NotificationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	Message   string
	Category  string
	IsRead    bool
	OrderID   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
}

// TableName specifies the database table name for notifications.
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(aggregate *notification.Notification) NotificationDTO {
	var orderID *uuid.UUID
	if id := aggregate.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return NotificationDTO{
		ID:        aggregate.ID().Bytes(),
		UserID:    aggregate.UserID().Bytes(),
		Message:   aggregate.Message(),
		Category:  aggregate.Category(),
		IsRead:    aggregate.IsRead(),
		OrderID:   orderID,
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &oID
	}

	return notification.RestoreNotification(
		id,
		userID,
		dto.Message,
		dto.Category,
		dto.IsRead,
		orderID,
		dto.CreatedAt,
	)
}
