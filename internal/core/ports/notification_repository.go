package ports

import (
	"context"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notifications.
type NotificationRepository interface {
	// Add persists a new notification to storage.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists changes to an existing notification.
	Update(ctx context.Context, aggregate *notification.Notification) error

	// Get retrieves a notification by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)
}
