package ports

import (
	"context"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/order"
)

// StatusHistoryRepository defines the persistence contract for the append-only
// order status history. Entries are never updated or deleted.
type StatusHistoryRepository interface {
	// Append persists a new status change entry.
	Append(ctx context.Context, entry *order.StatusChange) error

	// ListByOrder retrieves every status change of the given order in
	// chronological order.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.StatusChange, error)
}
