package ports

import (
	"context"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/warehouse"
)

// WarehouseRepository defines the persistence contract for warehouse items.
type WarehouseRepository interface {
	// Add persists a new warehouse item to storage.
	Add(ctx context.Context, aggregate *warehouse.Item) error

	// Update persists changes to an existing warehouse item.
	Update(ctx context.Context, aggregate *warehouse.Item) error

	// Get retrieves a warehouse item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*warehouse.Item, error)
}
