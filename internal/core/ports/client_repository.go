package ports

import (
	"context"

	"logistrans/internal/core/domain/model/client"
	"logistrans/internal/core/domain/model/kernel"
)

// ClientRepository defines the persistence contract for client aggregates.
type ClientRepository interface {
	// Add persists a new client aggregate to storage.
	Add(ctx context.Context, aggregate *client.Client) error

	// Update persists changes to an existing client aggregate.
	Update(ctx context.Context, aggregate *client.Client) error

	// Get retrieves a client aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)
}
