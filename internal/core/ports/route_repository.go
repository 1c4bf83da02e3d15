package ports

import (
	"context"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for route aggregates.
type RouteRepository interface {
	// Add persists a new route aggregate to storage.
	Add(ctx context.Context, aggregate *route.Route) error

	// Update persists changes to an existing route aggregate.
	Update(ctx context.Context, aggregate *route.Route) error

	// Get retrieves a route aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// GetActiveByOrder retrieves the route in Planned or InTransit status
	// bound to the given order. Returns ObjectNotFoundError when the order
	// has no active route.
	GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*route.Route, error)
}
