package ports

import (
	"context"

	"logistrans/internal/core/domain/model/driver"
	"logistrans/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
//
// ClaimAvailable mirrors VehicleRepository.ClaimFree: a compare-and-set on the
// availability flag so concurrent assignments cannot double-book a driver.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetByUser retrieves the driver profile linked to the given user account.
	// Returns ObjectNotFoundError when the user has no driver profile.
	GetByUser(ctx context.Context, userID kernel.UUID) (*driver.Driver, error)

	// ClaimAvailable atomically marks the driver busy.
	// Returns ResourceConflictError when the driver is no longer available,
	// ObjectNotFoundError when they do not exist.
	ClaimAvailable(ctx context.Context, id kernel.UUID) (*driver.Driver, error)
}
