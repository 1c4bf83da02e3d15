package ports

import (
	"context"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
//
// ClaimFree is the concurrency guard for transport assignment: it performs a
// compare-and-set on the vehicle status so that two concurrent assignments of
// the same vehicle cannot both succeed.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate to storage.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle aggregate.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// ClaimFree atomically moves the vehicle from Free to Assigned.
	// Returns ResourceConflictError when the vehicle is no longer free,
	// ObjectNotFoundError when it does not exist.
	ClaimFree(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetAllDueForMaintenance retrieves vehicles whose mileage has reached
	// their next scheduled maintenance threshold.
	GetAllDueForMaintenance(ctx context.Context) ([]*vehicle.Vehicle, error)
}
