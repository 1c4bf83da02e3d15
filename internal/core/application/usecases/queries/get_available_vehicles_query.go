package queries

import (
	"errors"
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/pkg/guard"
)

var ErrGetAvailableVehiclesQueryIsNotConstructed = errors.New(
	"GetAvailableVehiclesQuery must be created via NewGetAvailableVehiclesQuery constructor",
)

// GetAvailableVehiclesQuery retrieves vehicles free for assignment.
type GetAvailableVehiclesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableVehiclesQuery creates a query for free vehicles.
func NewGetAvailableVehiclesQuery() GetAvailableVehiclesQuery {
	return GetAvailableVehiclesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableVehiclesQueryIsNotConstructed)
}

// GetAvailableVehiclesQueryResponse represents one free vehicle in the read model.
type GetAvailableVehiclesQueryResponse struct {
	ID                  kernel.UUID
	Brand               string
	Model               string
	LicensePlate        string
	Capacity            float64
	CurrentMileage      int
	NextMaintenanceKm   int
	LastMaintenanceDate *time.Time
}
