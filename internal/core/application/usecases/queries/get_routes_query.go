package queries

import (
	"errors"
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/pkg/guard"
)

var ErrGetRoutesQueryIsNotConstructed = errors.New(
	"GetRoutesQuery must be created via NewGetRoutesQuery constructor",
)

// GetRoutesQuery retrieves routes, optionally only those of one driver.
// Drivers see their own routes; logisticians and admins pass a nil filter.
type GetRoutesQuery struct {
	driverID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRoutesQuery creates a query to retrieve routes.
func NewGetRoutesQuery(driverID *kernel.UUID) (GetRoutesQuery, error) {
	q := GetRoutesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return GetRoutesQuery{}, err
		}
		q.driverID = driverID
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRoutesQuery) Validate() error {
	return q.guard.Validate(ErrGetRoutesQueryIsNotConstructed)
}

// DriverID returns the driver filter, or nil.
func (q GetRoutesQuery) DriverID() *kernel.UUID { return q.driverID }

// GetRoutesQueryResponse represents one route row in the read model.
type GetRoutesQueryResponse struct {
	ID               kernel.UUID
	OrderNumber      string
	DriverName       string
	VehiclePlate     string
	StartPoint       string
	EndPoint         string
	Status           string
	PlannedStartTime *time.Time
	PlannedEndTime   *time.Time
	ActualStartTime  *time.Time
	ActualEndTime    *time.Time
	DistanceKm       *float64
}
