package queries

import (
	"errors"

	"logistrans/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// GetDashboardQuery retrieves the operational counters shown on the
// logistician's landing screen.
type GetDashboardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardQuery creates a dashboard query.
func NewGetDashboardQuery() GetDashboardQuery {
	return GetDashboardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// GetDashboardQueryResponse aggregates the system-wide counters.
type GetDashboardQueryResponse struct {
	OrdersByStatus   map[string]int
	FreeVehicles     int
	AvailableDrivers int
	ActiveRoutes     int
	StoredItems      int
}
