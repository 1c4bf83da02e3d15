package queries

import (
	"errors"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/pkg/guard"
)

var ErrGetAvailableDriversQueryIsNotConstructed = errors.New(
	"GetAvailableDriversQuery must be created via NewGetAvailableDriversQuery constructor",
)

// GetAvailableDriversQuery retrieves drivers free for assignment.
type GetAvailableDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableDriversQuery creates a query for available drivers.
func NewGetAvailableDriversQuery() GetAvailableDriversQuery {
	return GetAvailableDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDriversQueryIsNotConstructed)
}

// GetAvailableDriversQueryResponse represents one available driver in the read model.
type GetAvailableDriversQueryResponse struct {
	ID              kernel.UUID
	FullName        string
	Phone           string
	LicenseNumber   string
	ExperienceYears int
}
