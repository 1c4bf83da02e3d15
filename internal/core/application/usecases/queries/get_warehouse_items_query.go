package queries

import (
	"errors"
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/pkg/guard"
)

var ErrGetWarehouseItemsQueryIsNotConstructed = errors.New(
	"GetWarehouseItemsQuery must be created via NewGetWarehouseItemsQuery constructor",
)

// GetWarehouseItemsQuery retrieves the warehouse inventory.
type GetWarehouseItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetWarehouseItemsQuery creates a query for the warehouse inventory.
func NewGetWarehouseItemsQuery() GetWarehouseItemsQuery {
	return GetWarehouseItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetWarehouseItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetWarehouseItemsQueryIsNotConstructed)
}

// GetWarehouseItemsQueryResponse represents one inventory row in the read model.
type GetWarehouseItemsQueryResponse struct {
	ID            kernel.UUID
	CargoName     string
	Quantity      int
	StorageZone   string
	Volume        float64
	Status        string
	ArrivalDate   time.Time
	DepartureDate *time.Time
	OrderNumber   *string
}
