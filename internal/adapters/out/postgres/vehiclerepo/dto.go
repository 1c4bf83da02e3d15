// Package vehiclerepo provides data transfer objects and mapping functions for vehicle persistence.
package vehiclerepo

import (
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle aggregates.
// The license plate carries a unique index. The status column backs the
// compare-and-set claim used during transport assignment.
type VehicleDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Brand               string
	Model               string
	LicensePlate        string `gorm:"uniqueIndex"`
	Capacity            float64
	Status              string `gorm:"index"`
	LastMaintenanceDate *time.Time
	NextMaintenanceKm   int
	CurrentMileage      int
}

// TableName specifies the database table name for vehicle entities.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:                  aggregate.ID().Bytes(),
		Brand:               aggregate.Brand(),
		Model:               aggregate.Model(),
		LicensePlate:        aggregate.LicensePlate(),
		Capacity:            aggregate.Capacity(),
		Status:              aggregate.Status().String(),
		LastMaintenanceDate: aggregate.LastMaintenanceDate(),
		NextMaintenanceKm:   aggregate.NextMaintenanceKm(),
		CurrentMileage:      aggregate.CurrentMileage(),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := vehicle.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(
		id,
		dto.Brand,
		dto.Model,
		dto.LicensePlate,
		dto.Capacity,
		status,
		dto.LastMaintenanceDate,
		dto.NextMaintenanceKm,
		dto.CurrentMileage,
	)
}
