// Package routerepo provides data transfer objects and mapping functions for route persistence.
package routerepo

import (
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO represents the database structure for persisting route aggregates.
type RouteDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;index"`
	DriverID         uuid.UUID `gorm:"type:uuid;index"`
	VehicleID        uuid.UUID `gorm:"type:uuid;index"`
	StartPoint       string
	EndPoint         string
	PlannedStartTime *time.Time
	PlannedEndTime   *time.Time
	ActualStartTime  *time.Time
	ActualEndTime    *time.Time
	Status           string `gorm:"index"`
	DistanceKm       *float64
	Notes            string
}

// TableName specifies the database table name for route entities.
func (RouteDTO) TableName() string {
	return "routes"
}

func fromDomain(aggregate *route.Route) RouteDTO {
	return RouteDTO{
		ID:               aggregate.ID().Bytes(),
		OrderID:          aggregate.OrderID().Bytes(),
		DriverID:         aggregate.DriverID().Bytes(),
		VehicleID:        aggregate.VehicleID().Bytes(),
		StartPoint:       aggregate.StartPoint(),
		EndPoint:         aggregate.EndPoint(),
		PlannedStartTime: aggregate.PlannedStartTime(),
		PlannedEndTime:   aggregate.PlannedEndTime(),
		ActualStartTime:  aggregate.ActualStartTime(),
		ActualEndTime:    aggregate.ActualEndTime(),
		Status:           aggregate.Status().String(),
		DistanceKm:       aggregate.DistanceKm(),
		Notes:            aggregate.Notes(),
	}
}

func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	status, err := route.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return route.RestoreRoute(
		id,
		orderID,
		driverID,
		vehicleID,
		dto.StartPoint,
		dto.EndPoint,
		dto.PlannedStartTime,
		dto.PlannedEndTime,
		dto.ActualStartTime,
		dto.ActualEndTime,
		status,
		dto.DistanceKm,
		dto.Notes,
	)
}
