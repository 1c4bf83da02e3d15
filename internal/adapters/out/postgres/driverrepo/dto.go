// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
package driverrepo

import (
	"logistrans/internal/core/domain/model/driver"
	"logistrans/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
// The availability flag backs the compare-and-set claim used during transport
// assignment.
type DriverDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID          *uuid.UUID `gorm:"type:uuid;index"`
	FullName        string
	Phone           string
	LicenseNumber   string
	ExperienceYears int
	IsAvailable     bool `gorm:"index"`
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	var userID *uuid.UUID
	if id := aggregate.UserID(); id != nil {
		raw := id.Bytes()
		userID = &raw
	}

	return DriverDTO{
		ID:              aggregate.ID().Bytes(),
		UserID:          userID,
		FullName:        aggregate.FullName(),
		Phone:           aggregate.Phone(),
		LicenseNumber:   aggregate.LicenseNumber(),
		ExperienceYears: aggregate.ExperienceYears(),
		IsAvailable:     aggregate.IsAvailable(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var userID *kernel.UUID
	if dto.UserID != nil {
		uID, userErr := kernel.UUIDFromBytes((*dto.UserID)[:])
		if userErr != nil {
			return nil, userErr
		}
		userID = &uID
	}

	return driver.RestoreDriver(
		id,
		userID,
		dto.FullName,
		dto.Phone,
		dto.LicenseNumber,
		dto.ExperienceYears,
		dto.IsAvailable,
	)
}
