// Package clientrepo provides data transfer objects and mapping functions for client persistence.
package clientrepo

import (
	"time"

	"logistrans/internal/core/domain/model/client"
	"logistrans/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ClientDTO represents the database structure for persisting client aggregates.
type ClientDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"index"`
	ContactInfo string
	Email       string
	Phone       string
	CreatedAt   time.Time
}

// TableName specifies the database table name for client entities.
func (ClientDTO) TableName() string {
	return "clients"
}

func fromDomain(aggregate *client.Client) ClientDTO {
	return ClientDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		ContactInfo: aggregate.ContactInfo(),
		Email:       aggregate.Email(),
		Phone:       aggregate.Phone(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return client.RestoreClient(
		id,
		dto.Name,
		dto.ContactInfo,
		dto.Email,
		dto.Phone,
		dto.CreatedAt,
	)
}
