// Package warehouserepo provides data transfer objects and mapping functions
// for warehouse item persistence.
package warehouserepo

import (
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for persisting warehouse items.
type ItemDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CargoName     string
	Quantity      int
	StorageZone   string `gorm:"index"`
	Volume        float64
	Status        string `gorm:"index"`
	ArrivalDate   time.Time
	DepartureDate *time.Time
	OrderID       *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for warehouse items.
func (ItemDTO) TableName() string {
	return "warehouse_items"
}

func fromDomain(aggregate *warehouse.Item) ItemDTO {
	var orderID *uuid.UUID
	if id := aggregate.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return ItemDTO{
		ID:            aggregate.ID().Bytes(),
		CargoName:     aggregate.CargoName(),
		Quantity:      aggregate.Quantity(),
		StorageZone:   aggregate.StorageZone(),
		Volume:        aggregate.Volume(),
		Status:        aggregate.Status(),
		ArrivalDate:   aggregate.ArrivalDate(),
		DepartureDate: aggregate.DepartureDate(),
		OrderID:       orderID,
	}
}

func toDomain(dto ItemDTO) (*warehouse.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &oID
	}

	return warehouse.RestoreItem(
		id,
		dto.CargoName,
		dto.Quantity,
		dto.StorageZone,
		dto.Volume,
		dto.Status,
		dto.ArrivalDate,
		dto.DepartureDate,
		orderID,
	)
}
