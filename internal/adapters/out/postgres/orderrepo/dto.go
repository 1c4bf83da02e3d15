// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The business number carries a unique index; duplicate numbers surface as a
// conflict at insert time.
type OrderDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number              string    `gorm:"uniqueIndex"`
	ClientID            uuid.UUID `gorm:"type:uuid;index"`
	CargoDescription    string
	Weight              float64
	AddressFrom         string
	AddressTo           string
	OrderDate           time.Time
	PlannedDeliveryDate *time.Time
	ActualDeliveryDate  *time.Time
	Cost                float64
	Status              string    `gorm:"index"`
	CreatedBy           uuid.UUID `gorm:"type:uuid"`
	Notes               string
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		Number:              aggregate.Number().String(),
		ClientID:            aggregate.ClientID().Bytes(),
		CargoDescription:    aggregate.CargoDescription(),
		Weight:              aggregate.Weight(),
		AddressFrom:         aggregate.AddressFrom(),
		AddressTo:           aggregate.AddressTo(),
		OrderDate:           aggregate.OrderDate(),
		PlannedDeliveryDate: aggregate.PlannedDeliveryDate(),
		ActualDeliveryDate:  aggregate.ActualDeliveryDate(),
		Cost:                aggregate.Cost(),
		Status:              aggregate.Status().String(),
		CreatedBy:           aggregate.CreatedBy().Bytes(),
		Notes:               aggregate.Notes(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := order.NumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		number,
		clientID,
		dto.CargoDescription,
		dto.Weight,
		dto.AddressFrom,
		dto.AddressTo,
		dto.OrderDate,
		dto.PlannedDeliveryDate,
		dto.ActualDeliveryDate,
		dto.Cost,
		status,
		createdBy,
		dto.Notes,
	)
}
