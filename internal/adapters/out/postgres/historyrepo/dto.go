// Package historyrepo provides data transfer objects and mapping functions
// for the append-only order status history.
package historyrepo

import (
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// StatusChangeDTO represents the database structure for one history entry.
// OldStatus is null for the entry recorded at order creation.
type StatusChangeDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	OldStatus *string
	NewStatus string
	ChangedBy uuid.UUID `gorm:"type:uuid"`
	ChangedAt time.Time `gorm:"index"`
	Note      string
}

// TableName specifies the database table name for status history entries.
func (StatusChangeDTO) TableName() string {
	return "order_status_history"
}

func fromDomain(entry *order.StatusChange) StatusChangeDTO {
	var oldStatus *string
	if s := entry.OldStatus(); s != nil {
		str := s.String()
		oldStatus = &str
	}

	return StatusChangeDTO{
		ID:        entry.ID().Bytes(),
		OrderID:   entry.OrderID().Bytes(),
		OldStatus: oldStatus,
		NewStatus: entry.NewStatus().String(),
		ChangedBy: entry.ChangedBy().Bytes(),
		ChangedAt: entry.ChangedAt(),
		Note:      entry.Note(),
	}
}

func toDomain(dto StatusChangeDTO) (*order.StatusChange, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	changedBy, err := kernel.UUIDFromBytes(dto.ChangedBy[:])
	if err != nil {
		return nil, err
	}

	var oldStatus *order.Status
	if dto.OldStatus != nil {
		s, statusErr := order.StatusFromString(*dto.OldStatus)
		if statusErr != nil {
			return nil, statusErr
		}
		oldStatus = &s
	}

	newStatus, err := order.StatusFromString(dto.NewStatus)
	if err != nil {
		return nil, err
	}

	return order.RestoreStatusChange(
		id,
		orderID,
		oldStatus,
		newStatus,
		changedBy,
		dto.ChangedAt,
		dto.Note,
	)
}
