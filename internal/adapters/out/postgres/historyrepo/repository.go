package historyrepo

import (
	"context"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormStatusHistoryRepository implements StatusHistoryRepository using GORM.
// The table is append-only; entries are never updated or deleted.
type GormStatusHistoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStatusHistoryRepository creates a new GORM status history repository.
func NewGormStatusHistoryRepository(db *gorm.DB, tracker aggregateTracker) *GormStatusHistoryRepository {
	return &GormStatusHistoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Append persists a new status change entry.
func (r *GormStatusHistoryRepository) Append(ctx context.Context, entry *order.StatusChange) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// ListByOrder retrieves every status change of an order in chronological order.
func (r *GormStatusHistoryRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.StatusChange, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StatusChangeDTO
	err := r.db.WithContext(ctx).
		Order("changed_at, id").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*order.StatusChange, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
