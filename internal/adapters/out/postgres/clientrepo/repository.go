package clientrepo

import (
	"context"
	"errors"

	"logistrans/internal/core/domain/model/client"
	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormClientRepository implements ClientRepository using GORM.
type GormClientRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormClientRepository creates a new GORM client repository.
func NewGormClientRepository(db *gorm.DB, tracker aggregateTracker) *GormClientRepository {
	return &GormClientRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new client to the database.
func (r *GormClientRepository) Add(ctx context.Context, aggregate *client.Client) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing client to the database.
func (r *GormClientRepository) Update(ctx context.Context, aggregate *client.Client) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ClientDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a client by ID.
func (r *GormClientRepository) Get(ctx context.Context, id kernel.UUID) (*client.Client, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ClientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("client", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
