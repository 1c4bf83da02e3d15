package driverrepo

import (
	"context"
	"errors"

	"logistrans/internal/core/domain/model/driver"
	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new driver to the database.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
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

// Update saves an existing driver to the database.
//
// Uses Select to force writing is_available: GORM's Updates skips zero
// values, and false is the zero value of bool.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a driver by ID.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUser retrieves the driver profile linked to a user account.
func (r *GormDriverRepository) GetByUser(ctx context.Context, userID kernel.UUID) (*driver.Driver, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver for user", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ClaimAvailable atomically marks the driver busy.
//
// Mirrors the vehicle claim: a conditional UPDATE on the availability flag,
// zero affected rows on an existing driver means a concurrent claim won.
func (r *GormDriverRepository) ClaimAvailable(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("id = ? AND is_available = ?", id.Bytes(), true).
		Update("is_available", false)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		if _, err := r.Get(ctx, id); err != nil {
			return nil, err
		}
		return nil, errs.NewResourceConflictError("driver", id.String())
	}

	aggregate, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return aggregate, nil
}
