package vehiclerepo

import (
	"context"
	"errors"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/vehicle"
	"logistrans/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// GormVehicleRepository implements VehicleRepository using GORM.
type GormVehicleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB, tracker aggregateTracker) *GormVehicleRepository {
	return &GormVehicleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vehicle to the database.
// A duplicate license plate is reported as ResourceConflictError.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return errs.NewResourceConflictErrorWithCause("vehicle", aggregate.LicensePlate(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing vehicle to the database.
func (r *GormVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&VehicleDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a vehicle by ID.
func (r *GormVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ClaimFree atomically moves the vehicle from Free to Assigned.
//
// The guard is a conditional UPDATE on the status column: zero affected rows
// with an existing vehicle means another transaction claimed it first, and
// the caller gets ResourceConflictError.
func (r *GormVehicleRepository) ClaimFree(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).
		Model(&VehicleDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), vehicle.Free.String()).
		Update("status", vehicle.Assigned.String())
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		if _, err := r.Get(ctx, id); err != nil {
			return nil, err
		}
		return nil, errs.NewResourceConflictError("vehicle", id.String())
	}

	aggregate, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return aggregate, nil
}

// GetAllDueForMaintenance retrieves vehicles whose mileage reached the next
// maintenance threshold, excluding those already under maintenance.
func (r *GormVehicleRepository) GetAllDueForMaintenance(ctx context.Context) ([]*vehicle.Vehicle, error) {
	var dtos []VehicleDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "current_mileage >= next_maintenance_km AND status <> ?",
			vehicle.UnderMaintenance.String(),
		).Error
	if err != nil {
		return nil, err
	}

	vehicles := make([]*vehicle.Vehicle, 0, len(dtos))
	for _, dto := range dtos {
		v, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, nil
}
