package userrepo

import (
	"context"
	"errors"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/user"
	"logistrans/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new user to the database.
// A duplicate login is reported as ResourceConflictError.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return errs.NewResourceConflictErrorWithCause("user", aggregate.Login(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing user to the database.
//
// Uses Select to force writing is_active: GORM's Updates skips zero values,
// and false is the zero value of bool.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
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

// Get retrieves a user by ID.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByLogin retrieves a user by login.
func (r *GormUserRepository) GetByLogin(ctx context.Context, login string) (*user.User, error) {
	if login == "" {
		return nil, errs.NewValueIsRequiredError("login")
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "login = ?", login).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", login)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActiveByRole retrieves every active user holding the given role.
func (r *GormUserRepository) GetAllActiveByRole(ctx context.Context, role kernel.Role) ([]*user.User, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}

	var dtos []UserDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "role = ? AND is_active = ?", role.String(), true).Error
	if err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(dtos))
	for _, dto := range dtos {
		u, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, nil
}
