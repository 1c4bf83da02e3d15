// Package userrepo provides data transfer objects and mapping functions for user persistence.
package userrepo

import (
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user accounts.
// The login carries a unique index.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Login        string    `gorm:"uniqueIndex"`
	PasswordHash string
	FullName     string
	Role         string `gorm:"index"`
	IsActive     bool
	CreatedAt    time.Time
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Login:        aggregate.Login(),
		PasswordHash: aggregate.PasswordHash(),
		FullName:     aggregate.FullName(),
		Role:         aggregate.Role().String(),
		IsActive:     aggregate.IsActive(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := kernel.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id,
		dto.Login,
		dto.PasswordHash,
		dto.FullName,
		role,
		dto.IsActive,
		dto.CreatedAt,
	)
}
