package ports

import (
	"context"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user aggregate.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByLogin retrieves a user aggregate by its unique login.
	// Used by authentication.
	GetByLogin(ctx context.Context, login string) (*user.User, error)

	// GetAllActiveByRole retrieves every active user holding the given role.
	// Used to fan out notifications to logisticians and admins.
	GetAllActiveByRole(ctx context.Context, role kernel.Role) ([]*user.User, error)
}
