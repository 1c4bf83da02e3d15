package user_test

import (
	"testing"
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/user"
	"logistrans/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	createdAt := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	t.Run("should create active user with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()

		u, err := user.NewUser(id, "j.carter", "$2a$10$hash", "Jamie Carter",
			kernel.RoleLogistician, createdAt)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.True(t, u.ID().IsEqual(id))
		assert.Equal(t, "j.carter", u.Login())
		assert.Equal(t, "$2a$10$hash", u.PasswordHash())
		assert.Equal(t, "Jamie Carter", u.FullName())
		assert.Equal(t, kernel.RoleLogistician, u.Role())
		assert.True(t, u.IsActive())
		assert.Equal(t, createdAt, u.CreatedAt())
	})

	t.Run("should return error for empty login", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "", "$2a$10$hash", "Jamie Carter",
			kernel.RoleDriver, createdAt)

		require.Error(t, err)
		assert.Nil(t, u)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should return error for empty password hash", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "j.carter", "", "Jamie Carter",
			kernel.RoleDriver, createdAt)

		require.Error(t, err)
		assert.Nil(t, u)
	})

	t.Run("should return error for invalid role", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "j.carter", "$2a$10$hash", "Jamie Carter",
			kernel.RoleUnknown, createdAt)

		require.Error(t, err)
		assert.Nil(t, u)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestUserDeactivate(t *testing.T) {
	u, err := user.NewUser(kernel.NewUUID(), "j.carter", "$2a$10$hash", "Jamie Carter",
		kernel.RoleAdmin, time.Now().UTC())
	require.NoError(t, err)

	u.Deactivate()

	assert.False(t, u.IsActive())
}

func TestRestoreUser(t *testing.T) {
	t.Run("should restore deactivated user", func(t *testing.T) {
		u, err := user.RestoreUser(kernel.NewUUID(), "j.carter", "$2a$10$hash",
			"Jamie Carter", kernel.RoleDriver, false, time.Now().UTC())

		require.NoError(t, err)
		assert.False(t, u.IsActive())
	})
}
