package driver_test

import (
	"testing"

	"logistrans/internal/core/domain/model/driver"
	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createValidDriver(t *testing.T) *driver.Driver {
	t.Helper()

	d, err := driver.NewDriver(kernel.NewUUID(), nil, "Jamie Carter", "+1555123", "DL-99821", 7)
	require.NoError(t, err)
	require.NotNil(t, d)
	return d
}

func TestNewDriver(t *testing.T) {
	t.Run("should create available driver with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		userID := kernel.NewUUID()

		d, err := driver.NewDriver(id, &userID, "Jamie Carter", "+1555123", "DL-99821", 7)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(id))
		require.NotNil(t, d.UserID())
		assert.True(t, d.UserID().IsEqual(userID))
		assert.Equal(t, "Jamie Carter", d.FullName())
		assert.Equal(t, "DL-99821", d.LicenseNumber())
		assert.Equal(t, 7, d.ExperienceYears())
		assert.True(t, d.IsAvailable())
	})

	t.Run("should allow driver without a user account", func(t *testing.T) {
		d := createValidDriver(t)
		assert.Nil(t, d.UserID())
	})

	t.Run("should return error for empty full name", func(t *testing.T) {
		d, err := driver.NewDriver(kernel.NewUUID(), nil, "", "", "DL-99821", 7)

		require.Error(t, err)
		assert.Nil(t, d)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should return error for negative experience", func(t *testing.T) {
		d, err := driver.NewDriver(kernel.NewUUID(), nil, "Jamie Carter", "", "DL-99821", -1)

		require.Error(t, err)
		assert.Nil(t, d)
	})
}

func TestDriverMarkBusy(t *testing.T) {
	t.Run("should claim an available driver", func(t *testing.T) {
		d := createValidDriver(t)

		require.NoError(t, d.MarkBusy())
		assert.False(t, d.IsAvailable())
	})

	t.Run("claiming a busy driver is a conflict", func(t *testing.T) {
		d := createValidDriver(t)
		require.NoError(t, d.MarkBusy())

		err := d.MarkBusy()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestDriverMarkAvailable(t *testing.T) {
	t.Run("should free a busy driver", func(t *testing.T) {
		d := createValidDriver(t)
		require.NoError(t, d.MarkBusy())

		require.NoError(t, d.MarkAvailable())
		assert.True(t, d.IsAvailable())
	})

	t.Run("freeing an available driver is rejected", func(t *testing.T) {
		d := createValidDriver(t)

		err := d.MarkAvailable()

		require.Error(t, err)
		assert.True(t, d.IsAvailable())
	})
}
