package route_test

import (
	"testing"
	"time"

	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/route"
	"logistrans/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createValidRoute(t *testing.T) *route.Route {
	t.Helper()

	r, err := route.NewRoute(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"12 Depot Lane", "34 Harbour Road", nil, nil)
	require.NoError(t, err)
	require.NotNil(t, r)
	return r
}

func TestNewRoute(t *testing.T) {
	t.Run("should create planned route", func(t *testing.T) {
		driverID := kernel.NewUUID()
		start := time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)
		end := start.Add(6 * time.Hour)

		r, err := route.NewRoute(
			kernel.NewUUID(), kernel.NewUUID(), driverID, kernel.NewUUID(),
			"12 Depot Lane", "34 Harbour Road", &start, &end)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, route.Planned, r.Status())
		assert.True(t, r.DriverID().IsEqual(driverID))
		assert.Equal(t, "12 Depot Lane", r.StartPoint())
		assert.Equal(t, "34 Harbour Road", r.EndPoint())
		assert.Equal(t, &start, r.PlannedStartTime())
		assert.Equal(t, &end, r.PlannedEndTime())
		assert.Nil(t, r.ActualStartTime())
		assert.Nil(t, r.ActualEndTime())
	})

	t.Run("should return error for missing endpoints", func(t *testing.T) {
		r, err := route.NewRoute(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"", "34 Harbour Road", nil, nil)

		require.Error(t, err)
		assert.Nil(t, r)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should return error for invalid identifiers", func(t *testing.T) {
		var invalidID kernel.UUID

		r, err := route.NewRoute(
			kernel.NewUUID(), invalidID, kernel.NewUUID(), kernel.NewUUID(),
			"a", "b", nil, nil)

		require.Error(t, err)
		assert.Nil(t, r)
	})
}

func TestRouteStart(t *testing.T) {
	startedAt := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	t.Run("should start planned route and stamp time", func(t *testing.T) {
		r := createValidRoute(t)

		require.NoError(t, r.Start(startedAt))

		assert.Equal(t, route.InTransit, r.Status())
		require.NotNil(t, r.ActualStartTime())
		assert.Equal(t, startedAt, *r.ActualStartTime())
	})

	t.Run("should reject starting twice", func(t *testing.T) {
		r := createValidRoute(t)
		require.NoError(t, r.Start(startedAt))

		err := r.Start(startedAt.Add(time.Minute))

		require.Error(t, err)
		assert.Equal(t, startedAt, *r.ActualStartTime())
	})
}

func TestRouteComplete(t *testing.T) {
	startedAt := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	completedAt := startedAt.Add(5 * time.Hour)

	t.Run("should complete a route in transit", func(t *testing.T) {
		r := createValidRoute(t)
		require.NoError(t, r.Start(startedAt))

		require.NoError(t, r.Complete(completedAt))

		assert.Equal(t, route.Completed, r.Status())
		require.NotNil(t, r.ActualEndTime())
		assert.Equal(t, completedAt, *r.ActualEndTime())
	})

	t.Run("should complete a planned route forced by a delivery edit", func(t *testing.T) {
		r := createValidRoute(t)

		require.NoError(t, r.Complete(completedAt))
		assert.Equal(t, route.Completed, r.Status())
	})

	t.Run("should reject completing twice", func(t *testing.T) {
		r := createValidRoute(t)
		require.NoError(t, r.Complete(completedAt))

		err := r.Complete(completedAt.Add(time.Minute))

		require.Error(t, err)
		assert.Equal(t, completedAt, *r.ActualEndTime())
	})
}

func TestRouteIsOwnedBy(t *testing.T) {
	r := createValidRoute(t)

	assert.True(t, r.IsOwnedBy(r.DriverID()))
	assert.False(t, r.IsOwnedBy(kernel.NewUUID()))
}

func TestRouteStatusIsActive(t *testing.T) {
	assert.True(t, route.Planned.IsActive())
	assert.True(t, route.InTransit.IsActive())
	assert.False(t, route.Completed.IsActive())
	assert.False(t, route.Unknown.IsActive())
}

func TestRestoreRoute(t *testing.T) {
	t.Run("should restore route with persisted state", func(t *testing.T) {
		start := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
		end := start.Add(5 * time.Hour)
		distance := 320.5

		r, err := route.RestoreRoute(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"a", "b", nil, nil, &start, &end, route.Completed, &distance, "toll road")

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, route.Completed, r.Status())
		assert.Equal(t, &distance, r.DistanceKm())
		assert.Equal(t, "toll road", r.Notes())
	})

	t.Run("should reject unknown persisted status", func(t *testing.T) {
		r, err := route.RestoreRoute(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"a", "b", nil, nil, nil, nil, route.Unknown, nil, "")

		require.Error(t, err)
		assert.Nil(t, r)
	})
}
