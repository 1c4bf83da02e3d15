package commands_test

import (
	"testing"
	"time"

	"logistrans/internal/core/domain/model/client"
	"logistrans/internal/core/domain/model/driver"
	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/order"
	"logistrans/internal/core/domain/model/route"
	"logistrans/internal/core/domain/model/user"
	"logistrans/internal/core/domain/model/vehicle"
	"logistrans/internal/core/domain/model/warehouse"

	"github.com/stretchr/testify/require"
)

func createTestClient(t *testing.T) *client.Client {
	t.Helper()

	c, err := client.NewClient(
		kernel.NewUUID(),
		"Northway Retail",
		"warehouse gate 4",
		"ops@northway.example",
		"+4712345678",
		time.Now().UTC(),
	)
	require.NoError(t, err)

	return c
}

func createTestOrder(t *testing.T, clientID kernel.UUID) *order.Order {
	t.Helper()

	now := time.Now().UTC()
	ord, err := order.NewOrder(
		kernel.NewUUID(),
		order.NewNumber(now),
		clientID,
		"palletized electronics",
		340,
		"12 Depot Lane",
		"34 Harbour Road",
		now,
		nil,
		1250,
		kernel.NewUUID(),
		"",
	)
	require.NoError(t, err)

	return ord
}

func createAssignedTestOrder(t *testing.T, clientID kernel.UUID) *order.Order {
	t.Helper()

	ord := createTestOrder(t, clientID)
	require.NoError(t, ord.Assign())

	return ord
}

func createTestVehicle(t *testing.T) *vehicle.Vehicle {
	t.Helper()

	v, err := vehicle.NewVehicle(kernel.NewUUID(), "Volvo", "FH16", "AB123CD", 20, 150000, 120000)
	require.NoError(t, err)

	return v
}

func createTestDriver(t *testing.T, userID *kernel.UUID) *driver.Driver {
	t.Helper()

	d, err := driver.NewDriver(kernel.NewUUID(), userID, "Lars Henriksen", "+4798765432", "DL-204518", 7)
	require.NoError(t, err)

	return d
}

func createTestRoute(t *testing.T, orderID, driverID, vehicleID kernel.UUID) *route.Route {
	t.Helper()

	r, err := route.NewRoute(
		kernel.NewUUID(),
		orderID,
		driverID,
		vehicleID,
		"12 Depot Lane",
		"34 Harbour Road",
		nil,
		nil,
	)
	require.NoError(t, err)

	return r
}

func createTestUser(t *testing.T, role kernel.Role) *user.User {
	t.Helper()

	u, err := user.NewUser(
		kernel.NewUUID(),
		"dispatcher",
		"$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		"Dispatch Operator",
		role,
		time.Now().UTC(),
	)
	require.NoError(t, err)

	return u
}

func createTestItem(t *testing.T) *warehouse.Item {
	t.Helper()

	i, err := warehouse.NewItem(kernel.NewUUID(), "spare engine parts", 12, "A-3", 1.8, time.Now().UTC())
	require.NoError(t, err)

	return i
}
