package queries_test

import (
	"context"
	"testing"
	"time"

	"logistrans/internal/adapters/out/postgres"
	"logistrans/internal/core/application/usecases/queries"
	"logistrans/internal/core/domain/model/client"
	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/notification"
	"logistrans/internal/core/domain/model/order"
	"logistrans/internal/core/domain/model/vehicle"
	"logistrans/internal/core/ports"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// QueryHandlersIntegrationTestSuite exercises the raw-SQL read side against a
// SQLite database seeded through the write-side repositories.
type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	db *gorm.DB
}

func (s *QueryHandlersIntegrationTestSuite) SetupSuite() {
	db, err := gorm.Open(sqlite.Open("file:queries?mode=memory&cache=shared"), &gorm.Config{})
	s.Require().NoError(err)
	s.db = db

	s.Require().NoError(postgres.Migrate(db))
}

func (s *QueryHandlersIntegrationTestSuite) SetupTest() {
	for _, table := range []string{
		"notifications", "order_status_history", "routes", "warehouse_items",
		"orders", "drivers", "vehicles", "clients", "users",
	} {
		s.Require().NoError(s.db.Exec("DELETE FROM " + table).Error)
	}
}

// repos returns an unbegun unit of work used purely for seeding.
func (s *QueryHandlersIntegrationTestSuite) repos() ports.UnitOfWork {
	return postgres.NewGormUnitOfWorkFactory(s.db).Create()
}

func (s *QueryHandlersIntegrationTestSuite) seedClient(name string) *client.Client {
	c, err := client.NewClient(
		kernel.NewUUID(), name, "gate 4", "ops@example.com", "+4712345678", time.Now().UTC(),
	)
	s.Require().NoError(err)
	s.Require().NoError(s.repos().ClientRepository().Add(context.Background(), c))
	return c
}

func (s *QueryHandlersIntegrationTestSuite) seedOrder(clientID kernel.UUID, status order.Status) *order.Order {
	now := time.Now().UTC()
	ord, err := order.NewOrder(
		kernel.NewUUID(), order.NewNumber(now), clientID,
		"palletized electronics", 340,
		"12 Depot Lane", "34 Harbour Road",
		now, nil, 1250, kernel.NewUUID(), "",
	)
	s.Require().NoError(err)
	if status != order.Created {
		s.Require().NoError(ord.ChangeStatus(status))
	}
	s.Require().NoError(s.repos().OrderRepository().Add(context.Background(), ord))
	return ord
}

func (s *QueryHandlersIntegrationTestSuite) seedVehicle(plate string, assigned bool) *vehicle.Vehicle {
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "Volvo", "FH16", plate, 20, 150000, 120000)
	s.Require().NoError(err)
	if assigned {
		s.Require().NoError(v.Assign())
	}
	s.Require().NoError(s.repos().VehicleRepository().Add(context.Background(), v))
	return v
}

func (s *QueryHandlersIntegrationTestSuite) TestGetAvailableVehicles() {
	ctx := context.Background()
	s.seedVehicle("ZZ999XX", false)
	s.seedVehicle("AA111BB", false)
	s.seedVehicle("MM555NN", true)

	handler := queries.NewGetAvailableVehiclesQueryHandler(s.db)
	result, err := handler.Handle(ctx, queries.NewGetAvailableVehiclesQuery())

	s.Require().NoError(err)
	s.Require().Len(result, 2)
	s.Equal("AA111BB", result[0].LicensePlate)
	s.Equal("ZZ999XX", result[1].LicensePlate)
}

func (s *QueryHandlersIntegrationTestSuite) TestGetAvailableVehicles_EmptyDatabase() {
	handler := queries.NewGetAvailableVehiclesQueryHandler(s.db)
	result, err := handler.Handle(context.Background(), queries.NewGetAvailableVehiclesQuery())

	s.Require().NoError(err)
	s.NotNil(result)
	s.Empty(result)
}

func (s *QueryHandlersIntegrationTestSuite) TestGetOrders_StatusFilter() {
	ctx := context.Background()
	testClient := s.seedClient("Northway Retail")
	s.seedOrder(testClient.ID(), order.Created)
	inTransit := s.seedOrder(testClient.ID(), order.InTransit)

	status := order.InTransit
	query, err := queries.NewGetOrdersQuery(&status, nil)
	s.Require().NoError(err)

	handler := queries.NewGetOrdersQueryHandler(s.db)
	result, err := handler.Handle(ctx, query)

	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.True(result[0].ID.IsEqual(inTransit.ID()))
	s.Equal("Northway Retail", result[0].ClientName)
	s.Equal(order.InTransit.String(), result[0].Status)
}

func (s *QueryHandlersIntegrationTestSuite) TestGetOrders_ClientFilter() {
	ctx := context.Background()
	firstClient := s.seedClient("Northway Retail")
	secondClient := s.seedClient("Harbour Freight")
	s.seedOrder(firstClient.ID(), order.Created)
	wanted := s.seedOrder(secondClient.ID(), order.Created)

	clientID := secondClient.ID()
	query, err := queries.NewGetOrdersQuery(nil, &clientID)
	s.Require().NoError(err)

	handler := queries.NewGetOrdersQueryHandler(s.db)
	result, err := handler.Handle(ctx, query)

	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.True(result[0].ID.IsEqual(wanted.ID()))
	s.Equal("Harbour Freight", result[0].ClientName)
}

func (s *QueryHandlersIntegrationTestSuite) TestGetNotifications_UnreadFilter() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	now := time.Now().UTC()

	unread, err := notification.NewNotification(userID, "first", notification.CategoryOrderCreated, nil, now)
	s.Require().NoError(err)
	read, err := notification.NewNotification(userID, "second", notification.CategoryOrderCreated, nil, now)
	s.Require().NoError(err)
	s.Require().NoError(read.MarkRead())
	other, err := notification.NewNotification(kernel.NewUUID(), "third", notification.CategoryOrderCreated, nil, now)
	s.Require().NoError(err)

	repo := s.repos().NotificationRepository()
	s.Require().NoError(repo.Add(ctx, unread))
	s.Require().NoError(repo.Add(ctx, read))
	s.Require().NoError(repo.Add(ctx, other))

	query, err := queries.NewGetNotificationsQuery(userID, true)
	s.Require().NoError(err)

	handler := queries.NewGetNotificationsQueryHandler(s.db)
	result, err := handler.Handle(ctx, query)

	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.Equal("first", result[0].Message)
	s.False(result[0].IsRead)

	query, err = queries.NewGetNotificationsQuery(userID, false)
	s.Require().NoError(err)
	result, err = handler.Handle(ctx, query)
	s.Require().NoError(err)
	s.Len(result, 2)
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
