package commands_test

import (
	"errors"
	"testing"

	"logistrans/internal/core/application/usecases/commands"
	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/notification"
	"logistrans/internal/core/domain/model/order"
	"logistrans/internal/core/domain/model/user"
	"logistrans/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createOrderCommand(t *testing.T, clientID kernel.UUID, vehicleID, driverID *kernel.UUID) commands.CreateOrderCommand {
	t.Helper()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		clientID,
		"palletized electronics",
		340,
		"12 Depot Lane",
		"34 Harbour Road",
		nil,
		1250,
		"",
		kernel.NewUUID(),
		vehicleID,
		driverID,
	)
	require.NoError(t, err)

	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testClient := createTestClient(t)
	logistician := createTestUser(t, kernel.RoleLogistician)
	cmd := createOrderCommand(t, testClient.ID(), nil, nil)

	clientRepo := new(MockClientRepository)
	orderRepo := new(MockOrderRepository)
	historyRepo := new(MockStatusHistoryRepository)
	userRepo := new(MockUserRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ClientRepository").Return(clientRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("StatusHistoryRepository").Return(historyRepo)
	uow.On("UserRepository").Return(userRepo)
	uow.On("NotificationRepository").Return(notificationRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	clientRepo.On("Get", ctx, testClient.ID()).Return(testClient, nil).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	historyRepo.On("Append", ctx, mock.AnythingOfType("*order.StatusChange")).Return(nil).Once()
	userRepo.On("GetAllActiveByRole", ctx, kernel.RoleLogistician).
		Return([]*user.User{logistician}, nil).Once()
	notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	notificationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_SuccessWithTransport(t *testing.T) {
	ctx := t.Context()

	testClient := createTestClient(t)
	testVehicle := createTestVehicle(t)
	driverUserID := kernel.NewUUID()
	testDriver := createTestDriver(t, &driverUserID)
	logistician := createTestUser(t, kernel.RoleLogistician)

	vehicleID := testVehicle.ID()
	driverID := testDriver.ID()
	cmd := createOrderCommand(t, testClient.ID(), &vehicleID, &driverID)

	clientRepo := new(MockClientRepository)
	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	driverRepo := new(MockDriverRepository)
	routeRepo := new(MockRouteRepository)
	historyRepo := new(MockStatusHistoryRepository)
	userRepo := new(MockUserRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ClientRepository").Return(clientRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("VehicleRepository").Return(vehicleRepo)
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("RouteRepository").Return(routeRepo)
	uow.On("StatusHistoryRepository").Return(historyRepo)
	uow.On("UserRepository").Return(userRepo)
	uow.On("NotificationRepository").Return(notificationRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	var savedOrder *order.Order
	clientRepo.On("Get", ctx, testClient.ID()).Return(testClient, nil).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) { savedOrder = args.Get(1).(*order.Order) }).
		Return(nil).Once()
	vehicleRepo.On("ClaimFree", ctx, testVehicle.ID()).Return(testVehicle, nil).Once()
	driverRepo.On("ClaimAvailable", ctx, testDriver.ID()).Return(testDriver, nil).Once()
	routeRepo.On("Add", ctx, mock.AnythingOfType("*route.Route")).Return(nil).Once()
	historyRepo.On("Append", ctx, mock.AnythingOfType("*order.StatusChange")).Return(nil).Twice()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	userRepo.On("GetAllActiveByRole", ctx, kernel.RoleLogistician).
		Return([]*user.User{logistician}, nil).Once()

	// One notification for the assigned driver, one for the logistician.
	notificationRepo.On("Add", ctx, mock.MatchedBy(func(n *notification.Notification) bool {
		return n.UserID().IsEqual(driverUserID) && n.Category() == notification.CategoryOrderAssigned
	})).Return(nil).Once()
	notificationRepo.On("Add", ctx, mock.MatchedBy(func(n *notification.Notification) bool {
		return n.UserID().IsEqual(logistician.ID()) && n.Category() == notification.CategoryOrderCreated
	})).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, savedOrder)
	assert.Equal(t, order.Assigned, savedOrder.Status())
	notificationRepo.AssertExpectations(t)
	routeRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()

	testClient := createTestClient(t)
	cmd := createOrderCommand(t, testClient.ID(), nil, nil)

	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewCreateOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "begin error")
}

func TestCreateOrderCommandHandler_Handle_ClientNotFound(t *testing.T) {
	ctx := t.Context()

	clientID := kernel.NewUUID()
	cmd := createOrderCommand(t, clientID, nil, nil)

	clientRepo := new(MockClientRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ClientRepository").Return(clientRepo)
	uow.On("Rollback", ctx).Return(nil).Once()
	clientRepo.On("Get", ctx, clientID).
		Return(nil, errs.NewObjectNotFoundError("client", clientID)).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateOrderCommandHandler_Handle_VehicleClaimConflict(t *testing.T) {
	ctx := t.Context()

	testClient := createTestClient(t)
	testDriver := createTestDriver(t, nil)

	vehicleID := kernel.NewUUID()
	driverID := testDriver.ID()
	cmd := createOrderCommand(t, testClient.ID(), &vehicleID, &driverID)

	clientRepo := new(MockClientRepository)
	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	historyRepo := new(MockStatusHistoryRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ClientRepository").Return(clientRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("StatusHistoryRepository").Return(historyRepo)
	uow.On("VehicleRepository").Return(vehicleRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	clientRepo.On("Get", ctx, testClient.ID()).Return(testClient, nil).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	historyRepo.On("Append", ctx, mock.AnythingOfType("*order.StatusChange")).Return(nil).Once()
	vehicleRepo.On("ClaimFree", ctx, vehicleID).
		Return(nil, errs.NewResourceConflictError("vehicle", vehicleID)).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}
