package commands_test

import (
	"testing"
	"time"

	"logistrans/internal/core/application/usecases/commands"
	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/notification"
	"logistrans/internal/core/domain/model/order"
	"logistrans/internal/core/domain/model/route"
	"logistrans/internal/core/domain/model/user"
	"logistrans/internal/core/domain/model/vehicle"
	"logistrans/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func changeStatusCommand(t *testing.T, orderID kernel.UUID, newStatus order.Status) commands.ChangeOrderStatusCommand {
	t.Helper()

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, newStatus, kernel.NewUUID(), "manual edit")
	require.NoError(t, err)

	return cmd
}

func TestChangeOrderStatusCommandHandler_Handle_ManualEdit(t *testing.T) {
	ctx := t.Context()

	testOrder := createAssignedTestOrder(t, kernel.NewUUID())
	cmd := changeStatusCommand(t, testOrder.ID(), order.InTransit)

	orderRepo := new(MockOrderRepository)
	historyRepo := new(MockStatusHistoryRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("StatusHistoryRepository").Return(historyRepo)
	uow.On("NotificationRepository").Return(notificationRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	historyRepo.On("Append", ctx, mock.AnythingOfType("*order.StatusChange")).Return(nil).Once()

	// A non-terminal edit notifies the user who registered the order.
	notificationRepo.On("Add", ctx, mock.MatchedBy(func(n *notification.Notification) bool {
		return n.UserID().IsEqual(testOrder.CreatedBy()) && n.Category() == notification.CategoryStatusChanged
	})).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.InTransit, testOrder.Status())
	notificationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_DeliveredRunsCascade(t *testing.T) {
	ctx := t.Context()

	testOrder := createAssignedTestOrder(t, kernel.NewUUID())
	testVehicle := createTestVehicle(t)
	testDriver := createTestDriver(t, nil)
	testRoute := createTestRoute(t, testOrder.ID(), testDriver.ID(), testVehicle.ID())

	require.NoError(t, testVehicle.Assign())
	require.NoError(t, testDriver.MarkBusy())
	require.NoError(t, testRoute.Start(time.Now().UTC()))
	require.NoError(t, testVehicle.MarkInTransit())

	logistician := createTestUser(t, kernel.RoleLogistician)
	cmd := changeStatusCommand(t, testOrder.ID(), order.Delivered)

	orderRepo := new(MockOrderRepository)
	routeRepo := new(MockRouteRepository)
	vehicleRepo := new(MockVehicleRepository)
	driverRepo := new(MockDriverRepository)
	historyRepo := new(MockStatusHistoryRepository)
	userRepo := new(MockUserRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("RouteRepository").Return(routeRepo)
	uow.On("VehicleRepository").Return(vehicleRepo)
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("StatusHistoryRepository").Return(historyRepo)
	uow.On("UserRepository").Return(userRepo)
	uow.On("NotificationRepository").Return(notificationRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	routeRepo.On("GetActiveByOrder", ctx, testOrder.ID()).Return(testRoute, nil).Once()
	vehicleRepo.On("Get", ctx, testVehicle.ID()).Return(testVehicle, nil).Once()
	driverRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once()
	routeRepo.On("Update", ctx, mock.AnythingOfType("*route.Route")).Return(nil).Once()
	vehicleRepo.On("Update", ctx, mock.AnythingOfType("*vehicle.Vehicle")).Return(nil).Once()
	driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	historyRepo.On("Append", ctx, mock.AnythingOfType("*order.StatusChange")).Return(nil).Once()
	userRepo.On("GetAllActiveByRole", ctx, kernel.RoleLogistician).
		Return([]*user.User{logistician}, nil).Once()
	notificationRepo.On("Add", ctx, mock.MatchedBy(func(n *notification.Notification) bool {
		return n.Category() == notification.CategoryOrderDelivered
	})).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, testOrder.Status())
	assert.NotNil(t, testOrder.ActualDeliveryDate())
	assert.Equal(t, route.Completed, testRoute.Status())
	assert.Equal(t, vehicle.Free, testVehicle.Status())
	assert.True(t, testDriver.IsAvailable())
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_DeliveredWithoutRoute(t *testing.T) {
	ctx := t.Context()

	testOrder := createTestOrder(t, kernel.NewUUID())
	logistician := createTestUser(t, kernel.RoleLogistician)
	cmd := changeStatusCommand(t, testOrder.ID(), order.Delivered)

	orderRepo := new(MockOrderRepository)
	routeRepo := new(MockRouteRepository)
	historyRepo := new(MockStatusHistoryRepository)
	userRepo := new(MockUserRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("RouteRepository").Return(routeRepo)
	uow.On("StatusHistoryRepository").Return(historyRepo)
	uow.On("UserRepository").Return(userRepo)
	uow.On("NotificationRepository").Return(notificationRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	routeRepo.On("GetActiveByOrder", ctx, testOrder.ID()).
		Return(nil, errs.NewObjectNotFoundError("route", testOrder.ID())).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	historyRepo.On("Append", ctx, mock.AnythingOfType("*order.StatusChange")).Return(nil).Once()
	userRepo.On("GetAllActiveByRole", ctx, kernel.RoleLogistician).
		Return([]*user.User{logistician}, nil).Once()
	notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, testOrder.Status())
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ChangeOrderStatusCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewChangeOrderStatusCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrChangeOrderStatusCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestChangeOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	cmd := changeStatusCommand(t, orderID, order.InTransit)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", ctx, orderID).
		Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestChangeOrderStatusCommandHandler_Handle_SameStatusEditIsNoOp(t *testing.T) {
	ctx := t.Context()

	testOrder := createAssignedTestOrder(t, kernel.NewUUID())
	cmd := changeStatusCommand(t, testOrder.ID(), order.Assigned)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Assigned, testOrder.Status())
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	uow.AssertNotCalled(t, "StatusHistoryRepository")
	uow.AssertNotCalled(t, "NotificationRepository")
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_SecondDeliveryIsNoOp(t *testing.T) {
	ctx := t.Context()

	testOrder := createTestOrder(t, kernel.NewUUID())
	require.NoError(t, testOrder.MarkDelivered(time.Now().UTC()))
	deliveredAt := testOrder.ActualDeliveryDate()
	cmd := changeStatusCommand(t, testOrder.ID(), order.Delivered)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, testOrder.Status())
	assert.Equal(t, deliveredAt, testOrder.ActualDeliveryDate())
	uow.AssertNotCalled(t, "RouteRepository")
	uow.AssertNotCalled(t, "StatusHistoryRepository")
	uow.AssertExpectations(t)
}
