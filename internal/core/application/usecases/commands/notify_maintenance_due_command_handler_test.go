package commands_test

import (
	"strings"
	"testing"

	"logistrans/internal/core/application/usecases/commands"
	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/notification"
	"logistrans/internal/core/domain/model/user"
	"logistrans/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotifyMaintenanceDueCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewNotifyMaintenanceDueCommand()
	require.NoError(t, err)

	dueVehicle, err := vehicle.NewVehicle(kernel.NewUUID(), "Volvo", "FH16", "AB123CD", 20, 150000, 151200)
	require.NoError(t, err)
	admins := []*user.User{
		createTestUser(t, kernel.RoleAdmin),
		createTestUser(t, kernel.RoleAdmin),
	}

	vehicleRepo := new(MockVehicleRepository)
	userRepo := new(MockUserRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("VehicleRepository").Return(vehicleRepo)
	uow.On("UserRepository").Return(userRepo)
	uow.On("NotificationRepository").Return(notificationRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	vehicleRepo.On("GetAllDueForMaintenance", ctx).
		Return([]*vehicle.Vehicle{dueVehicle}, nil).Once()
	userRepo.On("GetAllActiveByRole", ctx, kernel.RoleAdmin).Return(admins, nil).Once()

	// One notification per admin, carrying the vehicle plate and mileage.
	notificationRepo.On("Add", ctx, mock.MatchedBy(func(n *notification.Notification) bool {
		return n.Category() == notification.CategoryMaintenanceDue &&
			strings.Contains(n.Message(), "AB123CD") &&
			strings.Contains(n.Message(), "151200 km of 150000 km")
	})).Return(nil).Twice()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewNotifyMaintenanceDueCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	notificationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestNotifyMaintenanceDueCommandHandler_Handle_NothingDue(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewNotifyMaintenanceDueCommand()
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("VehicleRepository").Return(vehicleRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	vehicleRepo.On("GetAllDueForMaintenance", ctx).Return([]*vehicle.Vehicle{}, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewNotifyMaintenanceDueCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertNotCalled(t, "NotificationRepository")
	uow.AssertExpectations(t)
}

func TestNotifyMaintenanceDueCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NotifyMaintenanceDueCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewNotifyMaintenanceDueCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrNotifyMaintenanceDueCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
