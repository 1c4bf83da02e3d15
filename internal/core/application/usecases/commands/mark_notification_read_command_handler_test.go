package commands_test

import (
	"testing"
	"time"

	"logistrans/internal/core/application/usecases/commands"
	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/notification"
	"logistrans/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotification(t *testing.T, userID kernel.UUID) *notification.Notification {
	t.Helper()

	n, err := notification.NewNotification(
		userID,
		"Order ORD-20260830-4F21AB delivered",
		notification.CategoryOrderDelivered,
		nil,
		time.Now().UTC(),
	)
	require.NoError(t, err)

	return n
}

func TestMarkNotificationReadCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	readerID := kernel.NewUUID()
	testNotification := createTestNotification(t, readerID)
	cmd, err := commands.NewMarkNotificationReadCommand(testNotification.ID(), readerID)
	require.NoError(t, err)

	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("NotificationRepository").Return(notificationRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	notificationRepo.On("Get", ctx, testNotification.ID()).Return(testNotification, nil).Once()
	notificationRepo.On("Update", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkNotificationReadCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, testNotification.IsRead())
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestMarkNotificationReadCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.MarkNotificationReadCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewMarkNotificationReadCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrMarkNotificationReadCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestMarkNotificationReadCommandHandler_Handle_WrongReader(t *testing.T) {
	ctx := t.Context()

	testNotification := createTestNotification(t, kernel.NewUUID())
	cmd, err := commands.NewMarkNotificationReadCommand(testNotification.ID(), kernel.NewUUID())
	require.NoError(t, err)

	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("NotificationRepository").Return(notificationRepo)
	uow.On("Rollback", ctx).Return(nil).Once()
	notificationRepo.On("Get", ctx, testNotification.ID()).Return(testNotification, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkNotificationReadCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrNotificationNotAddressedToReader)
	assert.False(t, testNotification.IsRead())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestMarkNotificationReadCommandHandler_Handle_AlreadyRead(t *testing.T) {
	ctx := t.Context()

	readerID := kernel.NewUUID()
	testNotification := createTestNotification(t, readerID)
	require.NoError(t, testNotification.MarkRead())

	cmd, err := commands.NewMarkNotificationReadCommand(testNotification.ID(), readerID)
	require.NoError(t, err)

	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("NotificationRepository").Return(notificationRepo)
	uow.On("Rollback", ctx).Return(nil).Once()
	notificationRepo.On("Get", ctx, testNotification.ID()).Return(testNotification, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkNotificationReadCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, notification.ErrNotificationAlreadyRead)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestMarkNotificationReadCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()

	notificationID := kernel.NewUUID()
	cmd, err := commands.NewMarkNotificationReadCommand(notificationID, kernel.NewUUID())
	require.NoError(t, err)

	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("NotificationRepository").Return(notificationRepo)
	uow.On("Rollback", ctx).Return(nil).Once()
	notificationRepo.On("Get", ctx, notificationID).
		Return(nil, errs.NewObjectNotFoundError("notification", notificationID)).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkNotificationReadCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}
