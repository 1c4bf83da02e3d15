package commands_test

import (
	"testing"

	"logistrans/internal/core/application/usecases/commands"
	"logistrans/internal/core/domain/model/kernel"
	"logistrans/internal/core/domain/model/warehouse"
	"logistrans/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReserveWarehouseItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testOrder := createTestOrder(t, kernel.NewUUID())
	testItem := createTestItem(t)
	cmd, err := commands.NewReserveWarehouseItemCommand(testItem.ID(), testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	warehouseRepo := new(MockWarehouseRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("WarehouseRepository").Return(warehouseRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	warehouseRepo.On("Get", ctx, testItem.ID()).Return(testItem, nil).Once()
	warehouseRepo.On("Update", ctx, mock.AnythingOfType("*warehouse.Item")).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReserveWarehouseItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, warehouse.StatusReserved, testItem.Status())
	require.NotNil(t, testItem.OrderID())
	assert.True(t, testItem.OrderID().IsEqual(testOrder.ID()))
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestReserveWarehouseItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ReserveWarehouseItemCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewReserveWarehouseItemCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrReserveWarehouseItemCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestReserveWarehouseItemCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	itemID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewReserveWarehouseItemCommand(itemID, orderID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", ctx, orderID).
		Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReserveWarehouseItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestReserveWarehouseItemCommandHandler_Handle_AlreadyReservedConflict(t *testing.T) {
	ctx := t.Context()

	testOrder := createTestOrder(t, kernel.NewUUID())
	testItem := createTestItem(t)
	require.NoError(t, testItem.Reserve(kernel.NewUUID()))

	cmd, err := commands.NewReserveWarehouseItemCommand(testItem.ID(), testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	warehouseRepo := new(MockWarehouseRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("WarehouseRepository").Return(warehouseRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	warehouseRepo.On("Get", ctx, testItem.ID()).Return(testItem, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReserveWarehouseItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", ctx)
	warehouseRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}
